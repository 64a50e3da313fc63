package result

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/quizly-backend/internal/domain"
)

// CompanyRating is the caller's mean score inside one company.
func (s *Service) CompanyRating(ctx context.Context, companyID uuid.UUID) (float64, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return 0, err
	}

	if _, err := s.companies.GetByID(ctx, companyID); err != nil {
		return 0, fmt.Errorf("result.CompanyRating: %w", err)
	}
	member, err := s.membership(ctx, companyID, userID)
	if err != nil {
		return 0, fmt.Errorf("result.CompanyRating: %w", err)
	}

	avg, count, err := s.results.MemberAverage(ctx, member.ID)
	if err != nil {
		return 0, fmt.Errorf("result.CompanyRating: %w", err)
	}
	if count == 0 {
		return 0, domain.ErrResultsNotFound
	}
	return domain.Round2(avg), nil
}

// GlobalRating is the mean of the caller's per-company means.
func (s *Service) GlobalRating(ctx context.Context) (float64, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return 0, err
	}

	averages, err := s.results.CompanyAverages(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("result.GlobalRating: %w", err)
	}
	if len(averages) == 0 {
		return 0, domain.ErrResultsNotFound
	}
	return domain.Average(averages), nil
}
