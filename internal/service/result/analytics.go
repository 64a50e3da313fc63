package result

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/quizly-backend/internal/domain"
)

// MyQuizResults returns the caller's cumulative score over attempts at one quiz.
func (s *Service) MyQuizResults(ctx context.Context, quizID uuid.UUID) ([]domain.ChartPoint, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	results, err := s.results.ListForUserQuiz(ctx, userID, quizID)
	if err != nil {
		return nil, fmt.Errorf("result.MyQuizResults: %w", err)
	}
	return domain.Chart(results), nil
}

// MyLatestResults returns, per quiz, the caller's last attempt time and average score.
func (s *Service) MyLatestResults(ctx context.Context) ([]domain.LatestResult, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	latest, err := s.results.LatestByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("result.MyLatestResults: %w", err)
	}
	return roundLatest(latest), nil
}

// CompanyMembersResults returns one cumulative chart per member of the company.
func (s *Service) CompanyMembersResults(ctx context.Context, companyID uuid.UUID) ([]domain.ChartSeries, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.requireManager(ctx, companyID, userID); err != nil {
		return nil, fmt.Errorf("result.CompanyMembersResults: %w", err)
	}

	rows, err := s.results.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("result.CompanyMembersResults: %w", err)
	}
	return series(rows, func(r domain.ResultRow) (uuid.UUID, string) {
		return r.UserID, r.Username
	}), nil
}

// CompanyMemberResults returns one cumulative chart per quiz for a single member.
// memberID is the membership id, not the user id.
func (s *Service) CompanyMemberResults(ctx context.Context, companyID, memberID uuid.UUID) ([]domain.ChartSeries, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.requireManager(ctx, companyID, userID); err != nil {
		return nil, fmt.Errorf("result.CompanyMemberResults: %w", err)
	}

	member, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("result.CompanyMemberResults: %w", err)
	}
	if member.CompanyID != companyID {
		return nil, domain.ErrMemberNotFound
	}

	rows, err := s.results.ListByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("result.CompanyMemberResults: %w", err)
	}
	return series(rows, func(r domain.ResultRow) (uuid.UUID, string) {
		return r.QuizID, r.QuizName
	}), nil
}

// CompanyLatestResults returns the last attempt of every member at every quiz.
func (s *Service) CompanyLatestResults(ctx context.Context, companyID uuid.UUID) ([]domain.LatestResult, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.requireManager(ctx, companyID, userID); err != nil {
		return nil, fmt.Errorf("result.CompanyLatestResults: %w", err)
	}

	latest, err := s.results.LatestByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("result.CompanyLatestResults: %w", err)
	}
	return roundLatest(latest), nil
}

// series groups time-ordered rows by key and charts each group. Groups keep
// the order of their first row.
func series(rows []domain.ResultRow, key func(domain.ResultRow) (uuid.UUID, string)) []domain.ChartSeries {
	var order []uuid.UUID
	labels := make(map[uuid.UUID]string)
	grouped := make(map[uuid.UUID][]domain.Result)

	for _, r := range rows {
		id, label := key(r)
		if _, seen := grouped[id]; !seen {
			order = append(order, id)
			labels[id] = label
		}
		grouped[id] = append(grouped[id], r.Result)
	}

	out := make([]domain.ChartSeries, 0, len(order))
	for _, id := range order {
		out = append(out, domain.ChartSeries{
			ID:     id,
			Label:  labels[id],
			Points: domain.Chart(grouped[id]),
		})
	}
	return out
}

func roundLatest(latest []domain.LatestResult) []domain.LatestResult {
	for i := range latest {
		latest[i].AverageScore = domain.Round2(latest[i].AverageScore)
	}
	return latest
}
