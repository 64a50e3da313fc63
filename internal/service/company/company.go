package company

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/quizly-backend/internal/domain"
)

// CreateCompany creates a company owned by the caller together with the
// owner's membership row.
func (s *Service) CreateCompany(ctx context.Context, in CreateInput) (*domain.Company, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	visible := true
	if in.Visible != nil {
		visible = *in.Visible
	}
	c := &domain.Company{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Visible:     visible,
		OwnerID:     userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var created *domain.Company
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.companies.Create(ctx, c)
		if err != nil {
			return err
		}
		_, err = s.members.Create(ctx, &domain.CompanyMember{
			ID:        uuid.New(),
			UserID:    userID,
			CompanyID: created.ID,
			Role:      domain.MemberRoleOwner,
			CreatedAt: now,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("company.CreateCompany: %w", err)
	}

	s.log.InfoContext(ctx, "company created",
		slog.String("company_id", created.ID.String()),
		slog.String("owner_id", userID.String()))
	return created, nil
}

// UpdateCompany changes a company. Only the owner may do it.
func (s *Service) UpdateCompany(ctx context.Context, id uuid.UUID, in UpdateInput) (*domain.Company, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	c, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("company.UpdateCompany: %w", err)
	}
	if c.OwnerID != userID {
		return nil, domain.ErrNotOwner
	}

	updated, err := s.companies.Update(ctx, id, in.params())
	if err != nil {
		return nil, fmt.Errorf("company.UpdateCompany: %w", err)
	}
	return updated, nil
}

// DeleteCompany removes a company with its results, quizzes, actions and
// members in one transaction. Only the owner may do it.
func (s *Service) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	userID, err := callerID(ctx)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		c, err := s.companies.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if c.OwnerID != userID {
			return domain.ErrNotOwner
		}

		steps := []struct {
			name string
			repo cascadeRepo
		}{
			{"results", s.results},
			{"quizzes", s.quizzes},
			{"actions", s.actions},
			{"members", s.members},
		}
		for _, step := range steps {
			if _, err := step.repo.DeleteByCompany(ctx, id); err != nil {
				return fmt.Errorf("delete %s: %w", step.name, err)
			}
		}
		return s.companies.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("company.DeleteCompany: %w", err)
	}

	s.log.InfoContext(ctx, "company deleted", slog.String("company_id", id.String()))
	return nil
}

// GetCompany returns a company if it is visible or owned by the caller.
// Hidden companies of other owners look like missing ones.
func (s *Service) GetCompany(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	c, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("company.GetCompany: %w", err)
	}
	if !c.VisibleTo(userID) {
		return nil, fmt.Errorf("company %s: %w", id, domain.ErrCompanyNotFound)
	}
	return c, nil
}

// ListCompanies returns one page of companies the caller can see and the total count.
func (s *Service) ListCompanies(ctx context.Context, in ListInput) ([]domain.Company, int, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, 0, err
	}
	if err := in.Validate(); err != nil {
		return nil, 0, err
	}

	page := domain.Page{Limit: in.Limit, Offset: in.Offset}.Normalize(s.cfg.DefaultPageSize, s.cfg.MaxPageSize)
	companies, total, err := s.companies.List(ctx, userID, page)
	if err != nil {
		return nil, 0, fmt.Errorf("company.ListCompanies: %w", err)
	}
	return companies, total, nil
}
