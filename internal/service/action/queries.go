package action

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/quizly-backend/internal/domain"
)

// CompanyInvites lists pending invitations of a company.
func (s *Service) CompanyInvites(ctx context.Context, companyID uuid.UUID) ([]domain.ActionView, error) {
	return s.companyActions(ctx, companyID, domain.ActionStatusInvited)
}

// CompanyRequests lists pending join requests of a company.
func (s *Service) CompanyRequests(ctx context.Context, companyID uuid.UUID) ([]domain.ActionView, error) {
	return s.companyActions(ctx, companyID, domain.ActionStatusRequested)
}

func (s *Service) companyActions(ctx context.Context, companyID uuid.UUID, status domain.ActionStatus) ([]domain.ActionView, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.requireManager(ctx, companyID, caller); err != nil {
		return nil, fmt.Errorf("action.companyActions: %w", err)
	}

	views, err := s.actions.ListByCompany(ctx, companyID, status)
	if err != nil {
		return nil, fmt.Errorf("action.companyActions: %w", err)
	}
	return views, nil
}

// CompanyMembers lists every member of a company, the owner included.
func (s *Service) CompanyMembers(ctx context.Context, companyID uuid.UUID) ([]domain.MemberView, error) {
	return s.companyMembers(ctx, companyID)
}

// CompanyAdmins lists the admins of a company.
func (s *Service) CompanyAdmins(ctx context.Context, companyID uuid.UUID) ([]domain.MemberView, error) {
	return s.companyMembers(ctx, companyID, domain.MemberRoleAdmin)
}

func (s *Service) companyMembers(ctx context.Context, companyID uuid.UUID, roles ...domain.MemberRole) ([]domain.MemberView, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.requireManager(ctx, companyID, caller); err != nil {
		return nil, fmt.Errorf("action.companyMembers: %w", err)
	}

	views, err := s.members.ListByCompany(ctx, companyID, roles...)
	if err != nil {
		return nil, fmt.Errorf("action.companyMembers: %w", err)
	}
	return views, nil
}

// MyInvites lists invitations addressed to the caller.
func (s *Service) MyInvites(ctx context.Context, scope domain.Scope) ([]domain.ActionView, error) {
	return s.myActions(ctx, domain.ActionStatusInvited, scope)
}

// MyRequests lists the caller's pending join requests.
func (s *Service) MyRequests(ctx context.Context, scope domain.Scope) ([]domain.ActionView, error) {
	return s.myActions(ctx, domain.ActionStatusRequested, scope)
}

func (s *Service) myActions(ctx context.Context, status domain.ActionStatus, scope domain.Scope) ([]domain.ActionView, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.checkScope(ctx, scope); err != nil {
		return nil, fmt.Errorf("action.myActions: %w", err)
	}

	views, err := s.actions.ListByUser(ctx, caller, status, scope)
	if err != nil {
		return nil, fmt.Errorf("action.myActions: %w", err)
	}
	return views, nil
}

// MyCompanies lists the caller's memberships.
func (s *Service) MyCompanies(ctx context.Context, scope domain.Scope) ([]domain.MemberView, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.checkScope(ctx, scope); err != nil {
		return nil, fmt.Errorf("action.MyCompanies: %w", err)
	}

	views, err := s.members.ListByUser(ctx, caller, scope)
	if err != nil {
		return nil, fmt.Errorf("action.MyCompanies: %w", err)
	}
	return views, nil
}

// checkScope verifies that a specific-company scope names an existing company.
func (s *Service) checkScope(ctx context.Context, scope domain.Scope) error {
	companyID, ok := scope.CompanyID()
	if !ok {
		return nil
	}
	_, err := s.companies.GetByID(ctx, companyID)
	return err
}
