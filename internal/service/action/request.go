package action

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/quizly-backend/internal/domain"
)

// CreateRequest asks to join the company. Requesting a company that already
// invited the caller accepts the invitation.
func (s *Service) CreateRequest(ctx context.Context, companyID uuid.UUID) (*domain.Action, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("action.CreateRequest: %w", err)
	}
	if company.OwnerID == caller {
		return nil, domain.ErrAlreadyInCompany
	}
	requester, err := s.users.GetByID(ctx, caller)
	if err != nil {
		return nil, fmt.Errorf("action.CreateRequest: %w", err)
	}

	a, err := s.transition(ctx, domain.OpRequest, caller, companyID)
	if err != nil {
		return nil, fmt.Errorf("action.CreateRequest: %w", err)
	}

	s.log.InfoContext(ctx, "request processed",
		slog.String("company_id", companyID.String()),
		slog.String("user_id", caller.String()),
		slog.String("status", a.Status.String()))

	if a.Status == domain.ActionStatusRequested {
		s.notifyAfterCommit(ctx, company.OwnerID, domain.RequestNotification(requester.Username, company.Name))
	}
	return a, nil
}

// AcceptRequest admits the requesting user. Only the company owner may accept.
func (s *Service) AcceptRequest(ctx context.Context, actionID uuid.UUID) (*domain.Action, error) {
	return s.answerRequest(ctx, actionID, domain.OpAcceptRequest)
}

// DeclineRequest refuses the join request. Only the company owner may decline.
func (s *Service) DeclineRequest(ctx context.Context, actionID uuid.UUID) (*domain.Action, error) {
	return s.answerRequest(ctx, actionID, domain.OpDeclineRequest)
}

func (s *Service) answerRequest(ctx context.Context, actionID uuid.UUID, op domain.Operation) (*domain.Action, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	a, err := s.actions.GetByID(ctx, actionID)
	if err != nil {
		return nil, fmt.Errorf("action.%s: %w", op, err)
	}
	if _, err := s.ownedCompany(ctx, a.CompanyID, caller); err != nil {
		return nil, fmt.Errorf("action.%s: %w", op, err)
	}

	updated, err := s.transitionByID(ctx, op, actionID)
	if err != nil {
		return nil, fmt.Errorf("action.%s: %w", op, err)
	}

	s.log.InfoContext(ctx, "request answered",
		slog.String("action_id", actionID.String()),
		slog.String("status", updated.Status.String()))
	return updated, nil
}

// CancelRequest withdraws the caller's pending join request.
func (s *Service) CancelRequest(ctx context.Context, actionID uuid.UUID) error {
	caller, err := callerID(ctx)
	if err != nil {
		return err
	}

	a, err := s.actions.GetByID(ctx, actionID)
	if err != nil {
		return fmt.Errorf("action.CancelRequest: %w", err)
	}
	if a.UserID != caller {
		return domain.ErrNotPermission
	}

	err = s.cancel(ctx, actionID, domain.ActionStatusRequested, domain.ErrUserNotRequested)
	s.record("cancel_request", nil, err)
	if err != nil {
		return fmt.Errorf("action.CancelRequest: %w", err)
	}

	s.log.InfoContext(ctx, "request cancelled", slog.String("action_id", actionID.String()))
	return nil
}
