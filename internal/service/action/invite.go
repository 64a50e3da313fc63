package action

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/quizly-backend/internal/domain"
)

// CreateInvite invites userID to the company. Inviting a user who already
// asked to join accepts the request.
func (s *Service) CreateInvite(ctx context.Context, companyID, userID uuid.UUID) (*domain.Action, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if caller == userID {
		return nil, domain.ErrYouCanNotInviteYourSelf
	}

	company, err := s.ownedCompany(ctx, companyID, caller)
	if err != nil {
		return nil, fmt.Errorf("action.CreateInvite: %w", err)
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("action.CreateInvite: %w", err)
	}

	a, err := s.transition(ctx, domain.OpInvite, userID, companyID)
	if err != nil {
		return nil, fmt.Errorf("action.CreateInvite: %w", err)
	}

	s.log.InfoContext(ctx, "invite processed",
		slog.String("company_id", companyID.String()),
		slog.String("user_id", userID.String()),
		slog.String("status", a.Status.String()))

	if a.Status == domain.ActionStatusInvited {
		s.notifyAfterCommit(ctx, userID, domain.InviteNotification(company.Name))
	}
	return a, nil
}

// AcceptInvite lets the invited user join the company.
func (s *Service) AcceptInvite(ctx context.Context, actionID uuid.UUID) (*domain.Action, error) {
	return s.answerInvite(ctx, actionID, domain.OpAcceptInvite)
}

// DeclineInvite lets the invited user refuse the invitation.
func (s *Service) DeclineInvite(ctx context.Context, actionID uuid.UUID) (*domain.Action, error) {
	return s.answerInvite(ctx, actionID, domain.OpDeclineInvite)
}

func (s *Service) answerInvite(ctx context.Context, actionID uuid.UUID, op domain.Operation) (*domain.Action, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	a, err := s.actions.GetByID(ctx, actionID)
	if err != nil {
		return nil, fmt.Errorf("action.%s: %w", op, err)
	}
	if a.UserID != caller {
		return nil, domain.ErrNotPermission
	}

	updated, err := s.transitionByID(ctx, op, actionID)
	if err != nil {
		return nil, fmt.Errorf("action.%s: %w", op, err)
	}

	s.log.InfoContext(ctx, "invite answered",
		slog.String("action_id", actionID.String()),
		slog.String("status", updated.Status.String()))
	return updated, nil
}

// CancelInvite removes a pending invitation. Only the company owner may cancel.
func (s *Service) CancelInvite(ctx context.Context, actionID uuid.UUID) error {
	caller, err := callerID(ctx)
	if err != nil {
		return err
	}

	a, err := s.actions.GetByID(ctx, actionID)
	if err != nil {
		return fmt.Errorf("action.CancelInvite: %w", err)
	}
	if _, err := s.ownedCompany(ctx, a.CompanyID, caller); err != nil {
		return fmt.Errorf("action.CancelInvite: %w", err)
	}

	err = s.cancel(ctx, actionID, domain.ActionStatusInvited, domain.ErrUserNotInvited)
	s.record("cancel_invite", nil, err)
	if err != nil {
		return fmt.Errorf("action.CancelInvite: %w", err)
	}

	s.log.InfoContext(ctx, "invite cancelled", slog.String("action_id", actionID.String()))
	return nil
}

// cancel hard-deletes the action if it is still in the wanted status.
func (s *Service) cancel(ctx context.Context, actionID uuid.UUID, want domain.ActionStatus, wrong error) error {
	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		a, err := s.actions.GetForUpdate(txCtx, actionID)
		if err != nil {
			return err
		}
		if a.Status != want {
			return wrong
		}
		return s.actions.Delete(txCtx, actionID)
	})
}
