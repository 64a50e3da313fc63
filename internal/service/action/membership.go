package action

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/quizly-backend/internal/domain"
)

// LeaveCompany ends the caller's own membership. The owner cannot leave.
func (s *Service) LeaveCompany(ctx context.Context, actionID uuid.UUID) error {
	caller, err := callerID(ctx)
	if err != nil {
		return err
	}

	a, err := s.actions.GetByID(ctx, actionID)
	if err != nil {
		return fmt.Errorf("action.LeaveCompany: %w", err)
	}
	if a.UserID != caller {
		return domain.ErrNotPermission
	}
	company, err := s.companies.GetByID(ctx, a.CompanyID)
	if err != nil {
		return fmt.Errorf("action.LeaveCompany: %w", err)
	}
	if company.OwnerID == caller {
		return domain.ErrNotPermission
	}

	err = s.removeMember(ctx, a)
	s.record("leave", nil, err)
	if err != nil {
		return fmt.Errorf("action.LeaveCompany: %w", err)
	}
	s.purgeDetailsAfterCommit(ctx, a)

	s.log.InfoContext(ctx, "member left company",
		slog.String("company_id", a.CompanyID.String()),
		slog.String("user_id", caller.String()))
	return nil
}

// KickFromCompany removes a member. Only the owner may kick, and never themself.
func (s *Service) KickFromCompany(ctx context.Context, actionID uuid.UUID) error {
	caller, err := callerID(ctx)
	if err != nil {
		return err
	}

	a, err := s.actions.GetByID(ctx, actionID)
	if err != nil {
		return fmt.Errorf("action.KickFromCompany: %w", err)
	}
	company, err := s.ownedCompany(ctx, a.CompanyID, caller)
	if err != nil {
		return fmt.Errorf("action.KickFromCompany: %w", err)
	}
	if a.UserID == company.OwnerID {
		return domain.ErrNotPermission
	}

	err = s.removeMember(ctx, a)
	s.record("kick", nil, err)
	if err != nil {
		return fmt.Errorf("action.KickFromCompany: %w", err)
	}
	s.purgeDetailsAfterCommit(ctx, a)

	s.log.InfoContext(ctx, "member kicked",
		slog.String("company_id", a.CompanyID.String()),
		slog.String("user_id", a.UserID.String()))
	return nil
}

// AddAdmin promotes a member to ADMIN.
func (s *Service) AddAdmin(ctx context.Context, companyID, userID uuid.UUID) (*domain.CompanyMember, error) {
	return s.setRole(ctx, companyID, userID, domain.MemberRoleAdmin)
}

// RemoveAdmin demotes an admin back to USER.
func (s *Service) RemoveAdmin(ctx context.Context, companyID, userID uuid.UUID) (*domain.CompanyMember, error) {
	return s.setRole(ctx, companyID, userID, domain.MemberRoleUser)
}

func (s *Service) setRole(ctx context.Context, companyID, userID uuid.UUID, role domain.MemberRole) (*domain.CompanyMember, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedCompany(ctx, companyID, caller); err != nil {
		return nil, fmt.Errorf("action.setRole: %w", err)
	}

	var updated *domain.CompanyMember
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		member, err := s.members.Get(txCtx, companyID, userID)
		if err != nil {
			return err
		}
		if member.Role == domain.MemberRoleOwner {
			return domain.ErrNotPermission
		}
		if member.Role == role {
			updated = member
			return nil
		}
		updated, err = s.members.UpdateRole(txCtx, member.ID, role)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("action.setRole: %w", err)
	}

	s.log.InfoContext(ctx, "member role changed",
		slog.String("company_id", companyID.String()),
		slog.String("user_id", userID.String()),
		slog.String("role", role.String()))
	return updated, nil
}
