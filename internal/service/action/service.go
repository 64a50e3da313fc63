// Package action implements the company membership state machine: invites,
// join requests, leaving, kicking and admin promotion.
package action

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/quizly-backend/internal/domain"
	"github.com/heartmarshall/quizly-backend/pkg/ctxutil"
)

// companyRepo defines the company lookups needed by action service.
type companyRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
}

// userRepo defines the user lookups needed by action service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// actionRepo defines the action persistence needed by action service.
type actionRepo interface {
	Create(ctx context.Context, a *domain.Action) (*domain.Action, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Action, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Action, error)
	FindByPairForUpdate(ctx context.Context, userID, companyID uuid.UUID) (*domain.Action, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ActionStatus, typ domain.ActionType) (*domain.Action, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByCompany(ctx context.Context, companyID uuid.UUID, status domain.ActionStatus) ([]domain.ActionView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, status domain.ActionStatus, scope domain.Scope) ([]domain.ActionView, error)
}

// memberRepo defines the membership persistence needed by action service.
type memberRepo interface {
	Create(ctx context.Context, m *domain.CompanyMember) (*domain.CompanyMember, error)
	Get(ctx context.Context, companyID, userID uuid.UUID) (*domain.CompanyMember, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.MemberRole) (*domain.CompanyMember, error)
	Delete(ctx context.Context, companyID, userID uuid.UUID) error
	ListByCompany(ctx context.Context, companyID uuid.UUID, roles ...domain.MemberRole) ([]domain.MemberView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, scope domain.Scope) ([]domain.MemberView, error)
}

// resultRepo removes the attempts of a membership that ends.
type resultRepo interface {
	DeleteByMember(ctx context.Context, memberID uuid.UUID) (int, error)
}

// detailStore drops cached answer records of a membership that ends.
type detailStore interface {
	Delete(ctx context.Context, f domain.DetailFilter) (int, error)
}

// notifier delivers user notifications.
type notifier interface {
	Notify(ctx context.Context, userIDs []uuid.UUID, text string) error
}

// recorder counts membership operations.
type recorder interface {
	Transition(operation, outcome string)
}

// txManager defines the transaction manager interface needed by action service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements membership operations.
type Service struct {
	log       *slog.Logger
	companies companyRepo
	users     userRepo
	actions   actionRepo
	members   memberRepo
	results   resultRepo
	details   detailStore
	notify    notifier
	metrics   recorder
	tx        txManager
}

// NewService creates a new action service instance.
func NewService(
	logger *slog.Logger,
	companies companyRepo,
	users userRepo,
	actions actionRepo,
	members memberRepo,
	results resultRepo,
	details detailStore,
	notify notifier,
	metrics recorder,
	tx txManager,
) *Service {
	return &Service{
		log:       logger.With("service", "action"),
		companies: companies,
		users:     users,
		actions:   actions,
		members:   members,
		results:   results,
		details:   details,
		notify:    notify,
		metrics:   metrics,
		tx:        tx,
	}
}

func callerID(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}

// ownedCompany loads a company and checks that userID owns it.
func (s *Service) ownedCompany(ctx context.Context, companyID, userID uuid.UUID) (*domain.Company, error) {
	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company.OwnerID != userID {
		return nil, domain.ErrNotOwner
	}
	return company, nil
}

// requireManager checks that userID is the owner or an admin of the company.
func (s *Service) requireManager(ctx context.Context, companyID, userID uuid.UUID) error {
	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return err
	}
	if company.OwnerID == userID {
		return nil
	}

	member, err := s.members.Get(ctx, companyID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotPermission
		}
		return err
	}
	if !member.Role.CanManage() {
		return domain.ErrNotPermission
	}
	return nil
}

// apply runs one cell of the transition table against the locked current row.
func (s *Service) apply(ctx context.Context, op domain.Operation, current *domain.Action, userID, companyID uuid.UUID) (*domain.Action, error) {
	t := domain.NextTransition(current, op)

	switch t.Effect {
	case domain.EffectReject:
		return nil, t.Err
	case domain.EffectCreate:
		now := time.Now().UTC()
		return s.actions.Create(ctx, &domain.Action{
			ID:        uuid.New(),
			UserID:    userID,
			CompanyID: companyID,
			Status:    t.Status,
			Type:      t.Type,
			CreatedAt: now,
			UpdatedAt: now,
		})
	case domain.EffectUpdate:
		return s.actions.UpdateStatus(ctx, current.ID, t.Status, t.Type)
	case domain.EffectJoin:
		return s.join(ctx, current)
	}
	return nil, domain.ErrBadRequest
}

// join adds the action's user as a USER member and marks the action ACCEPTED.
// Runs inside the caller's transaction.
func (s *Service) join(ctx context.Context, a *domain.Action) (*domain.Action, error) {
	_, err := s.members.Create(ctx, &domain.CompanyMember{
		ID:        uuid.New(),
		UserID:    a.UserID,
		CompanyID: a.CompanyID,
		Role:      domain.MemberRoleUser,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}

	accepted, err := s.actions.UpdateStatus(ctx, a.ID, domain.ActionStatusAccepted, a.Type)
	if err != nil {
		return nil, fmt.Errorf("accept action: %w", err)
	}
	return accepted, nil
}

// transition locks the pair's row and applies op to it in one transaction.
func (s *Service) transition(ctx context.Context, op domain.Operation, userID, companyID uuid.UUID) (*domain.Action, error) {
	var result *domain.Action
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.actions.FindByPairForUpdate(txCtx, userID, companyID)
		if err != nil {
			if !errors.Is(err, domain.ErrActionNotFound) {
				return err
			}
			current = nil
		}

		result, err = s.apply(txCtx, op, current, userID, companyID)
		return err
	})
	s.record(op.String(), result, err)
	return result, err
}

// transitionByID locks an existing action and applies op to it.
func (s *Service) transitionByID(ctx context.Context, op domain.Operation, actionID uuid.UUID) (*domain.Action, error) {
	var result *domain.Action
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.actions.GetForUpdate(txCtx, actionID)
		if err != nil {
			return err
		}

		result, err = s.apply(txCtx, op, current, current.UserID, current.CompanyID)
		return err
	})
	s.record(op.String(), result, err)
	return result, err
}

func (s *Service) record(operation string, result *domain.Action, err error) {
	switch {
	case err != nil:
		s.metrics.Transition(operation, "rejected")
	case result != nil:
		s.metrics.Transition(operation, string(result.Status))
	default:
		s.metrics.Transition(operation, "deleted")
	}
}

// notifyAfterCommit delivers a notification and only logs on failure.
func (s *Service) notifyAfterCommit(ctx context.Context, userID uuid.UUID, text string) {
	if err := s.notify.Notify(ctx, []uuid.UUID{userID}, text); err != nil {
		s.log.WarnContext(ctx, "notification failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
	}
}

// purgeDetailsAfterCommit drops the cached answers of a removed member and
// only logs on failure. Leftovers expire with their TTL.
func (s *Service) purgeDetailsAfterCommit(ctx context.Context, a *domain.Action) {
	n, err := s.details.Delete(ctx, domain.DetailFilter{UserID: &a.UserID, CompanyID: &a.CompanyID})
	if err != nil {
		s.log.WarnContext(ctx, "purge result details failed",
			slog.String("company_id", a.CompanyID.String()),
			slog.String("user_id", a.UserID.String()),
			slog.String("error", err.Error()))
		return
	}
	s.log.DebugContext(ctx, "result details purged", slog.Int("count", n))
}

// removeMember ends a membership: attempts, member row and action row go in
// one transaction.
func (s *Service) removeMember(ctx context.Context, a *domain.Action) error {
	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		member, err := s.members.Get(txCtx, a.CompanyID, a.UserID)
		if err != nil {
			return err
		}
		if _, err := s.results.DeleteByMember(txCtx, member.ID); err != nil {
			return err
		}
		if err := s.members.Delete(txCtx, a.CompanyID, a.UserID); err != nil {
			return err
		}
		return s.actions.Delete(txCtx, a.ID)
	})
}
