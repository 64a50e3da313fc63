// Package company manages companies and their ownership.
package company

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/quizly-backend/internal/config"
	"github.com/heartmarshall/quizly-backend/internal/domain"
	"github.com/heartmarshall/quizly-backend/pkg/ctxutil"
)

type companyRepo interface {
	Create(ctx context.Context, c *domain.Company) (*domain.Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	Update(ctx context.Context, id uuid.UUID, params domain.CompanyUpdateParams) (*domain.Company, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, viewerID uuid.UUID, page domain.Page) ([]domain.Company, int, error)
}

type memberRepo interface {
	Create(ctx context.Context, m *domain.CompanyMember) (*domain.CompanyMember, error)
	DeleteByCompany(ctx context.Context, companyID uuid.UUID) (int, error)
}

// cascadeRepo removes every row of one kind that belongs to a company.
type cascadeRepo interface {
	DeleteByCompany(ctx context.Context, companyID uuid.UUID) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements company management.
type Service struct {
	log       *slog.Logger
	companies companyRepo
	members   memberRepo
	actions   cascadeRepo
	quizzes   cascadeRepo
	results   cascadeRepo
	tx        txManager
	cfg       config.QuizConfig
}

// NewService creates a new company service instance.
func NewService(
	logger *slog.Logger,
	companies companyRepo,
	members memberRepo,
	actions cascadeRepo,
	quizzes cascadeRepo,
	results cascadeRepo,
	tx txManager,
	cfg config.QuizConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "company"),
		companies: companies,
		members:   members,
		actions:   actions,
		quizzes:   quizzes,
		results:   results,
		tx:        tx,
		cfg:       cfg,
	}
}

func callerID(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}
