// Package result grades quiz attempts and aggregates them into ratings,
// charts and exports.
package result

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/quizly-backend/internal/domain"
	"github.com/heartmarshall/quizly-backend/pkg/ctxutil"
)

type quizRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Quiz, error)
}

type companyRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
}

type memberRepo interface {
	Get(ctx context.Context, companyID, userID uuid.UUID) (*domain.CompanyMember, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CompanyMember, error)
}

type resultRepo interface {
	Create(ctx context.Context, res *domain.Result) (*domain.Result, error)
	ListForUserQuiz(ctx context.Context, userID, quizID uuid.UUID) ([]domain.Result, error)
	MemberAverage(ctx context.Context, memberID uuid.UUID) (float64, int, error)
	CompanyAverages(ctx context.Context, userID uuid.UUID) ([]float64, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.ResultRow, error)
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]domain.ResultRow, error)
	LatestByUser(ctx context.Context, userID uuid.UUID) ([]domain.LatestResult, error)
	LatestByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.LatestResult, error)
}

// detailStore keeps the per-question record of attempts.
type detailStore interface {
	Save(ctx context.Context, d domain.ResultDetail) error
	Find(ctx context.Context, f domain.DetailFilter) ([]domain.ResultDetail, error)
}

type recorder interface {
	ResultSubmitted()
}

// Service implements grading and analytics.
type Service struct {
	log       *slog.Logger
	quizzes   quizRepo
	companies companyRepo
	members   memberRepo
	results   resultRepo
	details   detailStore
	metrics   recorder
}

// NewService creates a new result service instance.
func NewService(
	logger *slog.Logger,
	quizzes quizRepo,
	companies companyRepo,
	members memberRepo,
	results resultRepo,
	details detailStore,
	metrics recorder,
) *Service {
	return &Service{
		log:       logger.With("service", "result"),
		quizzes:   quizzes,
		companies: companies,
		members:   members,
		results:   results,
		details:   details,
		metrics:   metrics,
	}
}

func callerID(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}

// membership returns the caller's member row; outsiders get ErrNotPermission.
func (s *Service) membership(ctx context.Context, companyID, userID uuid.UUID) (*domain.CompanyMember, error) {
	member, err := s.members.Get(ctx, companyID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotPermission
		}
		return nil, err
	}
	return member, nil
}

// requireManager checks that the company exists and userID is its owner or an admin.
func (s *Service) requireManager(ctx context.Context, companyID, userID uuid.UUID) (*domain.Company, error) {
	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company.OwnerID == userID {
		return company, nil
	}

	member, err := s.membership(ctx, companyID, userID)
	if err != nil {
		return nil, err
	}
	if !member.Role.CanManage() {
		return nil, domain.ErrNotPermission
	}
	return company, nil
}
