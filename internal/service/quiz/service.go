// Package quiz manages company quizzes and their questions.
package quiz

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/quizly-backend/internal/config"
	"github.com/heartmarshall/quizly-backend/internal/domain"
	"github.com/heartmarshall/quizly-backend/pkg/ctxutil"
)

type quizRepo interface {
	Create(ctx context.Context, qz *domain.Quiz) (*domain.Quiz, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Quiz, error)
	GetByName(ctx context.Context, companyID uuid.UUID, name string) (*domain.Quiz, error)
	Update(ctx context.Context, id uuid.UUID, params domain.QuizUpdateParams) (*domain.Quiz, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByCompany(ctx context.Context, companyID uuid.UUID, page domain.Page) ([]domain.Quiz, int, error)
	CountQuestions(ctx context.Context, quizID uuid.UUID) (int, error)
	AddQuestion(ctx context.Context, question domain.Question) (*domain.Question, error)
	DeleteQuestion(ctx context.Context, quizID, questionID uuid.UUID) error
	ReplaceQuestions(ctx context.Context, quizID uuid.UUID, questions []domain.Question) ([]domain.Question, error)
}

type companyRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
}

type memberRepo interface {
	Get(ctx context.Context, companyID, userID uuid.UUID) (*domain.CompanyMember, error)
	ListUserIDs(ctx context.Context, companyID uuid.UUID) ([]uuid.UUID, error)
}

type resultRepo interface {
	DeleteByQuiz(ctx context.Context, quizID uuid.UUID) (int, error)
}

type notifier interface {
	Notify(ctx context.Context, userIDs []uuid.UUID, text string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements quiz management.
type Service struct {
	log       *slog.Logger
	quizzes   quizRepo
	companies companyRepo
	members   memberRepo
	results   resultRepo
	notify    notifier
	tx        txManager
	cfg       config.QuizConfig
}

// NewService creates a new quiz service instance.
func NewService(
	logger *slog.Logger,
	quizzes quizRepo,
	companies companyRepo,
	members memberRepo,
	results resultRepo,
	notify notifier,
	tx txManager,
	cfg config.QuizConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "quiz"),
		quizzes:   quizzes,
		companies: companies,
		members:   members,
		results:   results,
		notify:    notify,
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

// requireManager returns the company when userID is its owner or an admin.
func (s *Service) requireManager(ctx context.Context, companyID, userID uuid.UUID) (*domain.Company, error) {
	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company.OwnerID == userID {
		return company, nil
	}

	member, err := s.members.Get(ctx, companyID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotPermission
		}
		return nil, err
	}
	if !member.Role.CanManage() {
		return nil, domain.ErrNotPermission
	}
	return company, nil
}

// requireMember checks that userID belongs to the company.
func (s *Service) requireMember(ctx context.Context, companyID, userID uuid.UUID) error {
	_, err := s.members.Get(ctx, companyID, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrNotPermission
	}
	return err
}

// managedQuiz loads a quiz and checks that userID may change it.
func (s *Service) managedQuiz(ctx context.Context, quizID, userID uuid.UUID) (*domain.Quiz, *domain.Company, error) {
	qz, err := s.quizzes.GetByID(ctx, quizID)
	if err != nil {
		return nil, nil, err
	}
	company, err := s.requireManager(ctx, qz.CompanyID, userID)
	if err != nil {
		return nil, nil, err
	}
	return qz, company, nil
}

// syncActive recomputes the playable flag from the current question count.
func (s *Service) syncActive(ctx context.Context, quizID uuid.UUID) (bool, error) {
	n, err := s.quizzes.CountQuestions(ctx, quizID)
	if err != nil {
		return false, err
	}
	active := domain.IsActiveWith(n)
	return active, s.quizzes.SetActive(ctx, quizID, active)
}

// announce tells every company member about a new quiz. Failures are logged.
func (s *Service) announce(ctx context.Context, company *domain.Company, quizName string) {
	userIDs, err := s.members.ListUserIDs(ctx, company.ID)
	if err == nil {
		err = s.notify.Notify(ctx, userIDs, domain.QuizCreatedNotification(company.Name, quizName))
	}
	if err != nil {
		s.log.WarnContext(ctx, "quiz announcement failed",
			slog.String("company_id", company.ID.String()),
			slog.String("error", err.Error()))
	}
}
