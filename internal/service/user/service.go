package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/quizly-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, page domain.Page) ([]domain.User, int, error)
}

// Service implements user lookup operations.
type Service struct {
	log         *slog.Logger
	users       userRepo
	defaultPage int
	maxPage     int
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, defaultPage, maxPage int) *Service {
	return &Service{
		log:         logger.With("service", "user"),
		users:       users,
		defaultPage: defaultPage,
		maxPage:     maxPage,
	}
}
