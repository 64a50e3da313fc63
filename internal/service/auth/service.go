package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/quizly-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// passwordHasher hashes and verifies passwords.
type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, username string) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
}

// Service implements registration, login and token validation.
type Service struct {
	log    *slog.Logger
	users  userRepo
	hasher passwordHasher
	jwt    jwtManager
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	hasher passwordHasher,
	jwt jwtManager,
) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		hasher: hasher,
		jwt:    jwt,
	}
}

// issueToken signs an access token for the given user.
func (s *Service) issueToken(user *domain.User) (*AuthResult, error) {
	accessToken, err := s.jwt.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	return &AuthResult{
		AccessToken: accessToken,
		TokenType:   TokenTypeBearer,
		User:        user,
	}, nil
}
