package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/quizly-backend/internal/domain"
	"github.com/heartmarshall/quizly-backend/pkg/ctxutil"
)

// Me returns the authenticated user's profile.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.Me: %w", err)
	}

	return user, nil
}

// GetUser returns any user's profile to an authenticated caller.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.GetUser: %w", err)
	}

	return user, nil
}

// ListUsers returns one page of users and the total count.
func (s *Service) ListUsers(ctx context.Context, input ListInput) ([]domain.User, int, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, 0, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	page := domain.Page{Limit: input.Limit, Offset: input.Offset}.Normalize(s.defaultPage, s.maxPage)
	users, total, err := s.users.List(ctx, page)
	if err != nil {
		return nil, 0, fmt.Errorf("user.ListUsers: %w", err)
	}

	return users, total, nil
}
