package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/quizly-backend/internal/domain"
)

// CreateQuiz publishes a quiz in a company and announces it to the members.
// Only the owner or an admin may create quizzes.
func (s *Service) CreateQuiz(ctx context.Context, in CreateInput) (*domain.Quiz, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	company, err := s.requireManager(ctx, in.CompanyID, userID)
	if err != nil {
		return nil, fmt.Errorf("quiz.CreateQuiz: %w", err)
	}

	var created *domain.Quiz
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		created, err = s.quizzes.Create(txCtx, newQuiz(in))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("quiz.CreateQuiz: %w", err)
	}

	s.log.InfoContext(ctx, "quiz created",
		slog.String("quiz_id", created.ID.String()),
		slog.String("company_id", in.CompanyID.String()),
		slog.Int("questions", len(created.Questions)))

	s.announce(ctx, company, created.Name)
	return created, nil
}

func newQuiz(in CreateInput) *domain.Quiz {
	now := time.Now().UTC()
	id := uuid.New()
	questions := toQuestions(in.Questions, id)
	return &domain.Quiz{
		ID:            id,
		CompanyID:     in.CompanyID,
		Name:          strings.TrimSpace(in.Name),
		Description:   in.Description,
		FrequencyDays: in.FrequencyDays,
		IsActive:      domain.IsActiveWith(len(questions)),
		CreatedAt:     now,
		UpdatedAt:     now,
		Questions:     questions,
	}
}

// UpdateQuiz changes a quiz. Replacing the questions recomputes the playable flag.
func (s *Service) UpdateQuiz(ctx context.Context, quizID uuid.UUID, in UpdateInput) (*domain.Quiz, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if _, _, err := s.managedQuiz(ctx, quizID, userID); err != nil {
		return nil, fmt.Errorf("quiz.UpdateQuiz: %w", err)
	}

	var updated *domain.Quiz
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		updated, err = s.apply(txCtx, quizID, in)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("quiz.UpdateQuiz: %w", err)
	}

	s.log.InfoContext(ctx, "quiz updated", slog.String("quiz_id", quizID.String()))
	return updated, nil
}

// apply writes an update inside the caller's transaction and returns the fresh quiz.
func (s *Service) apply(ctx context.Context, quizID uuid.UUID, in UpdateInput) (*domain.Quiz, error) {
	if _, err := s.quizzes.Update(ctx, quizID, in.params()); err != nil {
		return nil, err
	}
	if in.Questions != nil {
		if _, err := s.quizzes.ReplaceQuestions(ctx, quizID, toQuestions(in.Questions, quizID)); err != nil {
			return nil, err
		}
		if _, err := s.syncActive(ctx, quizID); err != nil {
			return nil, err
		}
	}
	return s.quizzes.GetByID(ctx, quizID)
}

// DeleteQuiz removes a quiz together with its attempts.
func (s *Service) DeleteQuiz(ctx context.Context, quizID uuid.UUID) error {
	userID, err := callerID(ctx)
	if err != nil {
		return err
	}
	if _, _, err := s.managedQuiz(ctx, quizID, userID); err != nil {
		return fmt.Errorf("quiz.DeleteQuiz: %w", err)
	}

	var removed int
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		removed, err = s.results.DeleteByQuiz(txCtx, quizID)
		if err != nil {
			return err
		}
		return s.quizzes.Delete(txCtx, quizID)
	})
	if err != nil {
		return fmt.Errorf("quiz.DeleteQuiz: %w", err)
	}

	s.log.InfoContext(ctx, "quiz deleted",
		slog.String("quiz_id", quizID.String()),
		slog.Int("results_removed", removed))
	return nil
}

// GetQuiz returns a quiz with its questions to a member of its company.
func (s *Service) GetQuiz(ctx context.Context, quizID uuid.UUID) (*domain.Quiz, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	qz, err := s.quizzes.GetByID(ctx, quizID)
	if err != nil {
		return nil, fmt.Errorf("quiz.GetQuiz: %w", err)
	}
	if err := s.requireMember(ctx, qz.CompanyID, userID); err != nil {
		return nil, fmt.Errorf("quiz.GetQuiz: %w", err)
	}
	return qz, nil
}

// ListQuizzes returns one page of a company's quizzes and the total count.
func (s *Service) ListQuizzes(ctx context.Context, in ListInput) ([]domain.Quiz, int, error) {
	if _, err := callerID(ctx); err != nil {
		return nil, 0, err
	}
	if err := in.Validate(); err != nil {
		return nil, 0, err
	}
	if _, err := s.companies.GetByID(ctx, in.CompanyID); err != nil {
		return nil, 0, fmt.Errorf("quiz.ListQuizzes: %w", err)
	}

	page := domain.Page{Limit: in.Limit, Offset: in.Offset}.Normalize(s.cfg.DefaultPageSize, s.cfg.MaxPageSize)
	quizzes, total, err := s.quizzes.ListByCompany(ctx, in.CompanyID, page)
	if err != nil {
		return nil, 0, fmt.Errorf("quiz.ListQuizzes: %w", err)
	}
	return quizzes, total, nil
}
