package quiz

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/quizly-backend/internal/domain"
)

// AddQuestion appends a question and recomputes whether the quiz is playable.
func (s *Service) AddQuestion(ctx context.Context, quizID uuid.UUID, in QuestionInput) (*domain.Question, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if _, _, err := s.managedQuiz(ctx, quizID, userID); err != nil {
		return nil, fmt.Errorf("quiz.AddQuestion: %w", err)
	}

	var (
		created *domain.Question
		active  bool
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		created, err = s.quizzes.AddQuestion(txCtx, in.toDomain(quizID))
		if err != nil {
			return err
		}
		active, err = s.syncActive(txCtx, quizID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("quiz.AddQuestion: %w", err)
	}

	s.log.InfoContext(ctx, "question added",
		slog.String("quiz_id", quizID.String()),
		slog.Bool("active", active))
	return created, nil
}

// RemoveQuestion deletes a question and recomputes whether the quiz is playable.
func (s *Service) RemoveQuestion(ctx context.Context, quizID, questionID uuid.UUID) error {
	userID, err := callerID(ctx)
	if err != nil {
		return err
	}
	if _, _, err := s.managedQuiz(ctx, quizID, userID); err != nil {
		return fmt.Errorf("quiz.RemoveQuestion: %w", err)
	}

	var active bool
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.quizzes.DeleteQuestion(txCtx, quizID, questionID); err != nil {
			return err
		}
		active, err = s.syncActive(txCtx, quizID)
		return err
	})
	if err != nil {
		return fmt.Errorf("quiz.RemoveQuestion: %w", err)
	}

	s.log.InfoContext(ctx, "question removed",
		slog.String("quiz_id", quizID.String()),
		slog.Bool("active", active))
	return nil
}
