package result

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/quizly-backend/internal/domain"
)

// CreateResult grades an attempt by the caller and stores it.
// The answer details go to the cache after the result is persisted; a cache
// failure is logged and does not fail the attempt.
func (s *Service) CreateResult(ctx context.Context, in SubmitInput) (*domain.Result, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	quiz, err := s.quizzes.GetByID(ctx, in.QuizID)
	if err != nil {
		return nil, fmt.Errorf("result.CreateResult: %w", err)
	}
	if !quiz.IsActive {
		return nil, domain.ErrQuizInactive
	}

	member, err := s.membership(ctx, quiz.CompanyID, userID)
	if err != nil {
		return nil, fmt.Errorf("result.CreateResult: %w", err)
	}

	correct, answers := domain.Grade(quiz.Questions, in.Answers)
	total := len(quiz.Questions)

	created, err := s.results.Create(ctx, &domain.Result{
		ID:              uuid.New(),
		CompanyMemberID: member.ID,
		QuizID:          quiz.ID,
		Score:           domain.Score(correct, total),
		TotalQuestions:  total,
		CorrectAnswers:  correct,
		CreatedAt:       time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("result.CreateResult: %w", err)
	}
	s.metrics.ResultSubmitted()

	detail := domain.ResultDetail{
		ResultID:  created.ID,
		UserID:    userID,
		CompanyID: quiz.CompanyID,
		QuizID:    quiz.ID,
		Score:     created.Score,
		CreatedAt: created.CreatedAt,
		Questions: answers,
	}
	if err := s.details.Save(ctx, detail); err != nil {
		s.log.WarnContext(ctx, "result detail not cached",
			slog.String("result_id", created.ID.String()),
			slog.String("error", err.Error()))
	}

	s.log.InfoContext(ctx, "quiz attempt graded",
		slog.String("quiz_id", quiz.ID.String()),
		slog.String("user_id", userID.String()),
		slog.Int("correct", correct),
		slog.Int("total", total))

	return created, nil
}
