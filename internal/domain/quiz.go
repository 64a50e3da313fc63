package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MinQuestions     = 2
	MinAnswerOptions = 2
)

// Quiz is a set of questions published by a company.
type Quiz struct {
	ID            uuid.UUID
	CompanyID     uuid.UUID
	Name          string
	Description   *string
	FrequencyDays int
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Questions     []Question
}

// Question is a single multiple-choice question of a quiz.
type Question struct {
	ID            uuid.UUID `db:"id"`
	QuizID        uuid.UUID `db:"quiz_id"`
	QuestionText  string    `db:"question_text"`
	CorrectAnswer []string  `db:"correct_answer"`
	AnswerOptions []string  `db:"answer_options"`
}

// QuizUpdateParams holds the optional fields of a quiz update.
// A non-nil Questions replaces the whole question set.
type QuizUpdateParams struct {
	Name          *string
	Description   *string
	FrequencyDays *int
	Questions     []Question
}

// ValidateQuestion checks one question and reports problems under the given field prefix.
func ValidateQuestion(prefix string, q Question) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(q.QuestionText) == "" {
		errs = append(errs, FieldError{Field: prefix + ".question_text", Message: "required"})
	}
	if len(q.AnswerOptions) < MinAnswerOptions {
		errs = append(errs, FieldError{
			Field:   prefix + ".answer_options",
			Message: fmt.Sprintf("at least %d options required", MinAnswerOptions),
		})
	}
	if len(q.CorrectAnswer) == 0 {
		errs = append(errs, FieldError{Field: prefix + ".correct_answer", Message: "required"})
	}
	for _, a := range q.CorrectAnswer {
		if !slices.Contains(q.AnswerOptions, a) {
			errs = append(errs, FieldError{
				Field:   prefix + ".correct_answer",
				Message: fmt.Sprintf("%q is not one of the answer options", a),
			})
		}
	}

	return errs
}

// ValidateQuestions checks the question count and every question.
func ValidateQuestions(questions []Question) []FieldError {
	var errs []FieldError
	if len(questions) < MinQuestions {
		errs = append(errs, FieldError{
			Field:   "questions",
			Message: fmt.Sprintf("at least %d questions required", MinQuestions),
		})
	}
	for i, q := range questions {
		errs = append(errs, ValidateQuestion(fmt.Sprintf("questions[%d]", i), q)...)
	}
	return errs
}

// IsActiveWith reports whether a quiz with n questions is playable.
func IsActiveWith(n int) bool {
	return n >= MinQuestions
}
