package result

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/quizly-backend/internal/domain"
)

// SubmitInput is one attempt at a quiz: selected options per question id.
type SubmitInput struct {
	QuizID  uuid.UUID
	Answers map[uuid.UUID][]string
}

func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	if i.QuizID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "quiz_id", Message: "required"})
	}
	if len(i.Answers) == 0 {
		errs = append(errs, domain.FieldError{Field: "answers", Message: "at least one answer required"})
	}
	for id := range i.Answers {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("answers[%s]", id), Message: "invalid question id"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
