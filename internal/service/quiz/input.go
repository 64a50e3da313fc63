package quiz

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/quizly-backend/internal/domain"
	"github.com/heartmarshall/quizly-backend/internal/validate"
)

var structValidator = validate.New()

// QuestionInput is a question as submitted by a client.
type QuestionInput struct {
	QuestionText  string   `json:"question_text"  validate:"max=1000"`
	CorrectAnswer []string `json:"correct_answer" validate:"dive,max=255"`
	AnswerOptions []string `json:"answer_options" validate:"dive,max=255"`
}

func (q QuestionInput) toDomain(quizID uuid.UUID) domain.Question {
	return domain.Question{
		ID:            uuid.New(),
		QuizID:        quizID,
		QuestionText:  strings.TrimSpace(q.QuestionText),
		CorrectAnswer: q.CorrectAnswer,
		AnswerOptions: q.AnswerOptions,
	}
}

func (q QuestionInput) Validate() error {
	errs := tagErrors(q)
	errs = append(errs, domain.ValidateQuestion("question", q.toDomain(uuid.Nil))...)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func toQuestions(in []QuestionInput, quizID uuid.UUID) []domain.Question {
	out := make([]domain.Question, len(in))
	for i, q := range in {
		out[i] = q.toDomain(quizID)
	}
	return out
}

// CreateInput is a new quiz with its questions.
type CreateInput struct {
	CompanyID     uuid.UUID       `json:"-"`
	Name          string          `json:"name"           validate:"required,max=255"`
	Description   *string         `json:"description"    validate:"omitempty,max=2000"`
	FrequencyDays int             `json:"frequency_days" validate:"gte=1,lte=365"`
	Questions     []QuestionInput `json:"questions"      validate:"dive"`
}

func (i CreateInput) Validate() error {
	errs := tagErrors(i)
	if i.CompanyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "company_id", Message: "required"})
	}
	errs = append(errs, domain.ValidateQuestions(toQuestions(i.Questions, uuid.Nil))...)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput changes the non-nil fields. A non-nil Questions replaces the whole set.
type UpdateInput struct {
	Name          *string         `json:"name"           validate:"omitempty,min=1,max=255"`
	Description   *string         `json:"description"    validate:"omitempty,max=2000"`
	FrequencyDays *int            `json:"frequency_days" validate:"omitempty,gte=1,lte=365"`
	Questions     []QuestionInput `json:"questions"      validate:"omitempty,dive"`
}

func (i UpdateInput) Validate() error {
	errs := tagErrors(i)
	if i.Questions != nil {
		errs = append(errs, domain.ValidateQuestions(toQuestions(i.Questions, uuid.Nil))...)
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i UpdateInput) params() domain.QuizUpdateParams {
	var name *string
	if i.Name != nil {
		trimmed := strings.TrimSpace(*i.Name)
		name = &trimmed
	}
	return domain.QuizUpdateParams{
		Name:          name,
		Description:   i.Description,
		FrequencyDays: i.FrequencyDays,
	}
}

// ListInput is a page request for a company's quizzes.
type ListInput struct {
	CompanyID uuid.UUID
	Limit     int
	Offset    int
}

func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.CompanyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "company_id", Message: "required"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be >= 0"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// tagErrors runs struct-tag validation and returns its field errors.
func tagErrors(v any) []domain.FieldError {
	err := structValidator.Struct(v)
	if err == nil {
		return nil
	}
	if verr, ok := err.(*domain.ValidationError); ok {
		return verr.Errors
	}
	return []domain.FieldError{{Field: "input", Message: err.Error()}}
}
