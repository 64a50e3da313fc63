package company

import (
	"strings"

	"github.com/heartmarshall/quizly-backend/internal/domain"
	"github.com/heartmarshall/quizly-backend/internal/validate"
)

var structValidator = validate.New()

// CreateInput is a new company.
type CreateInput struct {
	Name        string  `json:"name"        validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Visible     *bool   `json:"visible"`
}

func (i CreateInput) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return domain.NewValidationError("name", "required")
	}
	return structValidator.Struct(i)
}

// UpdateInput changes the non-nil fields of a company.
type UpdateInput struct {
	Name        *string `json:"name"        validate:"omitempty,max=255"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Visible     *bool   `json:"visible"`
}

func (i UpdateInput) Validate() error {
	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		return domain.NewValidationError("name", "must not be empty")
	}
	return structValidator.Struct(i)
}

func (i UpdateInput) params() domain.CompanyUpdateParams {
	var name *string
	if i.Name != nil {
		trimmed := strings.TrimSpace(*i.Name)
		name = &trimmed
	}
	return domain.CompanyUpdateParams{
		Name:        name,
		Description: i.Description,
		Visible:     i.Visible,
	}
}

// ListInput is a page request.
type ListInput struct {
	Limit  int
	Offset int
}

func (i ListInput) Validate() error {
	var errs []domain.FieldError
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
