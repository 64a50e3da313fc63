package user

import "github.com/heartmarshall/quizly-backend/internal/domain"

// ListInput holds pagination for ListUsers.
type ListInput struct {
	Limit  int
	Offset int
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be >= 0"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
