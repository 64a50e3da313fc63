package auth

import (
	"github.com/heartmarshall/quizly-backend/internal/domain"
	"github.com/heartmarshall/quizly-backend/internal/validate"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 72
	maxUsernameLength = 50
	maxEmailLength    = 254
)

// RegisterInput holds parameters for password registration.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Validate validates the registration input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if len(i.Username) > maxUsernameLength {
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	}

	errs = append(errs, validateEmail(i.Email)...)

	if len(i.Password) < minPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
	} else if len(i.Password) > maxPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateEmail(email string) []domain.FieldError {
	if email == "" {
		return []domain.FieldError{{Field: "email", Message: "required"}}
	}
	if len(email) > maxEmailLength {
		return []domain.FieldError{{Field: "email", Message: "too long"}}
	}
	if !validate.Email(email) {
		return []domain.FieldError{{Field: "email", Message: "invalid email format"}}
	}
	return nil
}
