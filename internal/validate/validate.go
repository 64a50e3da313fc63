// Package validate runs struct-tag validation and reports failures as
// domain field errors.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/quizly-backend/internal/domain"
)

// Validator wraps a configured validator.Validate. It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that names fields after their json tag.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// Struct validates s and returns nil or a *domain.ValidationError.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}
	return domain.NewValidationErrors(FieldErrors(verrs))
}

var std = validator.New()

// Email reports whether s is a syntactically valid email address.
func Email(s string) bool {
	return std.Var(s, "required,email") == nil
}

// FieldErrors converts validator failures into domain field errors.
func FieldErrors(verrs validator.ValidationErrors) []domain.FieldError {
	out := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, domain.FieldError{
			Field:   fieldPath(fe),
			Message: message(fe),
		})
	}
	return out
}

// fieldPath drops the top-level struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gte":
		return "must be >= " + fe.Param()
	case "lte":
		return "must be <= " + fe.Param()
	case "email":
		return "invalid email"
	case "oneof":
		return "must be one of " + fe.Param()
	}
	return "failed " + fe.Tag() + " check"
}
