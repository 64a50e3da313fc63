package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// KindError is a named, client-visible error that belongs to one of the
// sentinel kinds above. errors.Is matches both the named error itself and
// its kind.
type KindError struct {
	kind error
	msg  string
}

func newKindError(kind error, msg string) *KindError {
	return &KindError{kind: kind, msg: msg}
}

func (e *KindError) Error() string { return e.msg }

func (e *KindError) Unwrap() error { return e.kind }

// Kind returns the sentinel kind of the error.
func (e *KindError) Kind() error { return e.kind }

// Entity lookups.
var (
	ErrUserNotFound         = newKindError(ErrNotFound, "user not found")
	ErrCompanyNotFound      = newKindError(ErrNotFound, "company not found")
	ErrActionNotFound       = newKindError(ErrNotFound, "action not found")
	ErrMemberNotFound       = newKindError(ErrNotFound, "company member not found")
	ErrQuizNotFound         = newKindError(ErrNotFound, "quiz not found")
	ErrQuestionNotFound     = newKindError(ErrNotFound, "question not found")
	ErrResultsNotFound      = newKindError(ErrNotFound, "no results found")
	ErrNotificationNotFound = newKindError(ErrNotFound, "notification not found")
)

// Authorization.
var (
	ErrNotOwner      = newKindError(ErrForbidden, "you are not the owner of this company")
	ErrNotPermission = newKindError(ErrForbidden, "you do not have permission to perform this action")
)

// Membership state conflicts.
var (
	ErrAlreadyInCompany       = newKindError(ErrConflict, "user is already a member of this company")
	ErrUserAlreadyInvited     = newKindError(ErrConflict, "user is already invited")
	ErrActionAlreadyAvailable = newKindError(ErrConflict, "an action for this user and company already exists")
	ErrUserNotInvited         = newKindError(ErrConflict, "user is not invited")
	ErrUserNotRequested       = newKindError(ErrConflict, "user has not requested to join")
)

// Malformed input.
var (
	ErrYouCanNotInviteYourSelf = newKindError(ErrValidation, "you can't invite yourself")
	ErrBadRequest              = newKindError(ErrValidation, "bad request")
	ErrUnsupportedFileFormat   = newKindError(ErrValidation, "unsupported file format")
	ErrQuizInactive            = newKindError(ErrValidation, "quiz is not active")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
