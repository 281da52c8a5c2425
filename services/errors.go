package services

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrNotFound is wrapped by lookups of unknown customers and parts.
var ErrNotFound = errors.New("not found")

// ValidationError reports malformed input. Nothing is committed when an
// operation returns one.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid input: " + e.Reason
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// fromValidator turns the first validator failure into a ValidationError.
func fromValidator(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	var reason string
	switch fe.Tag() {
	case "required":
		reason = "is required"
	case "oneof":
		reason = "must be one of " + fe.Param()
	case "gte":
		reason = "must be at least " + fe.Param()
	case "email":
		reason = "must be a valid email address"
	case "phone":
		reason = "must be a valid phone number"
	default:
		reason = "failed " + fe.Tag() + " check"
	}
	return invalid(fe.Field(), reason)
}
