package search

import (
	"errors"
	"fmt"

	apperrors "github.com/riolytics/matchsearch/pkg/errors"
)

// ValidationError reports a query argument outside its axis's accepted
// domain. It names the offending value and the values the axis accepts, and
// unwraps to the shared invalid-query sentinel so transport layers map it to
// a client error.
type ValidationError struct {
	Axis   string
	Value  string
	Domain string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s value %s: accepted values are %s", e.Axis, e.Value, e.Domain)
}

func (e *ValidationError) Unwrap() error {
	return apperrors.ErrInvalidQuery
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func validationErrorf(axis string, value any, domain string) error {
	return &ValidationError{Axis: axis, Value: fmt.Sprintf("%v", value), Domain: domain}
}
