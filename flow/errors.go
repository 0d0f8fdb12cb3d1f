package flow

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidChainSelection   = errors.New("invalid chain selection")
	ErrInvalidAssetSelection   = errors.New("invalid asset selection")
	ErrInvalidAmount           = errors.New("invalid amount")
	ErrInvalidRecipient        = errors.New("invalid recipient")
	ErrIncompleteConfiguration = errors.New("deposit is not configured")
	ErrStageLocked             = errors.New("deposit can only be configured in the deposit stage")
)

// FieldError is a validation failure tied to one input field.
// errors.Is matches it against the sentinel in Err.
type FieldError struct {
	Field  string
	Reason string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldError(field string, err error, format string, args ...interface{}) *FieldError {
	return &FieldError{
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
		Err:    err,
	}
}
