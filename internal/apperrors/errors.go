package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrNoConversionPath indicates that a currency has neither a direct nor a chained route to USD.
var ErrNoConversionPath = errors.New("no conversion path")

// ErrUnboundedPathSearch indicates that a configured maximum chain length cut the chained
// search short while it was still reaching new currencies.
var ErrUnboundedPathSearch = errors.New("conversion path search exceeded maximum chain length")

// ErrInvalidNumeric indicates that a rate factor or transaction amount is not a well-formed decimal.
var ErrInvalidNumeric = errors.New("invalid numeric value")

// ConversionError reports a failed conversion for one currency.
type ConversionError struct {
	Currency string
	Err      error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("convert %s to USD: %v", e.Currency, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// AppError is an error carrying an HTTP-ish status code, used by the storage layer.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError wraps ErrValidation with a message.
func NewValidationError(message string) error {
	return fmt.Errorf("%w: %s", ErrValidation, message)
}
