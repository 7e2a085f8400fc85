// Package fileloader reads rate tables and transaction exports from disk.
package fileloader

import (
	"encoding/csv"
	"encoding/xml"
	"errors"
	"fmt"
	"os"

	"github.com/SscSPs/usd_totals/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

// Loader parses rate XML and transaction CSV input into domain records.
type Loader struct {
	validate *validator.Validate
}

// NewLoader creates a Loader.
func NewLoader() *Loader {
	return &Loader{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (l *Loader) validateRecord(kind string, line int, record any) error {
	if err := l.validate.Struct(record); err != nil {
		return fmt.Errorf("%w: %s %d: %v", apperrors.ErrValidation, kind, line, err)
	}
	return nil
}

func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, nil
}

// readError reports malformed input as a validation error and keeps I/O failures
// (including a request body over its size limit) wrapped as they are.
func readError(what string, err error) error {
	var syntaxErr *xml.SyntaxError
	var parseErr *csv.ParseError
	if errors.As(err, &syntaxErr) || errors.As(err, &parseErr) {
		return fmt.Errorf("%w: malformed %s: %v", apperrors.ErrValidation, what, err)
	}
	return fmt.Errorf("failed to read %s: %w", what, err)
}
