package grouping

import (
	"errors"
	"fmt"
)

// ErrValidation is the sentinel wrapped by every DataValidationError.
var ErrValidation = errors.New("data validation error")

// DataValidationError reports an input row that cannot become an entry.
// It aborts the whole build: every row must end up in exactly one group.
type DataValidationError struct {
	Row     int
	Field   string
	Message string
}

func (e *DataValidationError) Error() string {
	return fmt.Sprintf("row %d: %s: %s", e.Row, e.Field, e.Message)
}

func (e *DataValidationError) Unwrap() error { return ErrValidation }
