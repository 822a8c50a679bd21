package model

import (
	"errors"
	"fmt"
)

var (
	// ErrSchema matches every *SchemaError via errors.Is.
	ErrSchema = errors.New("schema error")
	// ErrEmptyDataset is returned when no rows survive cleaning.
	ErrEmptyDataset = errors.New("empty dataset")
	// ErrInvalidPercentile is returned for a percentile outside [MinPercentile, MaxPercentile].
	ErrInvalidPercentile = errors.New("invalid percentile")
)

// SchemaError reports a missing or mistyped column.
type SchemaError struct {
	Column string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("column %q: %s", e.Column, e.Reason)
}

func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// MissingColumn builds a SchemaError for an absent required column.
func MissingColumn(column string) *SchemaError {
	return &SchemaError{Column: column, Reason: "required column is missing"}
}
