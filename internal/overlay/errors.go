package overlay

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPeptide is returned when a peptide to search for is empty.
	ErrEmptyPeptide = errors.New("empty peptide")

	// ErrMissingColumn is returned when a dataset lacks a required column.
	ErrMissingColumn = errors.New("missing column")
)

// ColumnError is a dataset that's missing one of its required columns.
type ColumnError struct {
	Dataset string
	Column  string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("dataset %s has no %q column (should contain a header with %s and %s columns)",
		e.Dataset, e.Column, sequenceColumn, scoreColumn)
}

// Unwrap lets errors.Is match ErrMissingColumn.
func (e *ColumnError) Unwrap() error {
	return ErrMissingColumn
}
