package model

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrDimensionMismatch is matched by every row-length violation found while building a Board.
	ErrDimensionMismatch = errors.New("rows of the board must all have the same length")
	// ErrInvalidCell is returned when a text grid contains a character that is not a cell.
	ErrInvalidCell = errors.New("invalid cell character")
	// ErrMultipleGenerations is returned when a text grid holds more than one generation dump.
	ErrMultipleGenerations = errors.New("text grid holds more than one generation")
	// ErrUnknownPattern is returned by PatternByName for names outside the catalogue.
	ErrUnknownPattern = errors.New("unknown pattern")
)

// DimensionMismatchError describes the first row whose length differs from the first row's
type DimensionMismatchError struct {
	Row      int
	Expected int
	Got      int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("row %d has %d cells, expected %d: %v", e.Row, e.Got, e.Expected, ErrDimensionMismatch)
}

// Is lets errors.Is match the sentinel
func (e *DimensionMismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}
