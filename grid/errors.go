package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrLineIndex indicates a requested scan line index is out of range.
	ErrLineIndex = errors.New("grid: scan line index out of range")
	// ErrCellIndex indicates requested cell coordinates lie outside the grid.
	ErrCellIndex = errors.New("grid: cell coordinates out of range")
)
