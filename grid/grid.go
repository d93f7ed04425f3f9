package grid

import "strings"

// New constructs a Grid from a non-empty, rectangular sequence of rows.
// Returns ErrEmptyGrid if rows is empty or its first row has length zero,
// ErrNonRectangular if any row's length differs from the first row's.
// On success the scan set is built eagerly: the input rows in order,
// then one string per column read top-to-bottom.
// Construction is atomic — no partially built Grid escapes on error.
// Algorithmic complexity: O(R×C) time and memory.
func New(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, ErrEmptyGrid
	}
	for _, row := range rows {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	lines := make([]string, 0, len(rows)+cols)
	// Row copies first; strings are immutable so the headers suffice.
	lines = append(lines, rows...)
	// Then synthesize each column top-to-bottom.
	var b strings.Builder
	for c := 0; c < cols; c++ {
		b.Reset()
		b.Grow(len(rows))
		for r := 0; r < len(rows); r++ {
			b.WriteByte(rows[r][c])
		}
		lines = append(lines, b.String())
	}

	return &Grid{rows: len(rows), cols: cols, lines: lines}, nil
}

// Rows returns the number of rows in the grid.
// Complexity: O(1).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns in the grid.
// Complexity: O(1).
func (g *Grid) Cols() int { return g.cols }

// NumLines returns the size of the scan set, always Rows()+Cols().
// Complexity: O(1).
func (g *Grid) NumLines() int { return len(g.lines) }

// Line returns scan line i: indices [0, Rows()) are the original rows,
// indices [Rows(), Rows()+Cols()) are the synthesized columns.
// Returns ErrLineIndex if i is out of range.
// Complexity: O(1).
func (g *Grid) Line(i int) (string, error) {
	if i < 0 || i >= len(g.lines) {
		return "", ErrLineIndex
	}

	return g.lines[i], nil
}

// Lines returns a copy of the full scan set, rows followed by columns.
// The copy keeps the internal index read-only.
// Complexity: O(R+C).
func (g *Grid) Lines() []string {
	out := make([]string, len(g.lines))
	copy(out, g.lines)

	return out
}

// InBounds reports whether (r,c) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// At returns the character stored at row r, column c.
// Returns ErrCellIndex if (r,c) is out of bounds.
// Complexity: O(1).
func (g *Grid) At(r, c int) (byte, error) {
	if !g.InBounds(r, c) {
		return 0, ErrCellIndex
	}

	return g.lines[r][c], nil
}
