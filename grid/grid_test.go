package grid_test

import (
	"errors"
	"testing"

	"github.com/rodrigo714/wordgrid/grid"
)

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, nil or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"NilRows", nil, grid.ErrEmptyGrid},
		{"EmptyRows", []string{}, grid.ErrEmptyGrid},
		{"EmptyFirstRow", []string{""}, grid.ErrEmptyGrid},
		{"Ragged", []string{"ab", "abc"}, grid.ErrNonRectangular},
		{"RaggedShorter", []string{"abc", "ab", "abc"}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.rows)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.rows, err, tc.err)
			}
			if g != nil {
				t.Errorf("New(%v) returned a grid alongside an error", tc.rows)
			}
		})
	}
}

// TestNew_Dimensions checks Rows, Cols and NumLines on a 3×4 grid:
// the scan set size must equal rows+cols.
func TestNew_Dimensions(t *testing.T) {
	g, err := grid.New([]string{"abcd", "efgh", "ijkl"})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if g.Rows() != 3 {
		t.Errorf("Rows() = %d; want 3", g.Rows())
	}
	if g.Cols() != 4 {
		t.Errorf("Cols() = %d; want 4", g.Cols())
	}
	if g.NumLines() != 7 {
		t.Errorf("NumLines() = %d; want 7", g.NumLines())
	}
}

// TestNew_SingleCell covers the minimal 1×1 grid: one row plus one column.
func TestNew_SingleCell(t *testing.T) {
	g, err := grid.New([]string{"x"})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	want := []string{"x", "x"}
	got := g.Lines()
	if len(got) != len(want) {
		t.Fatalf("Lines() = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Lines()[%d] = %q; want %q", i, got[i], want[i])
		}
	}
}

//----------------------------------------------------------------------------//
// Scan Line Tests
//----------------------------------------------------------------------------//

// TestLines_RowThenColumnOrder verifies the scan set layout on a 2×3 grid:
// original rows first, then each column read top-to-bottom.
func TestLines_RowThenColumnOrder(t *testing.T) {
	g, err := grid.New([]string{"abc", "def"})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	want := []string{"abc", "def", "ad", "be", "cf"}
	got := g.Lines()
	if len(got) != len(want) {
		t.Fatalf("Lines() = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Lines()[%d] = %q; want %q", i, got[i], want[i])
		}
	}
}

// TestLines_Lengths checks that every row line has length Cols and every
// column line has length Rows, on a non-square grid.
func TestLines_Lengths(t *testing.T) {
	rows := []string{"abcd", "efgh", "ijkl"}
	g, err := grid.New(rows)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	for i := 0; i < g.NumLines(); i++ {
		line, lerr := g.Line(i)
		if lerr != nil {
			t.Fatalf("Line(%d) error: %v", i, lerr)
		}
		want := g.Cols()
		if i >= g.Rows() {
			want = g.Rows()
		}
		if len(line) != want {
			t.Errorf("len(Line(%d)) = %d; want %d", i, len(line), want)
		}
	}
}

// TestLine_IndexErrors verifies ErrLineIndex outside [0, NumLines).
func TestLine_IndexErrors(t *testing.T) {
	g, err := grid.New([]string{"ab", "cd"})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	for _, i := range []int{-1, 4, 100} {
		if _, lerr := g.Line(i); !errors.Is(lerr, grid.ErrLineIndex) {
			t.Errorf("Line(%d) error = %v; want ErrLineIndex", i, lerr)
		}
	}
}

// TestLines_CopyIsolation ensures mutating the returned slice does not
// affect the grid's internal scan set.
func TestLines_CopyIsolation(t *testing.T) {
	g, err := grid.New([]string{"ab", "cd"})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	lines := g.Lines()
	lines[0] = "zz"
	again, lerr := g.Line(0)
	if lerr != nil {
		t.Fatalf("Line(0) error: %v", lerr)
	}
	if again != "ab" {
		t.Errorf("internal scan set mutated: Line(0) = %q; want %q", again, "ab")
	}
}

//----------------------------------------------------------------------------//
// Cell Access Tests
//----------------------------------------------------------------------------//

// TestAt_AndInBounds checks cell lookups and boundary reporting on a 2×3 grid.
func TestAt_AndInBounds(t *testing.T) {
	g, err := grid.New([]string{"abc", "def"})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	ch, aerr := g.At(1, 2)
	if aerr != nil {
		t.Fatalf("At(1,2) error: %v", aerr)
	}
	if ch != 'f' {
		t.Errorf("At(1,2) = %q; want %q", ch, byte('f'))
	}

	invalid := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}}
	for _, rc := range invalid {
		if g.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d) = true; want false", rc[0], rc[1])
		}
		if _, aerr = g.At(rc[0], rc[1]); !errors.Is(aerr, grid.ErrCellIndex) {
			t.Errorf("At(%d,%d) error = %v; want ErrCellIndex", rc[0], rc[1], aerr)
		}
	}
}
