// Package grid defines the Grid type for the grid subpackage of
// github.com/rodrigo714/wordgrid.
package grid

// Grid holds a validated rectangular character matrix together with its
// derived scan set. It is immutable once built: the scan set contains the
// original rows followed by one synthesized string per column, and is
// never recomputed or mutated after New returns.
//
// Characters are treated as opaque bytes; comparison throughout the
// library is ordinal (byte-exact), with no case folding or locale rules.
type Grid struct {
	rows, cols int
	// lines is rows original row strings followed by cols column strings,
	// each column read top-to-bottom. len(lines) == rows+cols always.
	lines []string
}
