// Package grid turns a rectangular character matrix into a flat, read-only
// set of scan lines suitable for linear substring search.
//
// What:
//
//   - Grid wraps a validated []string matrix (every row the same length).
//   - On construction it synthesizes one string per column, read
//     top-to-bottom, and stores rows followed by columns as its scan set.
//   - Accessors expose dimensions, individual scan lines and single cells.
//
// Why:
//
//   - Searching “down” a column needs the column materialized as a
//     contiguous string exactly once; after that, one direction-agnostic
//     linear-scan routine serves rows and columns alike, with no second,
//     direction-aware search algorithm.
//
// Complexity:
//
//   - New:       O(R×C) time and memory (R rows, C columns).
//   - Accessors: O(1), except Lines which copies the slice header: O(R+C).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows, or the first row is empty.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrLineIndex: scan line index out of range.
//   - ErrCellIndex: cell coordinates out of range.
//
// A Grid never changes after New returns, so concurrent read-only use is
// safe without locking.
package grid
