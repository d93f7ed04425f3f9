// Package wordsearch counts occurrences of query words across the scan
// lines of a grid.Grid and ranks them by frequency.
//
// What:
//
//   - Count is the shared primitive: substring occurrences of a pattern
//     within one text, scanning left to right and resuming one position
//     past each match.
//   - Occurrences sums Count over every scan line of a grid (rows and
//     columns alike — a single direction-agnostic routine).
//   - Counts filters and deduplicates a query word list, counts each
//     unique word, drops zero-count words and sorts the rest.
//   - TopWords returns the ranked words only, capped by Options.Limit.
//
// Why:
//
//   - Puzzle solving: which of a candidate word list actually hides in
//     the board, and which hide most often.
//   - The ranking is deterministic: equal counts break by ordinal
//     (byte-exact) lexicographic word order, so repeated runs over the
//     same inputs always agree.
//
// Overlap policy:
//
//   - After a match at position i the scan resumes at i+1, NOT at
//     i+len(pattern). Occurrences that overlap within one line are all
//     counted: Count("aaa", "aa") == 2. This is the contract; any
//     non-overlapping chunk policy yields different counts.
//
// Complexity:
//
//   - Count:       O(len(text)×len(pattern)) worst case.
//   - Counts:      O(U×L×S) — U unique words, L scan lines, S line length.
//   - TopWords:    Counts plus an O(U log U) sort.
//
// Errors:
//
//   - ErrNilGrid: the grid argument is nil.
//   - ErrNilWords: the words slice itself is nil (an empty non-nil slice
//     is valid input and yields an empty result).
//   - ErrBadLimit: Options.Limit is zero or negative.
package wordsearch
