package wordsearch

import (
	"sort"
	"strings"

	"github.com/rodrigo714/wordgrid/grid"
)

// Count returns the number of occurrences of pattern within text, scanning
// left to right. After a match at position i the scan resumes at i+1, so
// occurrences that overlap are all counted: Count("aaa", "aa") == 2.
// An empty pattern, or a pattern longer than text, counts 0.
// Complexity: O(len(text)×len(pattern)) worst case.
func Count(text, pattern string) int {
	if pattern == "" || len(pattern) > len(text) {
		return 0
	}
	n, from := 0, 0
	for {
		i := strings.Index(text[from:], pattern)
		if i < 0 {
			break
		}
		n++
		from += i + 1
	}

	return n
}

// Occurrences returns the total occurrence count of word across every
// scan line of g — rows and synthesized columns alike, via the same
// overlap-capable Count routine.
// Returns ErrNilGrid if g is nil.
// Complexity: O(L×S×len(word)), L scan lines of length ≤ S.
func Occurrences(g *grid.Grid, word string) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	total := 0
	for _, line := range g.Lines() {
		total += Count(line, word)
	}

	return total, nil
}

// Counts filters and deduplicates words, counts each unique word across
// every scan line of g, drops words with zero total occurrences, and
// returns the remaining pairs sorted by count descending, ties broken by
// ordinal ascending word order. The full ranking is returned untruncated;
// TopWords applies the result cap.
//
// Empty strings in words are discarded before counting. A nil words slice
// returns ErrNilWords; an empty non-nil slice returns an empty ranking.
// Complexity: O(U×L×S) counting plus O(U log U) sorting.
func Counts(g *grid.Grid, words []string) ([]WordCount, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if words == nil {
		return nil, ErrNilWords
	}

	// Dedupe via map keys: ordinal equality, first-seen order irrelevant.
	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		unique[w] = struct{}{}
	}

	lines := g.Lines()
	ranked := make([]WordCount, 0, len(unique))
	for w := range unique {
		total := 0
		for _, line := range lines {
			total += Count(line, w)
		}
		if total > 0 {
			ranked = append(ranked, WordCount{Word: w, Count: total})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}

		return ranked[i].Word < ranked[j].Word
	})

	return ranked, nil
}

// TopWords returns the most frequent query words found in g, ranked by
// total occurrence count descending with ties broken by ordinal ascending
// word order, capped at opts.Limit entries. Counts are not exposed; use
// Counts directly when they matter.
//
// A nil opts uses DefaultOptions (Limit=10). Words absent from the grid
// never appear in the result, and a query that matches nothing returns an
// empty slice, not an error.
//
// Example:
//
//	top, err := wordsearch.TopWords(g, []string{"cold", "chill"}, nil)
func TopWords(g *grid.Grid, words []string, opts *Options) ([]string, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Limit <= 0 {
		return nil, ErrBadLimit
	}

	ranked, err := Counts(g, words)
	if err != nil {
		return nil, err
	}
	if len(ranked) > o.Limit {
		ranked = ranked[:o.Limit]
	}

	top := make([]string, len(ranked))
	for i, wc := range ranked {
		top[i] = wc.Word
	}

	return top, nil
}
