// Package wordsearch defines options and result types for ranked
// word-search queries.
package wordsearch

// DefaultLimit is the result cap applied by DefaultOptions.
const DefaultLimit = 10

// Options configures a TopWords query.
//
// Fields:
//   - Limit — maximum number of ranked words returned. Must be positive;
//     DefaultOptions sets it to DefaultLimit (10).
//
// Example:
//
//	opts := wordsearch.DefaultOptions()
//	opts.Limit = 3
//
//	top, err := wordsearch.TopWords(g, words, &opts)
//	if err != nil {
//	  // handle ErrNilGrid, ErrNilWords or ErrBadLimit
//	}
//	fmt.Println("top words:", top)
type Options struct {
	Limit int
}

// DefaultOptions returns an Options with default settings: Limit=10.
func DefaultOptions() Options {
	return Options{Limit: DefaultLimit}
}

// WordCount pairs a unique query word with its total occurrence count
// across every scan line of a grid. Counts produces these sorted by
// count descending, then word ascending.
type WordCount struct {
	Word  string
	Count int
}
