package wordsearch

import "errors"

var (
	// ErrNilGrid indicates a nil grid was passed to a query.
	ErrNilGrid = errors.New("wordsearch: grid must not be nil")
	// ErrNilWords indicates the words slice itself is nil. An empty
	// non-nil slice is valid and yields an empty result.
	ErrNilWords = errors.New("wordsearch: words slice must not be nil")
	// ErrBadLimit indicates Options.Limit is zero or negative.
	ErrBadLimit = errors.New("wordsearch: Limit must be positive")
)
