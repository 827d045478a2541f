// Package stopwords builds the set of terms the query parser and ingester
// discard.
package stopwords

import (
	"strings"

	internalErrors "github.com/gcbaptista/go-tfidf-search/internal/errors"
	"github.com/gcbaptista/go-tfidf-search/internal/tokenizer"
)

// Set is an immutable collection of stop-words, keyed by their raw bytes.
type Set struct {
	words map[string]struct{}
}

// New builds a Set from a single space-separated string. Empty elements
// (repeated spaces) are silently ignored. An element that fails
// tokenizer.IsValidTerm makes construction fail.
func New(spaceSeparated string) (*Set, error) {
	return FromSlice(tokenizer.Tokenize(spaceSeparated))
}

// FromSlice builds a Set from a collection of candidate stop-words. Empty
// elements are silently ignored; an invalid, non-empty element fails
// construction.
func FromSlice(words []string) (*Set, error) {
	s := &Set{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if w == "" {
			continue
		}
		if !tokenizer.IsValidTerm(w) {
			return nil, &InvalidStopWordError{Word: w}
		}
		s.words[w] = struct{}{}
	}
	return s, nil
}

// Contains reports whether term is a configured stop-word.
func (s *Set) Contains(term string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[term]
	return ok
}

// InvalidStopWordError reports a stop-word that failed term validation.
type InvalidStopWordError struct {
	Word string
}

func (e *InvalidStopWordError) Error() string {
	return "invalid stop word: " + strings.TrimSpace(e.Word)
}

// Is makes an InvalidStopWordError match the ErrInvalidArgument sentinel.
func (e *InvalidStopWordError) Is(target error) bool {
	return target == internalErrors.ErrInvalidArgument
}
