// Package queryparser turns a raw query string into a structured Query of
// plus-terms and minus-terms, applying the same validation the ingester
// uses and then dropping stop-words.
package queryparser

import (
	"sort"
	"strings"

	internalErrors "github.com/gcbaptista/go-tfidf-search/internal/errors"
	"github.com/gcbaptista/go-tfidf-search/internal/stopwords"
	"github.com/gcbaptista/go-tfidf-search/internal/tokenizer"
)

// Query is the parsed form of a raw query: the deduplicated, sorted set
// of required terms and the deduplicated, sorted set of excluded terms.
type Query struct {
	Plus  []string
	Minus []string
}

// Parse tokenizes text, validates every token, classifies leading-'-'
// tokens as minus-terms, then drops stop-words. Validation runs before
// the stop-word filter: an invalid token fails the parse even if its
// stripped form would otherwise match a stop-word.
func Parse(text string, stop *stopwords.Set) (Query, error) {
	plusSet := make(map[string]struct{})
	minusSet := make(map[string]struct{})

	for _, tok := range tokenizer.Tokenize(text) {
		if !tokenizer.IsValidTerm(tok) {
			return Query{}, internalErrors.NewInvalidArgumentError("invalid query term: " + tok)
		}

		isMinus := strings.HasPrefix(tok, "-")
		stripped := tok
		if isMinus {
			stripped = tok[1:]
		}

		if stop.Contains(stripped) {
			continue
		}

		if isMinus {
			minusSet[stripped] = struct{}{}
		} else {
			plusSet[stripped] = struct{}{}
		}
	}

	return Query{
		Plus:  sortedKeys(plusSet),
		Minus: sortedKeys(minusSet),
	}, nil
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
