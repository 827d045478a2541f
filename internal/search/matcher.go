package search

import (
	"sort"
	"sync"

	internalErrors "github.com/gcbaptista/go-tfidf-search/internal/errors"
	"github.com/gcbaptista/go-tfidf-search/internal/interner"
	"github.com/gcbaptista/go-tfidf-search/internal/queryparser"
	"github.com/gcbaptista/go-tfidf-search/internal/stopwords"
	"github.com/gcbaptista/go-tfidf-search/model"
	"github.com/gcbaptista/go-tfidf-search/store"
)

// MatchDocument parses query and returns the distinct plus-terms the
// document docID contains, sorted ascending, together with the
// document's status. If any minus-term of the query is present in the
// document's word set, the returned term list is empty regardless of
// plus-term overlap. parallel selects whether the intersection scan may
// run across goroutines; the result is observably identical either way.
func MatchDocument(reg *store.Registry, in *interner.Interner, stop *stopwords.Set, query string, docID int, parallel bool) ([]string, model.DocumentStatus, error) {
	rec, ok := reg.Get(docID)
	if !ok {
		return nil, 0, internalErrors.NewNotFoundError(docID)
	}

	q, err := queryparser.Parse(query, stop)
	if err != nil {
		return nil, rec.Status, err
	}

	for _, term := range q.Minus {
		termID, ok := in.Lookup(term)
		if ok && rec.HasWord(termID) {
			return []string{}, rec.Status, nil
		}
	}

	var matched []string
	if parallel {
		matched = matchParallel(rec, in, q.Plus)
	} else {
		matched = matchSequential(rec, in, q.Plus)
	}

	sort.Strings(matched)
	return matched, rec.Status, nil
}

func matchSequential(rec model.Record, in *interner.Interner, plus []string) []string {
	matched := make([]string, 0, len(plus))
	for _, term := range plus {
		termID, ok := in.Lookup(term)
		if ok && rec.HasWord(termID) {
			matched = append(matched, term)
		}
	}
	return matched
}

func matchParallel(rec model.Record, in *interner.Interner, plus []string) []string {
	found := make([]bool, len(plus))
	var wg sync.WaitGroup
	for i, term := range plus {
		wg.Add(1)
		go func(i int, term string) {
			defer wg.Done()
			termID, ok := in.Lookup(term)
			found[i] = ok && rec.HasWord(termID)
		}(i, term)
	}
	wg.Wait()

	matched := make([]string, 0, len(plus))
	for i, ok := range found {
		if ok {
			matched = append(matched, plus[i])
		}
	}
	return matched
}
