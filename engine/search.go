package engine

import (
	"time"

	"github.com/gcbaptista/go-tfidf-search/internal/search"
	"github.com/gcbaptista/go-tfidf-search/model"
)

// Result is a single ranked hit returned by FindTopDocuments, re-exported
// from model so callers never need to import the model package directly
// for the common case.
type Result = model.Result

// searchSettings is the resolved form of a SearchOption chain: the
// predicate applied during accumulation and whether the scorer's
// accumulation phase runs in parallel.
type searchSettings struct {
	predicate search.Predicate
	parallel  bool
}

// SearchOption configures a single FindTopDocuments or MatchDocument
// call: the status/predicate filter and the sequential/parallel
// execution policy.
type SearchOption func(*searchSettings)

// WithStatus restricts results to documents whose status equals want,
// overriding the default ACTUAL-only filter.
func WithStatus(want model.DocumentStatus) SearchOption {
	return func(s *searchSettings) {
		s.predicate = search.StatusFilter(want)
	}
}

// WithPredicate installs an arbitrary predicate over a document's id,
// status and rating, overriding the default ACTUAL-only filter.
func WithPredicate(pred func(id int, status model.DocumentStatus, rating int) bool) SearchOption {
	return func(s *searchSettings) {
		s.predicate = search.Predicate(pred)
	}
}

// WithParallel selects the parallel scorer/matcher execution policy.
// The default is sequential.
func WithParallel(parallel bool) SearchOption {
	return func(s *searchSettings) {
		s.parallel = parallel
	}
}

func resolveSearchSettings(opts []SearchOption) searchSettings {
	s := searchSettings{
		predicate: search.StatusFilter(model.ACTUAL),
		parallel:  false,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// FindTopDocuments parses query, scores every live document matching at
// least one plus-term, applies the configured predicate (default:
// status == ACTUAL), drops documents matched by a minus-term, and
// returns up to search.MaxResults results ordered by relevance
// descending with ties (within search.EPS) broken by rating descending.
func (e *Engine) FindTopDocuments(query string, opts ...SearchOption) ([]Result, error) {
	s := resolveSearchSettings(opts)

	start := time.Now()
	results, err := search.FindTopDocuments(e.index, e.registry, e.interner, e.stop, query, s.predicate, s.parallel, e.shardCount)
	if e.metrics != nil && err == nil {
		e.metrics.RecordQuery(len(results) > 0, s.parallel, time.Since(start))
	}
	return results, err
}

// MatchDocument parses query and returns the distinct plus-terms the
// document docID contains, sorted ascending, along with its status. If
// any minus-term of the query is present in the document's word set the
// returned term list is empty regardless of plus-term overlap. Only the
// WithParallel option affects this call; status filters do not apply to
// MatchDocument since it is not scored.
func (e *Engine) MatchDocument(query string, id int, opts ...SearchOption) ([]string, model.DocumentStatus, error) {
	s := resolveSearchSettings(opts)
	return search.MatchDocument(e.registry, e.interner, e.stop, query, id, s.parallel)
}
