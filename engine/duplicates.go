package engine

import "github.com/gcbaptista/go-tfidf-search/internal/search"

// DuplicateIDs returns the ids, ascending, of documents whose distinct
// word set has already appeared in a lower-id live document. It is a
// reader operation; it may run concurrently with other readers.
func (e *Engine) DuplicateIDs() []int {
	ids := search.DuplicateIDs(e.registry)
	if e.metrics != nil {
		e.metrics.SetDuplicateCount(len(ids))
	}
	return ids
}
