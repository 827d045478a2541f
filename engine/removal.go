package engine

import (
	"sync"

	"go.uber.org/zap"

	internalErrors "github.com/gcbaptista/go-tfidf-search/internal/errors"
)

// RemoveDocument unlinks id from the inverted index and the document
// registry. It is a writer operation: it holds writerMu, so it is
// mutually exclusive with every other writer. Readers do not take
// writerMu, so a reader running at the same time may observe the
// document partly removed. When parallel is true, the per-term erase step runs across
// goroutines; the result is observably identical either way. Fails with
// ErrNotFound if id is not live.
func (e *Engine) RemoveDocument(id int, parallel bool) error {
	e.writerMu.Lock()
	defer e.writerMu.Unlock()

	rec, ok := e.registry.Get(id)
	if !ok {
		return internalErrors.NewNotFoundError(id)
	}

	termIDs := make([]int, 0, len(rec.Words))
	for termID := range rec.Words {
		termIDs = append(termIDs, termID)
	}

	if parallel {
		var wg sync.WaitGroup
		for _, termID := range termIDs {
			wg.Add(1)
			go func(termID int) {
				defer wg.Done()
				e.index.Remove(termID, id)
			}(termID)
		}
		wg.Wait()
	} else {
		for _, termID := range termIDs {
			e.index.Remove(termID, id)
		}
	}

	e.registry.Delete(id)

	if e.metrics != nil {
		e.metrics.RecordDocumentRemoved(e.registry.Count())
	}
	e.logger.Debug("document removed",
		zap.Int("document_id", id),
		zap.Bool("parallel", parallel),
	)
	return nil
}
