// Package dedupe implements the duplicate-removal driver: find every
// document whose word set duplicates a lower-id document, then remove
// each one through the engine's public removal operation.
package dedupe

import (
	"go.uber.org/zap"

	"github.com/gcbaptista/go-tfidf-search/engine"
)

// Run removes every duplicate document in eng (per engine.DuplicateIDs)
// sequentially, logging each removal, and returns the ids it removed in
// the order DuplicateIDs produced them (ascending). logger may be nil.
func Run(eng *engine.Engine, logger *zap.Logger) ([]int, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ids := eng.DuplicateIDs()
	removed := make([]int, 0, len(ids))
	for _, id := range ids {
		if err := eng.RemoveDocument(id, false); err != nil {
			return removed, err
		}
		logger.Info("removed duplicate document", zap.Int("document_id", id))
		removed = append(removed, id)
	}
	return removed, nil
}
