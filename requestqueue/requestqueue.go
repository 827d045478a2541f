// Package requestqueue tracks, over a capped sliding window, how many of
// the recent calls through an engine.Engine returned zero results. The
// window holds the last MaxEntries calls, sized to a day's worth of
// searches at roughly one per minute.
package requestqueue

import (
	"container/list"
	"sync"

	"go.uber.org/zap"

	"github.com/gcbaptista/go-tfidf-search/engine"
)

// MaxEntries is the sliding window's capacity: minutes in a day.
const MaxEntries = 1440

// Queue wraps an *engine.Engine and records whether each FindTopDocuments
// call it mediates returned any results, over the last MaxEntries calls.
type Queue struct {
	mu     sync.Mutex
	eng    *engine.Engine
	window *list.List // of bool, true = had results
	noHits int
	logger *zap.Logger
}

// New wraps eng. logger may be nil, in which case a no-op logger is used.
func New(eng *engine.Engine, logger *zap.Logger) *Queue {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Queue{eng: eng, window: list.New(), logger: logger}
}

// AddFindRequest calls eng.FindTopDocuments with opts, records whether it
// returned any results, and evicts the oldest entry once the window
// exceeds MaxEntries. The result and error are returned unchanged.
func (q *Queue) AddFindRequest(query string, opts ...engine.SearchOption) ([]engine.Result, error) {
	results, err := q.eng.FindTopDocuments(query, opts...)
	if err != nil {
		return nil, err
	}

	q.record(len(results) > 0)
	q.logger.Debug("request recorded",
		zap.String("query", query),
		zap.Int("result_count", len(results)),
	)
	return results, nil
}

func (q *Queue) record(hadResults bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.window.PushBack(hadResults)
	if !hadResults {
		q.noHits++
	}

	if q.window.Len() > MaxEntries {
		front := q.window.Front()
		q.window.Remove(front)
		if !front.Value.(bool) {
			q.noHits--
		}
	}
}

// NoResultCount returns how many of the tracked calls (at most
// MaxEntries, the most recent) returned zero results.
func (q *Queue) NoResultCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.noHits
}

// TrackedCount returns how many calls are currently in the window.
func (q *Queue) TrackedCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.window.Len()
}
