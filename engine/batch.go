package engine

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gcbaptista/go-tfidf-search/internal/search"
)

// ProcessQueries runs each query in queries through the parallel scorer
// with the default ACTUAL-status predicate, one goroutine per query,
// and returns one result list per query, positionally aligned with the
// input. After the run, one debug line is logged per query carrying a
// fresh random correlation id, the query text and its result count.
func (e *Engine) ProcessQueries(queries []string) [][]Result {
	perQuery := search.ProcessQueries(e.index, e.registry, e.interner, e.stop, queries, e.shardCount)

	for i, query := range queries {
		e.logger.Debug("batch query processed",
			zap.String("correlation_id", uuid.New().String()),
			zap.String("query", query),
			zap.Int("result_count", len(perQuery[i])),
		)
	}
	return perQuery
}

// ProcessQueriesJoined returns the concatenation of ProcessQueries'
// per-query result lists, in input order.
func (e *Engine) ProcessQueriesJoined(queries []string) []Result {
	perQuery := e.ProcessQueries(queries)

	joined := make([]Result, 0, len(queries))
	for _, res := range perQuery {
		joined = append(joined, res...)
	}
	return joined
}
