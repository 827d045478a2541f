package search

import (
	"sync"

	"github.com/gcbaptista/go-tfidf-search/index"
	"github.com/gcbaptista/go-tfidf-search/internal/interner"
	"github.com/gcbaptista/go-tfidf-search/internal/stopwords"
	"github.com/gcbaptista/go-tfidf-search/model"
	"github.com/gcbaptista/go-tfidf-search/store"
)

// ProcessQueries runs each query in queries through FindTopDocuments
// (using the parallel scorer and the default ACTUAL-status predicate),
// one goroutine per query, and returns one result list per query,
// positionally aligned with the input.
func ProcessQueries(ii *index.InvertedIndex, reg *store.Registry, in *interner.Interner, stop *stopwords.Set, queries []string, shardCount int) [][]model.Result {
	results := make([][]model.Result, len(queries))

	var wg sync.WaitGroup
	for i, q := range queries {
		wg.Add(1)
		go func(i int, q string) {
			defer wg.Done()
			res, err := FindTopDocuments(ii, reg, in, stop, q, StatusFilter(model.ACTUAL), true, shardCount)
			if err != nil {
				results[i] = []model.Result{}
				return
			}
			results[i] = res
		}(i, q)
	}
	wg.Wait()

	return results
}

// ProcessQueriesJoined returns the concatenation of ProcessQueries'
// per-query result lists, in input order.
func ProcessQueriesJoined(ii *index.InvertedIndex, reg *store.Registry, in *interner.Interner, stop *stopwords.Set, queries []string, shardCount int) []model.Result {
	perQuery := ProcessQueries(ii, reg, in, stop, queries, shardCount)

	joined := make([]model.Result, 0)
	for _, res := range perQuery {
		joined = append(joined, res...)
	}
	return joined
}
