// Package search implements the TF-IDF scorer and top-K selector, the
// document matcher, the duplicate detector, and the batch query
// executor. Every function here is stateless: it is handed the index,
// registry, interner and stop-word set it needs and returns a result;
// locking is left to the index, registry and interner methods it calls.
package search

import (
	"math"
	"runtime"
	"sort"
	"sync"

	"github.com/gcbaptista/go-tfidf-search/index"
	"github.com/gcbaptista/go-tfidf-search/internal/concurrentmap"
	"github.com/gcbaptista/go-tfidf-search/internal/interner"
	"github.com/gcbaptista/go-tfidf-search/internal/queryparser"
	"github.com/gcbaptista/go-tfidf-search/internal/stopwords"
	"github.com/gcbaptista/go-tfidf-search/model"
	"github.com/gcbaptista/go-tfidf-search/store"
)

// EPS is the absolute tolerance used when comparing two relevance scores
// for equality during the top-K sort.
const EPS = 1e-6

// MaxResults is the maximum number of results FindTopDocuments returns.
const MaxResults = 5

// Predicate decides whether a document qualifies for a search result,
// given its id, status and average rating.
type Predicate func(id int, status model.DocumentStatus, rating int) bool

// StatusFilter returns a Predicate that accepts exactly documents whose
// status equals want.
func StatusFilter(want model.DocumentStatus) Predicate {
	return func(_ int, status model.DocumentStatus, _ int) bool {
		return status == want
	}
}

// AcceptAll is a Predicate that accepts every document regardless of
// id, status or rating.
func AcceptAll(_ int, _ model.DocumentStatus, _ int) bool { return true }

// FindTopDocuments parses query, scores every live document containing at
// least one plus-term using natural-log IDF weighted term frequency,
// drops any document matched by a minus-term, filters by pred, and
// returns the top MaxResults documents ordered by relevance descending
// with ties (within EPS) broken by rating descending.
func FindTopDocuments(ii *index.InvertedIndex, reg *store.Registry, in *interner.Interner, stop *stopwords.Set, query string, pred Predicate, parallel bool, shardCount int) ([]model.Result, error) {
	q, err := queryparser.Parse(query, stop)
	if err != nil {
		return nil, err
	}

	var relevance map[int]float64
	if parallel {
		relevance = accumulateParallel(ii, reg, in, q.Plus, pred, shardCount)
	} else {
		relevance = accumulateSequential(ii, reg, in, q.Plus, pred)
	}

	for _, term := range q.Minus {
		termID, ok := in.Lookup(term)
		if !ok {
			continue
		}
		postings, ok := ii.Postings(termID)
		if !ok {
			continue
		}
		for docID := range postings {
			delete(relevance, docID)
		}
	}

	return topK(relevance, reg), nil
}

func accumulateSequential(ii *index.InvertedIndex, reg *store.Registry, in *interner.Interner, plus []string, pred Predicate) map[int]float64 {
	relevance := make(map[int]float64)
	for _, term := range plus {
		termID, ok := in.Lookup(term)
		if !ok {
			continue
		}
		postings, ok := ii.Postings(termID)
		if !ok || len(postings) == 0 {
			continue
		}
		idf := idfOf(reg.Count(), len(postings))
		for docID, tf := range postings {
			rec, ok := reg.Get(docID)
			if !ok {
				continue
			}
			if pred(docID, rec.Status, rec.Rating) {
				relevance[docID] += tf * idf
			}
		}
	}
	return relevance
}

// accumulateParallel runs one goroutine per plus-term, each processing
// its own term's postings sequentially, and accumulates into a shared
// concurrent map. A single (doc, term) contribution is never applied
// from two goroutines at once: terms never overlap across goroutines,
// only documents do, and the map serializes same-document updates via
// its shard lock.
func accumulateParallel(ii *index.InvertedIndex, reg *store.Registry, in *interner.Interner, plus []string, pred Predicate, shardCount int) map[int]float64 {
	if shardCount < 1 {
		shardCount = runtime.NumCPU()
	}
	acc := concurrentmap.New(shardCount)

	var wg sync.WaitGroup
	for _, term := range plus {
		termID, ok := in.Lookup(term)
		if !ok {
			continue
		}
		postings, ok := ii.Postings(termID)
		if !ok || len(postings) == 0 {
			continue
		}
		idf := idfOf(reg.Count(), len(postings))

		wg.Add(1)
		go func(postings map[int]float64, idf float64) {
			defer wg.Done()
			for docID, tf := range postings {
				rec, ok := reg.Get(docID)
				if !ok {
					continue
				}
				if pred(docID, rec.Status, rec.Rating) {
					acc.Add(docID, tf*idf)
				}
			}
		}(postings, idf)
	}
	wg.Wait()

	return acc.Snapshot()
}

func idfOf(totalDocs, docsContainingTerm int) float64 {
	if docsContainingTerm == 0 {
		return 0
	}
	return math.Log(float64(totalDocs) / float64(docsContainingTerm))
}

func topK(relevance map[int]float64, reg *store.Registry) []model.Result {
	results := make([]model.Result, 0, len(relevance))
	for docID, rel := range relevance {
		rec, ok := reg.Get(docID)
		if !ok {
			continue
		}
		results = append(results, model.Result{ID: docID, Relevance: rel, Rating: rec.Rating})
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if math.Abs(a.Relevance-b.Relevance) < EPS {
			return a.Rating > b.Rating
		}
		return a.Relevance > b.Relevance
	})

	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results
}
