// Package engine is the public facade of the search core: it wires the
// tokenizer, interner, stop-word set, inverted index, document registry
// and scorer together behind the single-writer/concurrent-reader
// discipline the core contract requires, and is the only package
// an external collaborator (pagination, request-rate bookkeeping, the
// CLI, a benchmark driver) needs to import.
package engine

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/gcbaptista/go-tfidf-search/config"
	"github.com/gcbaptista/go-tfidf-search/index"
	internalErrors "github.com/gcbaptista/go-tfidf-search/internal/errors"
	"github.com/gcbaptista/go-tfidf-search/internal/interner"
	"github.com/gcbaptista/go-tfidf-search/internal/stopwords"
	"github.com/gcbaptista/go-tfidf-search/internal/tokenizer"
	"github.com/gcbaptista/go-tfidf-search/metrics"
	"github.com/gcbaptista/go-tfidf-search/model"
	"github.com/gcbaptista/go-tfidf-search/store"
)

// Engine holds one inverted index, document registry and interner, plus
// the writer-exclusion mutex that serializes mutation: AddDocument and
// RemoveDocument hold writerMu for their entire duration, while every
// other method only takes the finer-grained locks index.InvertedIndex
// and store.Registry already carry.
type Engine struct {
	writerMu sync.Mutex

	index    *index.InvertedIndex
	registry *store.Registry
	interner *interner.Interner
	stop     *stopwords.Set

	shardCount int
	logger     *zap.Logger
	metrics    *metrics.Manager
}

// Option configures construction-time concerns of an Engine that live
// outside config.EngineOptions (the stop-word source and shard count):
// the structured logger and the metrics manager.
type Option func(*Engine)

// WithLogger overrides the engine's zap logger. New defaults the logger
// to zap.NewNop(), so tests that do not care about log output never
// need this option.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMetrics attaches a metrics.Manager that records document and
// query counts. A nil Manager (the default) means metrics collection is
// skipped entirely.
func WithMetrics(m *metrics.Manager) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// New builds an Engine from opts, validating every stop-word the same
// way a query or ingested term is validated. A single invalid stop-word
// fails construction with ErrInvalidArgument.
func New(opts config.EngineOptions, engineOpts ...Option) (*Engine, error) {
	stop, err := stopwords.FromSlice(opts.StopWords)
	if err != nil {
		return nil, fmt.Errorf("engine.New: %w", err)
	}

	e := &Engine{
		index:      index.New(),
		registry:   store.New(),
		interner:   interner.New(),
		stop:       stop,
		shardCount: opts.ResolvedShardCount(),
		logger:     zap.NewNop(),
	}
	for _, opt := range engineOpts {
		opt(e)
	}
	return e, nil
}

// AddDocument ingests text under document id, recording status and the
// integer-truncated average of ratings. Preconditions are checked in
// order: the id must be non-negative, the id must not already be live,
// and every token of text must be valid. A failed precondition leaves
// the engine unchanged. This is a writer operation: it holds writerMu,
// so it is mutually exclusive with every other writer. Readers do not
// take writerMu, so a reader running at the same time may observe the
// document partly added (its postings present before its record).
func (e *Engine) AddDocument(id int, text string, status model.DocumentStatus, ratings []int) error {
	if id < 0 {
		return internalErrors.NewInvalidArgumentError(fmt.Sprintf("document id %d is negative", id))
	}

	e.writerMu.Lock()
	defer e.writerMu.Unlock()

	if e.registry.Contains(id) {
		return internalErrors.NewInvalidArgumentError(fmt.Sprintf("duplicate document id %d", id))
	}

	tokens := tokenizer.Tokenize(text)
	for _, tok := range tokens {
		if !tokenizer.IsValidTerm(tok) {
			return internalErrors.NewInvalidArgumentError("invalid term in document text: " + tok)
		}
	}

	words := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if e.stop.Contains(tok) {
			continue
		}
		words = append(words, tok)
	}

	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w]++
	}

	distinct := make(map[int]struct{}, len(counts))
	if len(words) > 0 {
		inv := 1.0 / float64(len(words))
		for term, count := range counts {
			termID := e.interner.Intern(term)
			e.index.Add(termID, id, float64(count)*inv)
			distinct[termID] = struct{}{}
		}
	}

	rec := model.Record{
		Rating: averageRating(ratings),
		Status: status,
		Words:  distinct,
	}
	e.registry.Insert(id, rec)

	if e.metrics != nil {
		e.metrics.RecordDocumentIndexed(e.registry.Count())
	}
	e.logger.Debug("document added",
		zap.Int("document_id", id),
		zap.Int("distinct_terms", len(distinct)),
		zap.Int("rating", rec.Rating),
	)
	return nil
}

// averageRating returns the C-style truncated-toward-zero quotient of
// sum(ratings)/len(ratings), or 0 if ratings is empty.
func averageRating(ratings []int) int {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return sum / len(ratings)
}

// DocumentCount returns the number of live documents.
func (e *Engine) DocumentCount() int {
	return e.registry.Count()
}

// IterateLiveIDs returns the ascending-ordered set of live document ids.
func (e *Engine) IterateLiveIDs() []int {
	return e.registry.LiveIDs()
}

// WordFrequencies returns a snapshot mapping each term the document
// contains to its term frequency within that document, read directly
// off the inverted index. It fails with ErrNotFound if id is not live.
func (e *Engine) WordFrequencies(id int) (map[string]float64, error) {
	rec, ok := e.registry.Get(id)
	if !ok {
		return nil, internalErrors.NewNotFoundError(id)
	}

	freqs := make(map[string]float64, len(rec.Words))
	for termID := range rec.Words {
		postings, ok := e.index.Postings(termID)
		if !ok {
			continue
		}
		if tf, ok := postings[id]; ok {
			freqs[e.interner.Term(termID)] = tf
		}
	}
	return freqs, nil
}
