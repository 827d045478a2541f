// Package config provides the engine's construction-time options: the
// stop-word source and the shard count used by the parallel scorer's
// concurrent accumulator.
package config

import "runtime"

// EngineOptions configures a new Engine. The zero value is valid and
// produces an engine with no stop-words and a shard count derived from
// the host's CPU count.
type EngineOptions struct {
	// StopWords lists the terms the query parser and ingester discard.
	// Each element is validated the same way a query or ingested term
	// is (see internal/tokenizer.IsValidTerm); an invalid entry fails
	// engine construction.
	StopWords []string

	// AccumulatorShards is the shard count N used by the parallel
	// scorer's ConcurrentMap (see internal/concurrentmap). A value < 1
	// is replaced by runtime.NumCPU() at construction time.
	AccumulatorShards int
}

// ResolvedShardCount returns AccumulatorShards if it is at least 1,
// otherwise runtime.NumCPU().
func (o EngineOptions) ResolvedShardCount() int {
	if o.AccumulatorShards >= 1 {
		return o.AccumulatorShards
	}
	return runtime.NumCPU()
}
