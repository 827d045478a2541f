package config

import (
	"runtime"
	"testing"
)

func TestResolvedShardCountUsesExplicitValue(t *testing.T) {
	opts := EngineOptions{AccumulatorShards: 7}
	if got := opts.ResolvedShardCount(); got != 7 {
		t.Errorf("ResolvedShardCount() = %d, want 7", got)
	}
}

func TestResolvedShardCountFallsBackToNumCPU(t *testing.T) {
	opts := EngineOptions{}
	if got := opts.ResolvedShardCount(); got != runtime.NumCPU() {
		t.Errorf("ResolvedShardCount() = %d, want runtime.NumCPU() = %d", got, runtime.NumCPU())
	}
}

func TestResolvedShardCountTreatsNonPositiveAsUnset(t *testing.T) {
	opts := EngineOptions{AccumulatorShards: -1}
	if got := opts.ResolvedShardCount(); got != runtime.NumCPU() {
		t.Errorf("ResolvedShardCount() = %d, want runtime.NumCPU() = %d", got, runtime.NumCPU())
	}
}
