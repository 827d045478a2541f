package engine

import (
	"fmt"
	"testing"

	"github.com/gcbaptista/go-tfidf-search/config"
	"github.com/gcbaptista/go-tfidf-search/model"
)

func seedEngine(b *testing.B, n int) *Engine {
	b.Helper()
	e, err := New(config.EngineOptions{})
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	for id := 0; id < n; id++ {
		text := fmt.Sprintf("reading practice document number %d with some shared vocabulary words", id)
		if err := e.AddDocument(id, text, model.ACTUAL, []int{id % 5}); err != nil {
			b.Fatalf("AddDocument: %v", err)
		}
	}
	return e
}

func BenchmarkAddDocument(b *testing.B) {
	e, err := New(config.EngineOptions{})
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		text := fmt.Sprintf("reading practice document number %d with shared vocabulary", i)
		if err := e.AddDocument(i, text, model.ACTUAL, []int{1, 2, 3}); err != nil {
			b.Fatalf("AddDocument: %v", err)
		}
	}
}

func BenchmarkFindTopDocumentsSequential(b *testing.B) {
	e := seedEngine(b, 5000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.FindTopDocuments("reading shared vocabulary"); err != nil {
			b.Fatalf("FindTopDocuments: %v", err)
		}
	}
}

func BenchmarkFindTopDocumentsParallel(b *testing.B) {
	e := seedEngine(b, 5000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.FindTopDocuments("reading shared vocabulary", WithParallel(true)); err != nil {
			b.Fatalf("FindTopDocuments: %v", err)
		}
	}
}
