package store

import (
	"reflect"
	"testing"

	"github.com/gcbaptista/go-tfidf-search/model"
)

func TestInsertAndGet(t *testing.T) {
	r := New()
	rec := model.Record{Rating: 5, Status: model.ACTUAL, Words: map[int]struct{}{1: {}}}
	r.Insert(42, rec)

	got, ok := r.Get(42)
	if !ok {
		t.Fatalf("expected document 42 to be present")
	}
	if got.Rating != 5 {
		t.Errorf("Rating = %d, want 5", got.Rating)
	}
}

func TestLiveIDsStaysSortedAscending(t *testing.T) {
	r := New()
	for _, id := range []int{17, 3, 42, 1} {
		r.Insert(id, model.Record{})
	}
	want := []int{1, 3, 17, 42}
	if got := r.LiveIDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("LiveIDs() = %v, want %v", got, want)
	}
}

func TestDeleteRemovesFromBothMapAndLiveIDs(t *testing.T) {
	r := New()
	r.Insert(1, model.Record{})
	r.Insert(2, model.Record{})
	r.Delete(1)

	if r.Contains(1) {
		t.Errorf("expected document 1 to be gone")
	}
	want := []int{2}
	if got := r.LiveIDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("LiveIDs() = %v, want %v", got, want)
	}
}

func TestDeleteMissingIsNoOp(t *testing.T) {
	r := New()
	r.Insert(1, model.Record{})
	r.Delete(999)
	if r.Count() != 1 {
		t.Errorf("Count() = %d, want 1", r.Count())
	}
}

func TestCount(t *testing.T) {
	r := New()
	if r.Count() != 0 {
		t.Fatalf("expected empty registry to have count 0")
	}
	r.Insert(1, model.Record{})
	r.Insert(2, model.Record{})
	if r.Count() != 2 {
		t.Errorf("Count() = %d, want 2", r.Count())
	}
}
