// Package store holds the document registry: the mapping from live
// document id to its record, and the ascending-ordered set of live ids.
package store

import (
	"sort"
	"sync"

	"github.com/gcbaptista/go-tfidf-search/model"
)

// Registry maps document id to its Record and keeps the ordered set of
// live ids in sync with the map. As with InvertedIndex, Mu lets readers
// proceed concurrently; the engine's writer path serializes mutation.
type Registry struct {
	Mu      sync.RWMutex
	Records map[int]model.Record
	liveIDs []int // kept sorted ascending
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{Records: make(map[int]model.Record)}
}

// Contains reports whether id is live.
func (r *Registry) Contains(id int) bool {
	r.Mu.RLock()
	defer r.Mu.RUnlock()
	_, ok := r.Records[id]
	return ok
}

// Get returns the record for id and whether it is live.
func (r *Registry) Get(id int) (model.Record, bool) {
	r.Mu.RLock()
	defer r.Mu.RUnlock()
	rec, ok := r.Records[id]
	return rec, ok
}

// Insert adds a new record for id, maintaining ascending order of
// LiveIDs. The caller is responsible for ensuring id is not already
// present.
func (r *Registry) Insert(id int, rec model.Record) {
	r.Mu.Lock()
	defer r.Mu.Unlock()
	r.Records[id] = rec
	i := sort.SearchInts(r.liveIDs, id)
	r.liveIDs = append(r.liveIDs, 0)
	copy(r.liveIDs[i+1:], r.liveIDs[i:])
	r.liveIDs[i] = id
}

// Delete removes id from the registry and from LiveIDs. It is a no-op
// if id is not present.
func (r *Registry) Delete(id int) {
	r.Mu.Lock()
	defer r.Mu.Unlock()
	if _, ok := r.Records[id]; !ok {
		return
	}
	delete(r.Records, id)
	i := sort.SearchInts(r.liveIDs, id)
	if i < len(r.liveIDs) && r.liveIDs[i] == id {
		r.liveIDs = append(r.liveIDs[:i], r.liveIDs[i+1:]...)
	}
}

// Count returns the number of live documents.
func (r *Registry) Count() int {
	r.Mu.RLock()
	defer r.Mu.RUnlock()
	return len(r.Records)
}

// LiveIDs returns a copy of the ascending-ordered set of live ids.
func (r *Registry) LiveIDs() []int {
	r.Mu.RLock()
	defer r.Mu.RUnlock()
	out := make([]int, len(r.liveIDs))
	copy(out, r.liveIDs)
	return out
}
