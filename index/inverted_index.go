// Package index holds the engine's inverted index: for every interned
// term, the map of live document ids to that term's frequency within the
// document.
package index

import "sync"

// InvertedIndex maps an interned term handle to a posting map of
// document id to term frequency. Callers outside this package mutate it
// only through the engine's writer path, which holds the engine-wide
// write lock for the duration of the mutation; Mu exists so readers
// (search, match, word-frequency lookups) can proceed concurrently with
// each other.
type InvertedIndex struct {
	Mu    sync.RWMutex
	Terms map[int]map[int]float64
}

// New returns an empty InvertedIndex.
func New() *InvertedIndex {
	return &InvertedIndex{Terms: make(map[int]map[int]float64)}
}

// Add records that docID contains termID with the given term frequency.
func (ii *InvertedIndex) Add(termID, docID int, tf float64) {
	ii.Mu.Lock()
	defer ii.Mu.Unlock()
	postings, ok := ii.Terms[termID]
	if !ok {
		postings = make(map[int]float64)
		ii.Terms[termID] = postings
	}
	postings[docID] = tf
}

// Postings returns the posting map for termID and whether the term is
// present in the index at all. The returned map must not be mutated by
// the caller.
func (ii *InvertedIndex) Postings(termID int) (map[int]float64, bool) {
	ii.Mu.RLock()
	defer ii.Mu.RUnlock()
	postings, ok := ii.Terms[termID]
	return postings, ok
}

// DocumentFrequency returns the number of live documents containing
// termID.
func (ii *InvertedIndex) DocumentFrequency(termID int) int {
	ii.Mu.RLock()
	defer ii.Mu.RUnlock()
	return len(ii.Terms[termID])
}

// Remove erases docID from termID's posting map. An entry left with an
// empty inner map is permitted to remain; it is pruned here to keep
// DocumentFrequency cheap for terms that have lost all their documents.
func (ii *InvertedIndex) Remove(termID, docID int) {
	ii.Mu.Lock()
	defer ii.Mu.Unlock()
	postings, ok := ii.Terms[termID]
	if !ok {
		return
	}
	delete(postings, docID)
	if len(postings) == 0 {
		delete(ii.Terms, termID)
	}
}
