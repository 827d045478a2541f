package search

import (
	"fmt"
	"sort"

	"github.com/gcbaptista/go-tfidf-search/store"
)

// DuplicateIDs returns the ids (ascending) of documents whose distinct
// word set has already appeared in a lower-id live document. Equality of
// word sets is by element-wise interned-term-handle equality.
func DuplicateIDs(reg *store.Registry) []int {
	seen := make(map[string]struct{})
	dupes := make([]int, 0)

	for _, id := range reg.LiveIDs() {
		rec, ok := reg.Get(id)
		if !ok {
			continue
		}
		key := wordSetKey(rec.Words)
		if _, already := seen[key]; already {
			dupes = append(dupes, id)
		} else {
			seen[key] = struct{}{}
		}
	}

	return dupes
}

// wordSetKey builds a canonical string key for a set of interned term
// handles so two documents with identical word sets hash identically
// regardless of map iteration order.
func wordSetKey(words map[int]struct{}) string {
	ids := make([]int, 0, len(words))
	for id := range words {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return fmt.Sprint(ids)
}
