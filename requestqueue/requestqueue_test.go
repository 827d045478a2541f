package requestqueue

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-tfidf-search/config"
	"github.com/gcbaptista/go-tfidf-search/engine"
	"github.com/gcbaptista/go-tfidf-search/model"
)

func newTestEngine(t testing.TB) *engine.Engine {
	t.Helper()
	e, err := engine.New(config.EngineOptions{})
	require.NoError(t, err)
	require.NoError(t, e.AddDocument(1, "reading practice", model.ACTUAL, []int{1}))
	return e
}

func TestAddFindRequestTracksNoResultCalls(t *testing.T) {
	q := New(newTestEngine(t), nil)

	_, err := q.AddFindRequest("reading")
	require.NoError(t, err)
	_, err = q.AddFindRequest("nonexistent")
	require.NoError(t, err)
	_, err = q.AddFindRequest("also-nonexistent")
	require.NoError(t, err)

	require.Equal(t, 3, q.TrackedCount())
	require.Equal(t, 2, q.NoResultCount())
}

func TestAddFindRequestEvictsOldestBeyondWindow(t *testing.T) {
	q := New(newTestEngine(t), nil)

	for i := 0; i < MaxEntries; i++ {
		_, err := q.AddFindRequest("nonexistent")
		require.NoError(t, err)
	}
	require.Equal(t, MaxEntries, q.NoResultCount())

	_, err := q.AddFindRequest("reading")
	require.NoError(t, err)

	require.Equal(t, MaxEntries, q.TrackedCount())
	require.Equal(t, MaxEntries-1, q.NoResultCount(), "the oldest no-result call must have been evicted")
}

func TestAddFindRequestPropagatesParseError(t *testing.T) {
	q := New(newTestEngine(t), nil)
	_, err := q.AddFindRequest("word --bad")
	require.Error(t, err)
	require.Equal(t, 0, q.TrackedCount(), "a parse error must not be recorded as a call")
}
