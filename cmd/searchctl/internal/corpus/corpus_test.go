package corpus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-tfidf-search/model"
)

func TestLoadParsesLines(t *testing.T) {
	input := `
{"id": 1, "text": "reading practice", "status": "ACTUAL", "ratings": [1,2,3]}

{"id": 2, "text": "banned doc", "status": "banned", "ratings": []}
`
	docs, err := Load(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, docs, 2)

	status, err := docs[1].Status()
	require.NoError(t, err)
	require.Equal(t, model.BANNED, status)
}

func TestLoadDefaultsStatusToActual(t *testing.T) {
	docs, err := Load(strings.NewReader(`{"id": 1, "text": "x"}`))
	require.NoError(t, err)

	status, err := docs[0].Status()
	require.NoError(t, err)
	require.Equal(t, model.ACTUAL, status)
}

func TestLoadRejectsUnknownStatus(t *testing.T) {
	docs, err := Load(strings.NewReader(`{"id": 1, "text": "x", "status": "WAT"}`))
	require.NoError(t, err)

	_, err = docs[0].Status()
	require.Error(t, err)
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	_, err := Load(strings.NewReader(`not json`))
	require.Error(t, err)
}
