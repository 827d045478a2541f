package queryparser

import (
	"reflect"
	"testing"

	internalErrors "github.com/gcbaptista/go-tfidf-search/internal/errors"
	"github.com/gcbaptista/go-tfidf-search/internal/stopwords"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustStopwords(t *testing.T, s string) *stopwords.Set {
	t.Helper()
	set, err := stopwords.New(s)
	require.NoError(t, err)
	return set
}

func TestParsePlusAndMinus(t *testing.T) {
	stop := mustStopwords(t, "in the")
	q, err := Parse("Reading -help", stop)
	require.NoError(t, err)

	assert.Equal(t, []string{"Reading"}, q.Plus)
	assert.Equal(t, []string{"help"}, q.Minus)
}

func TestParseDropsStopWordsAfterValidation(t *testing.T) {
	stop := mustStopwords(t, "in the")
	q, err := Parse("cat in the city", stop)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"cat", "city"}, q.Plus)
	assert.Empty(t, q.Minus)
}

func TestParseDedupesAndSorts(t *testing.T) {
	stop := mustStopwords(t, "")
	q, err := Parse("zebra apple zebra apple", stop)
	require.NoError(t, err)

	assert.Equal(t, []string{"apple", "zebra"}, q.Plus)
}

func TestParseRejectsBareMinus(t *testing.T) {
	stop := mustStopwords(t, "")
	_, err := Parse("word -", stop)
	require.Error(t, err)
	assert.ErrorIs(t, err, internalErrors.ErrInvalidArgument)
}

func TestParseRejectsDoubleMinusPrefix(t *testing.T) {
	stop := mustStopwords(t, "")
	_, err := Parse("word --bad", stop)
	require.Error(t, err)
	assert.ErrorIs(t, err, internalErrors.ErrInvalidArgument)
}

func TestParseMinusWordThatIsAlsoStopWord(t *testing.T) {
	stop := mustStopwords(t, "help")
	q, err := Parse("Reading -help", stop)
	require.NoError(t, err)

	assert.Equal(t, []string{"Reading"}, q.Plus)
	assert.Empty(t, q.Minus, "a minus-term whose stripped form is a stop-word is dropped like any other stop-word")
}

func TestParseEmptyQuery(t *testing.T) {
	stop := mustStopwords(t, "")
	q, err := Parse("   ", stop)
	require.NoError(t, err)
	if !reflect.DeepEqual(q, Query{Plus: []string{}, Minus: []string{}}) {
		t.Fatalf("Parse(blank) = %+v, want empty Query", q)
	}
}
