package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordDocumentIndexedUpdatesCountersAndGauge(t *testing.T) {
	m := New(DefaultConfig())

	m.RecordDocumentIndexed(1)
	m.RecordDocumentIndexed(2)

	require.Equal(t, float64(2), testutil.ToFloat64(m.documentsIndexed))
	require.Equal(t, float64(2), testutil.ToFloat64(m.liveDocuments))
}

func TestRecordQueryLabelsByOutcomeAndPolicy(t *testing.T) {
	m := New(DefaultConfig())

	m.RecordQuery(true, false, 5*time.Millisecond)
	m.RecordQuery(false, true, 1*time.Millisecond)

	require.Equal(t, float64(1), testutil.ToFloat64(m.queriesServed.WithLabelValues("hit")))
	require.Equal(t, float64(1), testutil.ToFloat64(m.queriesServed.WithLabelValues("miss")))
}

func TestDisabledManagerRecordsNothing(t *testing.T) {
	m := New(Config{Enabled: false, QueryDurationBuckets: DefaultConfig().QueryDurationBuckets})

	m.RecordDocumentIndexed(5)
	m.RecordQuery(true, false, time.Millisecond)
	m.SetDuplicateCount(3)

	require.Equal(t, float64(0), testutil.ToFloat64(m.documentsIndexed))
	require.Equal(t, float64(0), testutil.ToFloat64(m.duplicatesFound))
}

func TestSetDuplicateCount(t *testing.T) {
	m := New(DefaultConfig())
	m.SetDuplicateCount(4)
	require.Equal(t, float64(4), testutil.ToFloat64(m.duplicatesFound))
}
