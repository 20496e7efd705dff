package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(reg)

	r.RecordChart("ziwei")
	r.RecordChart("ziwei")
	r.RecordError("lunar")
	r.RecordCache("bazi", true)
	r.RecordCache("bazi", false)
	r.RecordCache("bazi", false)
	r.RecordVerdict("大吉")
	r.RecordLatency("ziwei", 0.002)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.chartsTotal.WithLabelValues("ziwei")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.errorsTotal.WithLabelValues("lunar")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.cacheLookups.WithLabelValues("bazi", "hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.cacheLookups.WithLabelValues("bazi", "miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.verdicts.WithLabelValues("大吉")))

	n, err := testutil.GatherAndCount(reg, "suanming_operation_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
