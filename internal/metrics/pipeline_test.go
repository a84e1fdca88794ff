package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeline(t *testing.T) {
	reg := prometheus.NewRegistry()
	p, err := NewPipeline(reg)
	require.NoError(t, err)

	p.Fallback(StageAnalyze)
	p.Fallback(StageAnalyze)
	p.Fallback(StageDesign)
	p.QuotaRejected()
	p.ObserveStage(StageParse, time.Now().Add(-time.Second))

	assert.Equal(t, float64(2), testutil.ToFloat64(p.fallbacks.WithLabelValues(StageAnalyze)))
	assert.Equal(t, float64(1), testutil.ToFloat64(p.fallbacks.WithLabelValues(StageDesign)))
	assert.Equal(t, float64(1), testutil.ToFloat64(p.quotaRejections))
	assert.Equal(t, 1, testutil.CollectAndCount(p.stageDuration))
}

func TestPipeline_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPipeline(reg)
	require.NoError(t, err)

	_, err = NewPipeline(reg)
	assert.Error(t, err)
}

func TestPipeline_NilIsNoop(t *testing.T) {
	var p *Pipeline
	assert.NotPanics(t, func() {
		p.Fallback(StageAnalyze)
		p.QuotaRejected()
		p.ObserveStage(StageFormat, time.Now())
	})
}
