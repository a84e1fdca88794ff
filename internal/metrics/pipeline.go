// Package metrics holds the Prometheus collectors for the style pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Pipeline stage labels.
const (
	StageParse   = "parse"
	StageAnalyze = "analyze"
	StageDesign  = "design"
	StageFormat  = "format"
)

// Pipeline records stage latency and degraded outcomes. A nil *Pipeline is a no-op.
type Pipeline struct {
	stageDuration   *prometheus.HistogramVec
	fallbacks       *prometheus.CounterVec
	quotaRejections prometheus.Counter
}

// NewPipeline creates the collectors and registers them with reg.
func NewPipeline(reg prometheus.Registerer) (*Pipeline, error) {
	p := &Pipeline{
		stageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pipeline_stage_duration_seconds",
				Help:    "Duration of each document pipeline stage.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"stage"},
		),
		fallbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pipeline_ai_fallbacks_total",
				Help: "AI stage calls that were replaced by the static default.",
			},
			[]string{"stage"},
		),
		quotaRejections: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "pipeline_ai_quota_rejections_total",
				Help: "AI stage requests rejected because the call budget was spent.",
			},
		),
	}

	for _, c := range []prometheus.Collector{p.stageDuration, p.fallbacks, p.quotaRejections} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// ObserveStage records how long stage took since start.
func (p *Pipeline) ObserveStage(stage string, start time.Time) {
	if p == nil {
		return
	}
	p.stageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}

// Fallback counts one degraded AI call for stage.
func (p *Pipeline) Fallback(stage string) {
	if p == nil {
		return
	}
	p.fallbacks.WithLabelValues(stage).Inc()
}

// QuotaRejected counts one request refused by the AI quota guard.
func (p *Pipeline) QuotaRejected() {
	if p == nil {
		return
	}
	p.quotaRejections.Inc()
}
