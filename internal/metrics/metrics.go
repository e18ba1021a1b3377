// Package metrics exposes Prometheus counters and histograms for the
// pipeline engine and the bidi/shaping layer.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// PipelineObjectsTotal counts objects emitted by stage tasks.
	PipelineObjectsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arbsh_pipeline_objects_total",
			Help: "Total pipeline objects emitted by a stage.",
		},
		[]string{"command"},
	)

	// StageDurationSeconds observes a stage's run time per command, from
	// BeginProcessing to the end of EndProcessing.
	StageDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "arbsh_stage_duration_seconds",
			Help:    "Duration of a pipeline stage's run, from BeginProcessing to EndProcessing.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"command"},
	)

	// BidiParagraphsTotal is registered for counting paragraphs processed
	// by the bidi engine; the engine itself does not increment it.
	BidiParagraphsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "arbsh_bidi_paragraphs_total",
			Help: "Total paragraphs processed by the bidi engine.",
		},
	)
)

// Registry is the Prometheus registry arbsh registers its collectors
// into. A dedicated registry (rather than the global default) keeps
// repeated test registrations from panicking on duplicate registration.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(PipelineObjectsTotal, StageDurationSeconds, BidiParagraphsTotal)
}
