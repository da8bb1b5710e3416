package stream

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Run outcomes recorded by Metrics.Runs.
const (
	OutcomeScheduled      = "scheduled"
	OutcomeAlreadyRunning = "already_running"
	OutcomeFailed         = "failed"
	OutcomeCompleted      = "completed"
	OutcomeStopped        = "stopped"
)

// Metrics for the style stream.
type Metrics struct {
	FramesPublished prometheus.Counter
	PublishErrors   prometheus.Counter
	Runs            *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := new(Metrics)
	m.FramesPublished = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "styletx_frames_published_total",
		Help: "Style patches published to MQTT.",
	})
	m.PublishErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "styletx_publish_errors_total",
		Help: "Style patches that failed to publish.",
	})
	m.Runs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "styletx_runs_total",
			Help: "Animation runs by outcome.",
		},
		[]string{"outcome"},
	)
	reg.MustRegister(m.FramesPublished, m.PublishErrors, m.Runs)
	return m
}
