// Package obsmetrics declares the Prometheus instruments cmd/rakan exposes
// on its /metrics endpoint, mirroring the teacher corpus's
// declare-as-package-vars-plus-init-registration style.
package obsmetrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// cmd/rakan updates StepsTotal, AcceptedTotal, ScoreTotal and WalkDurationMs.
// RejectedTotal and RedrawsTotal are registered but nothing increments them:
// the sampler does not report rejections or redraws, so they stay at 0.
var (
	StepsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rakan_steps_total",
		Help: "Total number of accepted steps recorded by the walk's sink.",
	})
	AcceptedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rakan_accepted_total",
		Help: "Total number of proposals accepted into the walk.",
	})
	RejectedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rakan_rejected_total",
		Help: "Total number of proposals rejected by the accept/reject rule.",
	})
	RedrawsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rakan_redraws_total",
		Help: "Total number of invalid proposals redrawn without counting as a step.",
	})
	ScoreTotal = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "rakan_score_total",
		Help:    "Distribution of the weighted total score across accepted steps.",
		Buckets: prometheus.DefBuckets,
	})
	WalkDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "rakan_walk_duration_ms",
		Help:    "Wall-clock duration of a full Walk call, in milliseconds.",
		Buckets: []float64{1, 5, 10, 50, 100, 500, 1000, 5000, 30000, 60000},
	})
)

func init() {
	prometheus.MustRegister(StepsTotal)
	prometheus.MustRegister(AcceptedTotal)
	prometheus.MustRegister(RejectedTotal)
	prometheus.MustRegister(RedrawsTotal)
	prometheus.MustRegister(ScoreTotal)
	prometheus.MustRegister(WalkDurationMs)
}

// Handler returns the promhttp handler to mount at /metrics.
func Handler() http.Handler { return promhttp.Handler() }
