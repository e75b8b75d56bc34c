package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics
var (
	predictionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "winprob_predictions_total",
		Help: "Predictions served, by source (a special-case rule name or model)",
	}, []string{"source"})

	inferenceFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "winprob_inference_failures_total",
		Help: "Total number of model inference calls that returned an error",
	})

	inferenceDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "winprob_inference_duration_seconds",
		Help:    "Duration of model inference calls, cache lookups included",
		Buckets: prometheus.ExponentialBuckets(0.00005, 4, 8),
	})

	cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "winprob_inference_cache_lookups_total",
		Help: "Inference cache lookups, by result (hit, miss, error)",
	}, []string{"result"})
)
