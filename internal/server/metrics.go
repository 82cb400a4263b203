package server

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	verificationResults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mailsift_verification_results_total",
			Help: "Total verification verdicts by status",
		},
		[]string{"status"},
	)

	bulkBatchSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mailsift_bulk_batch_size",
			Help:    "Addresses per bulk verification request",
			Buckets: prometheus.ExponentialBuckets(1, 4, 7),
		},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mailsift_request_duration_seconds",
			Help:    "Duration of verification requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)

var metricsOnce sync.Once

func registerMetrics() {
	metricsOnce.Do(func() {
		prometheus.MustRegister(verificationResults, bulkBatchSize, requestDuration)
	})
}
