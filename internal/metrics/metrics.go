package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Conversion Metrics
var (
	ConversionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameConversionsTotal,
			Help: HelpTextConversionsTotal,
		},
		[]string{LabelDialect},
	)

	ConversionFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameConversionFailuresTotal,
			Help: HelpTextConversionFailuresTotal,
		},
		[]string{LabelDialect},
	)

	SkippedRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSkippedRowsTotal,
			Help: HelpTextSkippedRowsTotal,
		},
		[]string{LabelDialect},
	)

	FilesEmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFilesEmittedTotal,
			Help: HelpTextFilesEmittedTotal,
		},
		[]string{LabelDialect},
	)

	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCacheHitsTotal,
			Help: HelpTextCacheHitsTotal,
		},
	)
)
