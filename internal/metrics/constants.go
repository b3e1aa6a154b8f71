package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Conversion metric names
const (
	MetricNameConversionsTotal        = "conversions_total"
	MetricNameConversionFailuresTotal = "conversion_failures_total"
	MetricNameSkippedRowsTotal        = "conversion_skipped_rows_total"
	MetricNameFilesEmittedTotal       = "conversion_files_emitted_total"
	MetricNameCacheHitsTotal          = "conversion_cache_hits_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Conversion metric help text
const (
	HelpTextConversionsTotal        = "Total number of completed conversions"
	HelpTextConversionFailuresTotal = "Total number of failed conversions"
	HelpTextSkippedRowsTotal        = "Total number of legacy rows skipped during parsing"
	HelpTextFilesEmittedTotal       = "Total number of output files emitted"
	HelpTextCacheHitsTotal          = "Total number of conversion cache hits"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelDialect = "dialect"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
