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

// Sync metric names
const (
	MetricNameSyncRunsTotal       = "sync_runs_total"
	MetricNameSyncRunDuration     = "sync_run_duration_seconds"
	MetricNameCatalogPagesFetched = "catalog_pages_fetched_total"
	MetricNameSetsUpserted        = "catalog_sets_upserted_total"
	MetricNameCardsUpserted       = "catalog_cards_upserted_total"
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

// Sync metric help text
const (
	HelpTextSyncRunsTotal       = "Total number of catalog sync runs by outcome"
	HelpTextSyncRunDuration     = "Catalog sync run duration in seconds"
	HelpTextCatalogPagesFetched = "Total number of catalog API pages fetched"
	HelpTextSetsUpserted        = "Total number of catalog sets upserted"
	HelpTextCardsUpserted       = "Total number of catalog cards upserted"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelResource = "resource"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// SyncRunBuckets covers sync run durations: a starter-scope run finishes in
// seconds while a full-catalog run can page for many minutes.
var SyncRunBuckets = []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800, 3600}
