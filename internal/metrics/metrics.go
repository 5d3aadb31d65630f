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

// Sync Metrics
var (
	SyncRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSyncRunsTotal,
			Help: HelpTextSyncRunsTotal,
		},
		[]string{LabelStatus},
	)

	SyncRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameSyncRunDuration,
			Help:    HelpTextSyncRunDuration,
			Buckets: SyncRunBuckets,
		},
	)

	CatalogPagesFetched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogPagesFetched,
			Help: HelpTextCatalogPagesFetched,
		},
		[]string{LabelResource},
	)

	SetsUpserted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSetsUpserted,
			Help: HelpTextSetsUpserted,
		},
	)

	CardsUpserted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCardsUpserted,
			Help: HelpTextCardsUpserted,
		},
	)
)
