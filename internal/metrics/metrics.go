// Package metrics defines Prometheus metrics for graphrag.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graphrag_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphrag_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphrag_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	TraversalsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphrag_traversals_total",
			Help: "Total subgraph traversals by operation",
		},
		[]string{"op"},
	)

	TraversalFacts = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "graphrag_traversal_facts",
			Help:    "Facts returned per traversal",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)

	EntityCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "graphrag_entities_total",
			Help: "Source entities in the loaded graph",
		},
	)

	EdgeCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "graphrag_edges_total",
			Help: "Edges in the loaded graph",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		TraversalsTotal, TraversalFacts,
		EntityCount, EdgeCount,
	)
}
