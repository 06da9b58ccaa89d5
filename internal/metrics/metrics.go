// Package metrics holds Prometheus instruments shared by the forms, the API
// client, and the product list.  All collectors are registered with the
// global registry, so importing this package is enough to expose them on
// /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// FormSubmissions counts Submit calls by variant (schema, manual) and
	// outcome (created, invalid, failed, rejected).
	FormSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "product_form_submissions_total",
			Help: "Product form submissions by variant and outcome.",
		}, []string{"variant", "outcome"})

	// APIRequests counts product API calls by operation (create, fetch) and
	// outcome (ok, http_error, network_error, encode_error, decode_error).
	APIRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "product_api_requests_total",
			Help: "Product API requests by operation and outcome.",
		}, []string{"op", "outcome"})

	ListSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "product_list_size",
			Help: "Number of products currently held in the display list.",
		})
)

func init() {
	prometheus.MustRegister(
		FormSubmissions,
		APIRequests,
		ListSize,
	)
}
