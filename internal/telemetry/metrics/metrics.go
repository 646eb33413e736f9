// Package metrics exposes the service's Prometheus instrumentation.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registerOnce sync.Once

	requestDuration  *prometheus.HistogramVec
	upstreamRequests *prometheus.CounterVec
	opportunities    *prometheus.CounterVec
)

// Init registers all metrics with the default registry. Safe to call more
// than once.
func Init() {
	registerOnce.Do(func() {
		requestDuration = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "alphawatch_request_duration_seconds",
				Help:    "Duration of inbound HTTP requests in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
			},
			[]string{"endpoint", "status"},
		)

		upstreamRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "alphawatch_upstream_requests_total",
				Help: "Outbound upstream calls by provider and result",
			},
			[]string{"provider", "result"},
		)

		opportunities = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "alphawatch_opportunities_total",
				Help: "Opportunities emitted by the scorer, by action",
			},
			[]string{"action"},
		)

		prometheus.MustRegister(requestDuration, upstreamRequests, opportunities)
	})
}

// Handler returns the Prometheus exposition handler.
func Handler() http.Handler {
	Init()
	return promhttp.Handler()
}

// RecordRequest observes one inbound request.
func RecordRequest(endpoint string, status int, elapsed time.Duration) {
	Init()
	requestDuration.WithLabelValues(endpoint, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// RecordUpstream counts one outbound call. Result is "ok" or "error".
func RecordUpstream(provider string, ok bool) {
	Init()
	result := "ok"
	if !ok {
		result = "error"
	}
	upstreamRequests.WithLabelValues(provider, result).Inc()
}

// RecordOpportunity counts one emitted opportunity.
func RecordOpportunity(action string) {
	Init()
	opportunities.WithLabelValues(action).Inc()
}
