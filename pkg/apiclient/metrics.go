package apiclient

import (
	"regexp"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// numericSegments collapses path IDs so metric labels stay low-cardinality:
// /api/v1/items/42 becomes /api/v1/items/:id.
var numericSegments = regexp.MustCompile(`/\d+`)

type requestMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// WithMetrics registers request counters and duration histograms on the
// given registerer and attaches them to the client.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Client) {
		m := &requestMetrics{
			requests: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "xetasuite",
				Subsystem: "client",
				Name:      "requests_total",
				Help:      "API requests issued, by method, route and status.",
			}, []string{"method", "route", "status"}),
			duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: "xetasuite",
				Subsystem: "client",
				Name:      "request_duration_seconds",
				Help:      "API request latency, by method and route.",
				Buckets:   prometheus.DefBuckets,
			}, []string{"method", "route"}),
		}
		reg.MustRegister(m.requests, m.duration)
		c.metrics = m
	}
}

// observe is nil-safe so the client works unchanged without metrics.
func (m *requestMetrics) observe(method, path string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	route := numericSegments.ReplaceAllString(path, "/:id")
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
