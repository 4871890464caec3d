// Package metrics collects and exposes prometheus metrics for the API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	requestLatency  *prometheus.HistogramVec
	upstreamErrors  *prometheus.CounterVec
	signinsStarted  prometheus.Counter
	sessionsCreated prometheus.Counter
}

func New() *Collector {
	reg := prometheus.NewRegistry()
	c := &Collector{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ansadash_requests_total",
			Help: "API requests by route and status code",
		}, []string{"route", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ansadash_request_duration_seconds",
			Help:    "API request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		upstreamErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ansadash_upstream_errors_total",
			Help: "Failed Ansa calls by error class",
		}, []string{"class"}),
		signinsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ansadash_signins_started_total",
			Help: "Magic-link sign-in requests accepted",
		}),
		sessionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ansadash_sessions_created_total",
			Help: "Sessions created from exchanged sign-in codes",
		}),
	}

	reg.MustRegister(
		c.requests,
		c.requestLatency,
		c.upstreamErrors,
		c.signinsStarted,
		c.sessionsCreated,
	)
	return c
}

func (c *Collector) RecordRequest(route string, status int, duration time.Duration) {
	c.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	c.requestLatency.WithLabelValues(route).Observe(duration.Seconds())
}

func (c *Collector) RecordUpstreamError(class string) {
	c.upstreamErrors.WithLabelValues(class).Inc()
}

func (c *Collector) RecordSigninStarted() {
	c.signinsStarted.Inc()
}

func (c *Collector) RecordSessionCreated() {
	c.sessionsCreated.Inc()
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
