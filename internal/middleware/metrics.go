package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "practicum"

// Metrics records request counts and latencies per route
type Metrics struct {
	registry *prometheus.Registry
	reqs     *prometheus.CounterVec
	durs     *prometheus.HistogramVec
}

// NewMetrics builds a private registry holding the HTTP collectors plus the Go runtime
// and process collectors.
func NewMetrics() *Metrics {
	reqs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Number of HTTP requests handled, by method, route and status",
	}, []string{"method", "route", "status"})

	durs := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests, by method and route",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		reqs,
		durs,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{registry: reg, reqs: reqs, durs: durs}
}

// Middleware observes every request. Unmatched paths share the "unmatched" route label
// so arbitrary URLs cannot grow the label set.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method

		m.reqs.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.durs.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
