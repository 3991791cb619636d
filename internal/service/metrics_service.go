package service

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the API and the
// upstream LLM call.
type MetricsService struct {
	registry         *prometheus.Registry
	handler          http.Handler
	requestDuration  *prometheus.HistogramVec
	requestTotal     *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	helpCacheHits    prometheus.Counter
	helpCacheMisses  prometheus.Counter
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	upstreamDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "llm_upstream_duration_seconds",
		Help:    "Latency of upstream LLM calls",
		Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 30},
	}, []string{"success"})

	helpCacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "help_cache_hits_total",
		Help: "Total help response cache hits",
	})

	helpCacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "help_cache_misses_total",
		Help: "Total help response cache misses",
	})

	registry.MustRegister(requestDuration, requestTotal, upstreamDuration, helpCacheHits, helpCacheMisses)

	return &MetricsService{
		registry:         registry,
		handler:          promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration:  requestDuration,
		requestTotal:     requestTotal,
		upstreamDuration: upstreamDuration,
		helpCacheHits:    helpCacheHits,
		helpCacheMisses:  helpCacheMisses,
	}
}

// Handler returns the Prometheus exposition handler.
func (s *MetricsService) Handler() http.Handler {
	return s.handler
}

// ObserveHTTPRequest records one handled request.
func (s *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	labels := prometheus.Labels{"method": method, "path": path, "status": strconv.Itoa(status)}
	s.requestDuration.With(labels).Observe(duration.Seconds())
	s.requestTotal.With(labels).Inc()
}

// ObserveUpstream records one upstream LLM call.
func (s *MetricsService) ObserveUpstream(duration time.Duration, success bool) {
	s.upstreamDuration.With(prometheus.Labels{"success": strconv.FormatBool(success)}).Observe(duration.Seconds())
}

// HelpCacheHit increments the help cache hit counter.
func (s *MetricsService) HelpCacheHit() {
	s.helpCacheHits.Inc()
}

// HelpCacheMiss increments the help cache miss counter.
func (s *MetricsService) HelpCacheMiss() {
	s.helpCacheMisses.Inc()
}
