package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "resume_coach"

// Suggestion kinds recorded by ObserveSuggestions.
const (
	KindSkills   = "skills"
	KindBullets  = "bullets"
	KindHobbies  = "hobbies"
	KindFeedback = "feedback"
)

// Metrics holds the Prometheus collectors for the HTTP API.
type Metrics struct {
	registry    *prometheus.Registry
	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	suggestions *prometheus.HistogramVec
	rateLimited *prometheus.CounterVec
}

// NewMetrics creates the collectors on a private registry, together with the Go
// runtime and process collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"route", "code"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		suggestions: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "suggestions_returned",
				Help:      "Number of suggestions returned per request",
				Buckets:   []float64{0, 1, 3, 5, 10, 20, 50},
			},
			[]string{"kind"},
		),
		rateLimited: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_limited_total",
				Help:      "Requests rejected by the rate limiter",
			},
			[]string{"route"},
		),
	}

	m.registry.MustRegister(
		m.requests,
		m.duration,
		m.suggestions,
		m.rateLimited,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveRequest records one completed HTTP request.
func (m *Metrics) ObserveRequest(route string, code int, elapsed time.Duration) {
	m.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	m.duration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// ObserveSuggestions records how many items of kind a request returned.
func (m *Metrics) ObserveSuggestions(kind string, n int) {
	m.suggestions.WithLabelValues(kind).Observe(float64(n))
}

// ObserveRateLimited records a request rejected with 429.
func (m *Metrics) ObserveRateLimited(route string) {
	m.rateLimited.WithLabelValues(route).Inc()
}
