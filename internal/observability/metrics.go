package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects Prometheus metrics for the calculation service.
type Metrics struct {
	registry            *prometheus.Registry
	handler             http.Handler
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	calculationsTotal   *prometheus.CounterVec
	calculationDuration prometheus.Histogram
	calculationFailures *prometheus.CounterVec
}

// NewMetrics initialises the registry and the base metric set.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "meridian_http_requests_total",
		Help: "HTTP requests by route and status code.",
	}, []string{"route", "code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "meridian_http_request_duration_seconds",
		Help:    "HTTP request duration per route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
	calculations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "meridian_calculations_total",
		Help: "Quotation calculations by outcome.",
	}, []string{"status"})
	calcDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "meridian_calculation_duration_seconds",
		Help:    "Time spent inside the calculation pipeline.",
		Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
	})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "meridian_calculation_failures_total",
		Help: "Aborted calculations by pipeline phase.",
	}, []string{"phase"})
	registry.MustRegister(requests, duration, calculations, calcDuration, failures)
	return &Metrics{
		registry:            registry,
		handler:             promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestsTotal:       requests,
		requestDuration:     duration,
		calculationsTotal:   calculations,
		calculationDuration: calcDuration,
		calculationFailures: failures,
	}
}

// Handler returns the http.Handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Middleware records request metrics for every HTTP request.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(&recorder, r)
		route := routePattern(r)
		m.requestsTotal.WithLabelValues(route, strconv.Itoa(recorder.status)).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// ObserveCalculation records one finished pipeline run.
func (m *Metrics) ObserveCalculation(status string, seconds float64) {
	if m == nil {
		return
	}
	m.calculationsTotal.WithLabelValues(status).Inc()
	m.calculationDuration.Observe(seconds)
}

// CalculationFailed counts an aborted run against the phase that raised.
func (m *Metrics) CalculationFailed(phase string) {
	if m == nil {
		return
	}
	m.calculationFailures.WithLabelValues(phase).Inc()
}

// Registerer exposes the registry for custom metric registration.
func (m *Metrics) Registerer() prometheus.Registerer {
	if m == nil {
		return prometheus.DefaultRegisterer
	}
	return m.registry
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func routePattern(r *http.Request) string {
	if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
		if pattern := routeCtx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unknown"
}
