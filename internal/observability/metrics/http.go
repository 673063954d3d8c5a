package metrics

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HTTPServerMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	classificationsTotal   *prometheus.CounterVec
	documentsAnalyzedTotal *prometheus.CounterVec
	verificationsTotal     *prometheus.CounterVec
	fraudChecksTotal       *prometheus.CounterVec
	matchRequestsTotal     *prometheus.CounterVec
	matchesReturned        *prometheus.HistogramVec
}

func NewHTTPServerMetrics(service string) *HTTPServerMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "savelife",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "savelife",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "savelife",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	classificationsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "savelife",
			Subsystem: "campaign",
			Name:      "classifications_total",
			Help:      "Total condition classifications by resulting condition.",
		},
		[]string{"service", "condition"},
	)
	documentsAnalyzedTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "savelife",
			Subsystem: "verification",
			Name:      "documents_analyzed_total",
			Help:      "Total analyzed documents by type and verification status.",
		},
		[]string{"service", "type", "status"},
	)
	verificationsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "savelife",
			Subsystem: "verification",
			Name:      "campaigns_total",
			Help:      "Total campaign verifications by overall status.",
		},
		[]string{"service", "status"},
	)
	fraudChecksTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "savelife",
			Subsystem: "verification",
			Name:      "fraud_checks_total",
			Help:      "Total fraud screenings by resulting risk level.",
		},
		[]string{"service", "risk"},
	)
	matchRequestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "savelife",
			Subsystem: "matching",
			Name:      "requests_total",
			Help:      "Total matching requests by strategy.",
		},
		[]string{"service", "strategy"},
	)
	matchesReturned := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "savelife",
			Subsystem: "matching",
			Name:      "matches_returned",
			Help:      "Distribution of matches returned per matching request.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 10},
		},
		[]string{"service", "strategy"},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		classificationsTotal,
		documentsAnalyzedTotal,
		verificationsTotal,
		fraudChecksTotal,
		matchRequestsTotal,
		matchesReturned,
	)

	return &HTTPServerMetrics{
		registry:               registry,
		requestTotal:           requestTotal,
		requestDuration:        requestDuration,
		requestInFlight:        requestInFlight,
		classificationsTotal:   classificationsTotal,
		documentsAnalyzedTotal: documentsAnalyzedTotal,
		verificationsTotal:     verificationsTotal,
		fraudChecksTotal:       fraudChecksTotal,
		matchRequestsTotal:     matchRequestsTotal,
		matchesReturned:        matchesReturned,
	}
}

func (m *HTTPServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *HTTPServerMetrics) Middleware(service string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(
			service,
			r.Method,
			r.URL.Path,
			strconv.Itoa(recorder.statusCode),
		).Inc()
		m.requestDuration.WithLabelValues(service, r.Method, r.URL.Path).Observe(time.Since(start).Seconds())
	})
}

func (m *HTTPServerMetrics) RecordClassification(service, condition string) {
	if condition == "" {
		condition = "unknown"
	}
	m.classificationsTotal.WithLabelValues(service, condition).Inc()
}

func (m *HTTPServerMetrics) RecordDocumentAnalysis(service, docType, status string) {
	m.documentsAnalyzedTotal.WithLabelValues(service, docType, status).Inc()
}

func (m *HTTPServerMetrics) RecordCampaignVerification(service, status string) {
	m.verificationsTotal.WithLabelValues(service, status).Inc()
}

func (m *HTTPServerMetrics) RecordFraudCheck(service, risk string) {
	m.fraudChecksTotal.WithLabelValues(service, risk).Inc()
}

func (m *HTTPServerMetrics) RecordMatchingRequest(service, strategy string, matches int) {
	if strategy == "" {
		strategy = "unknown"
	}
	m.matchRequestsTotal.WithLabelValues(service, strategy).Inc()
	m.matchesReturned.WithLabelValues(service, strategy).Observe(float64(matches))
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusRecorder) Flush() {
	flusher, ok := w.ResponseWriter.(http.Flusher)
	if ok {
		flusher.Flush()
	}
}

func (w *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not implement http.Hijacker")
	}
	return hijacker.Hijack()
}

func (w *statusRecorder) Push(target string, opts *http.PushOptions) error {
	pusher, ok := w.ResponseWriter.(http.Pusher)
	if !ok {
		return http.ErrNotSupported
	}
	return pusher.Push(target, opts)
}
