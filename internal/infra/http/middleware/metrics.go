package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	messagesAppended = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_messages_appended_total",
			Help: "Total number of messages appended to lead ledgers",
		},
		[]string{"sender"},
	)

	quotesGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quotes_generated_total",
			Help: "Total number of quote previews generated",
		},
	)

	checkoutSessions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_sessions_total",
			Help: "Total number of checkout sessions requested",
		},
		[]string{"mode", "status"},
	)

	inboundIgnored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "inbound_messages_ignored_total",
			Help: "Total number of inbound messages from unknown numbers",
		},
	)

	integrationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "integration_errors_total",
			Help: "Total number of integration errors",
		},
		[]string{"service"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordMessageAppended(sender string) {
	messagesAppended.WithLabelValues(sender).Inc()
}

func RecordQuoteGenerated() {
	quotesGenerated.Inc()
}

func RecordCheckoutSession(mode, status string) {
	checkoutSessions.WithLabelValues(mode, status).Inc()
}

func RecordInboundIgnored() {
	inboundIgnored.Inc()
}

func RecordIntegrationError(service string) {
	integrationErrors.WithLabelValues(service).Inc()
}
