package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	metricRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "logotint_http_requests_total",
		Help: "HTTP requests by route",
	}, []string{"route"})

	metricErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "logotint_http_errors_total",
		Help: "HTTP error responses by route and status",
	}, []string{"route", "status"})

	metricReplacements = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "logotint_replacements",
		Help:    "Color references rewritten per render",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
	})

	metricImports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "logotint_imports_total",
		Help: "Envelope imports by outcome",
	}, []string{"outcome"})

	metricExports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "logotint_exports_total",
		Help: "Exports by format",
	}, []string{"format"})

	metricPreviewSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "logotint_preview_sessions",
		Help: "Open live preview websocket sessions",
	})
)

// routeLabel keeps label cardinality bounded by dropping path parameters.
func routeLabel(r *http.Request) string {
	p := r.URL.Path
	for _, prefix := range []string{"/api/schemes/", "/api/presets/"} {
		if strings.HasPrefix(p, prefix) && len(p) > len(prefix) {
			return prefix + ":id"
		}
	}
	return p
}

func instrument(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metricRequests.WithLabelValues(routeLabel(r)).Inc()
		next(w, r)
	}
}

// MetricsServer exposes /metrics on its own listener.
type MetricsServer struct {
	srv *http.Server
}

func NewMetricsServer(addr string) *MetricsServer {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &MetricsServer{srv: &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}}
}

// ListenAndServe blocks until the server stops. A clean shutdown returns nil.
func (m *MetricsServer) ListenAndServe() error {
	if err := m.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (m *MetricsServer) Shutdown(ctx context.Context) error {
	return m.srv.Shutdown(ctx)
}
