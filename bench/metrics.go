package bench

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exports the timings of a run as Prometheus metrics.
type Metrics struct {
	registry *prometheus.Registry
	latency  *prometheus.HistogramVec
	cells    *prometheus.CounterVec
}

// NewMetrics creates the collectors on a dedicated registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "predict_evaluation_seconds",
			Help:    "Time spent evaluating the predictor",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"strategy", "size"}),
		cells: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "predict_cells_total",
			Help: "Total number of result cells computed",
		}, []string{"strategy"}),
	}
	m.registry.MustRegister(m.latency, m.cells)
	return m
}

// Observe records one evaluation of size elements.
func (m *Metrics) Observe(strategy string, size, cells int, elapsed time.Duration) {
	m.latency.WithLabelValues(strategy, strconv.Itoa(size)).Observe(elapsed.Seconds())
	m.cells.WithLabelValues(strategy).Add(float64(cells))
}

// Handler returns the HTTP handler exposing the metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes the metrics on addr until ctx is canceled.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
