package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sensor_dashboard_http_requests_total",
		Help: "Total HTTP requests processed by the sensor dashboard API",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sensor_dashboard_http_request_duration_seconds",
		Help:    "HTTP request duration",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	streamClientsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sensor_dashboard_stream_clients_active",
		Help: "Number of clients currently connected to the sensor stream",
	})

	streamEventsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sensor_dashboard_stream_events_total",
		Help: "Synthetic sensor events written to stream clients",
	})

	simulationRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sensor_dashboard_simulation_runs_total",
		Help: "Sensor simulation runs grouped by outcome",
	}, []string{"status"})

	simulationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sensor_dashboard_simulation_duration_seconds",
		Help:    "Duration of sensor simulation runs",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	})
)

// ObserveRequest registra contagem e duração de uma requisição HTTP.
// Streams longos não entram no histograma de duração.
func ObserveRequest(method, path string, status int, duration time.Duration, streaming bool) {
	method = methodLabel(method)
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	if !streaming {
		httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	}
}

// methodLabel limita o rótulo aos métodos conhecidos
func methodLabel(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodOptions:
		return method
	default:
		return "OTHER"
	}
}

// StreamOpened registra um novo cliente no stream e retorna a função de encerramento
func StreamOpened() func() {
	streamClientsActive.Inc()
	return func() {
		streamClientsActive.Dec()
	}
}

// ObserveStreamEvent registra um evento entregue a um cliente do stream
func ObserveStreamEvent() {
	streamEventsTotal.Inc()
}

// ObserveSimulationRun registra o resultado de uma execução do simulador
func ObserveSimulationRun(success bool, duration time.Duration) {
	simulationDuration.Observe(duration.Seconds())
	if success {
		simulationRunsTotal.WithLabelValues("success").Inc()
		return
	}
	simulationRunsTotal.WithLabelValues("failed").Inc()
}

type routeKey struct{}

// UnmatchedRoute é o rótulo das requisições que não chegaram a nenhuma rota registrada
const UnmatchedRoute = "unmatched"

type routeHolder struct {
	pattern string
}

// WithRouteHolder prepara o contexto para receber o padrão da rota encontrada pelo router.
// A função retornada devolve o padrão, ou UnmatchedRoute.
func WithRouteHolder(ctx context.Context) (context.Context, func() string) {
	holder := &routeHolder{}
	return context.WithValue(ctx, routeKey{}, holder), func() string {
		if holder.pattern == "" {
			return UnmatchedRoute
		}
		return holder.pattern
	}
}

// SetRoute grava o padrão da rota (ex.: /api/cron/:type/run) no contexto preparado
func SetRoute(ctx context.Context, pattern string) {
	if holder, ok := ctx.Value(routeKey{}).(*routeHolder); ok {
		holder.pattern = pattern
	}
}
