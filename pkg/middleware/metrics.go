package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/sensor-dashboard-api/internal/metrics"
)

// MetricsMiddleware registra contagem e duração das requisições no Prometheus
func MetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			// Rótulo pelo padrão da rota, nunca pela URL crua
			ctx, route := metrics.WithRouteHolder(r.Context())
			next.ServeHTTP(lrw, r.WithContext(ctx))

			metrics.ObserveRequest(r.Method, route(), lrw.statusCode, time.Since(startTime), lrw.isEventStream())
		})
	}
}
