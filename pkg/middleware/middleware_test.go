package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sensor-dashboard-api/pkg/log"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCors(t *testing.T) {
	tests := []struct {
		name           string
		allowed        []string
		origin         string
		method         string
		expectedOrigin string
		expectedStatus int
		nextCalled     bool
	}{
		{
			name:           "Curinga libera qualquer origem",
			allowed:        []string{"*"},
			origin:         "http://localhost:4200",
			method:         http.MethodGet,
			expectedOrigin: "http://localhost:4200",
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
		{
			name:           "Origem listada é liberada",
			allowed:        []string{"http://localhost:3000", "http://dashboard.local"},
			origin:         "http://dashboard.local",
			method:         http.MethodGet,
			expectedOrigin: "http://dashboard.local",
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
		{
			name:           "Origem fora da lista não recebe cabeçalhos",
			allowed:        []string{"http://localhost:3000"},
			origin:         "http://malicioso.local",
			method:         http.MethodGet,
			expectedOrigin: "",
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
		{
			name:           "Preflight de origem não liberada segue para o router",
			allowed:        []string{"http://localhost:3000"},
			origin:         "http://malicioso.local",
			method:         http.MethodOptions,
			expectedOrigin: "",
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
		{
			name:           "Preflight sem Origin segue para o router",
			allowed:        []string{"*"},
			origin:         "",
			method:         http.MethodOptions,
			expectedOrigin: "",
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
		{
			name:           "Preflight responde sem chamar o próximo handler",
			allowed:        []string{"*"},
			origin:         "http://localhost:4200",
			method:         http.MethodOptions,
			expectedOrigin: "http://localhost:4200",
			expectedStatus: http.StatusOK,
			nextCalled:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})

			req := httptest.NewRequest(tt.method, "/api/sensors/latest", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.allowed)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.nextCalled, called)
		})
	}
}

func TestLoggingMiddleware(t *testing.T) {
	log.SetupTestLogger()

	t.Run("Propaga status e ID de correlação", func(t *testing.T) {
		var correlationID string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			correlationID = log.GetCorrelationID(r.Context())
			w.WriteHeader(http.StatusTeapot)
		})

		rec := httptest.NewRecorder()
		LoggingMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.NotEmpty(t, correlationID)
		assert.Equal(t, correlationID, rec.Header().Get("X-Correlation-ID"))
	})

	t.Run("Writer mantém suporte a flush", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			flusher, ok := w.(http.Flusher)
			require.True(t, ok)
			w.Header().Set("Content-Type", "text/event-stream")
			_, _ = w.Write([]byte("data: {}\n\n"))
			flusher.Flush()
		})

		rec := httptest.NewRecorder()
		LoggingMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stream/sensors", nil))

		assert.True(t, rec.Flushed)
		assert.Equal(t, "data: {}\n\n", rec.Body.String())
	})
}

func TestLoggingResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	lrw := newLoggingResponseWriter(rec)

	lrw.WriteHeader(http.StatusCreated)
	lrw.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, lrw.statusCode)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, rec, lrw.Unwrap())
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	})

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		LogPanicMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/project/metrics", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestMetricsMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	MetricsMiddleware()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
