package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sensor-dashboard-api/internal/api/handler"
	"github.com/vfg2006/sensor-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sensor-dashboard-api/internal/config"
	"github.com/vfg2006/sensor-dashboard-api/internal/usecases/projecting"
	"github.com/vfg2006/sensor-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sensor-dashboard-api/internal/usecases/sensoring"
	"github.com/vfg2006/sensor-dashboard-api/internal/usecases/streaming"
	"github.com/vfg2006/sensor-dashboard-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
	// cancelStreams encerra os streams abertos, que não terminam sozinhos no Shutdown
	cancelStreams context.CancelFunc
}

// Services agrupa as dependências expostas pelas rotas
type Services struct {
	Sensors  sensoring.SensorService
	Project  projecting.MetricsService
	Reporter reporting.Reporter
	Streamer streaming.SensorStreamer
	CronJobs handler.CronJobServices
	Database handler.Pinger
}

func New(config *config.Config, services Services) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Database)...),
		router.WithRoutes(handler.Metrics()...),
		router.WithRoutes(handler.Sensors(services.Sensors)...),
		router.WithRoutes(handler.Project(services.Project)...),
		router.WithRoutes(handler.Report(services.Reporter)...),
		router.WithRoutes(handler.Stream(services.Streamer)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.MetricsMiddleware(),
		middleware.Cors(config.Server.CorsAllowedOrigins),
	}

	handler := alice.New(middlewares...).Then(rt)

	baseCtx, cancel := context.WithCancel(context.Background())

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
			BaseContext: func(net.Listener) context.Context {
				return baseCtx
			},
		},
		cancelStreams: cancel,
	}

	return srv, nil
}

// Handler retorna o handler HTTP completo, com middlewares
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Encerrando streams de sensores abertos")
	s.cancelStreams()

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
