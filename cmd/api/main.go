package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sensor-dashboard-api/infrastructure/database/sqldb"
	"github.com/vfg2006/sensor-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sensor-dashboard-api/internal/api"
	"github.com/vfg2006/sensor-dashboard-api/internal/api/handler"
	"github.com/vfg2006/sensor-dashboard-api/internal/config"
	"github.com/vfg2006/sensor-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sensor-dashboard-api/internal/usecases/projecting"
	"github.com/vfg2006/sensor-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sensor-dashboard-api/internal/usecases/sensoring"
	"github.com/vfg2006/sensor-dashboard-api/internal/usecases/streaming"
	"github.com/vfg2006/sensor-dashboard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	readingRepo, conn := readingRepository(ctx, cfg)
	if conn != nil {
		defer conn.Close()
	}

	projectRepo, err := repository.NewJSONProjectRepository(cfg.Storage.ProjectDataFile, cfg.Storage.ProjectSchemaFile)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar schema do documento do projeto")
	}

	sensorService := sensoring.NewReadingService(readingRepo)
	metricsService := projecting.NewProjectMetricsService(projectRepo)
	reporter := reporting.NewStatusReportService(cfg.Report.DefaultVelocity)
	emitter := streaming.NewEmitter(cfg.Stream.Interval())

	sensorSimulationService := scheduler.NewSensorSimulationService(sensorService, cfg)
	if err := sensorSimulationService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o simulador de sensores")
	} else {
		logrus.Info("Simulador de sensores iniciado com sucesso")
	}

	services := api.Services{
		Sensors:  sensorService,
		Project:  metricsService,
		Reporter: reporter,
		Streamer: emitter,
		CronJobs: handler.CronJobServices{
			SensorSimulationService: sensorSimulationService,
		},
	}
	if conn != nil {
		services.Database = conn
	}

	server, err := api.New(cfg, services)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// readingRepository escolhe o armazenamento das leituras conforme READINGS_DRIVER.
// A conexão é nil no modo CSV.
func readingRepository(ctx context.Context, cfg *config.Config) (repository.ReadingRepository, *sqldb.Connection) {
	if cfg.Storage.ReadingsDriver == config.ReadingsDriverCSV {
		logrus.WithField("file", cfg.Storage.SensorsCSVFile).Info("Leituras servidas a partir do CSV")
		return repository.NewCSVReadingRepository(cfg.Storage.SensorsCSVFile), nil
	}

	conn, err := sqldb.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}

	if err := repository.EnsureReadingsSchema(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar tabela de leituras")
	}

	logrus.WithField("driver", conn.Driver()).Info("Conexão com o banco de leituras estabelecida com sucesso")
	return repository.NewSQLReadingRepository(conn), conn
}
