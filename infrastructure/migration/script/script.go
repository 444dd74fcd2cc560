// Script que copia as leituras do CSV para o backend SQL configurado em READINGS_DRIVER
package main

import (
	"context"
	"flag"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sensor-dashboard-api/infrastructure/database/sqldb"
	"github.com/vfg2006/sensor-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sensor-dashboard-api/internal/config"
	"github.com/vfg2006/sensor-dashboard-api/pkg/log"
)

func main() {
	csvPath := flag.String("csv", "", "arquivo CSV de origem (padrão: SENSORS_CSV_FILE)")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Configure(cfg.App.LogLevel)

	if cfg.Storage.ReadingsDriver == config.ReadingsDriverCSV {
		logrus.Fatal("READINGS_DRIVER deve ser postgres ou sqlite para a importação")
	}

	source := cfg.Storage.SensorsCSVFile
	if *csvPath != "" {
		source = *csvPath
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	logrus.WithField("file", source).Info("Iniciando importação de leituras...")
	startTime := time.Now()

	readings, err := repository.NewCSVReadingRepository(source).LoadAll(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao ler leituras do CSV")
	}

	conn, err := sqldb.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}
	defer conn.Close()

	if err := repository.EnsureReadingsSchema(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar tabela de leituras")
	}

	imported, err := repository.ImportReadings(ctx, conn, readings)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao importar leituras")
	}

	logrus.WithFields(logrus.Fields{
		"driver":   conn.Driver(),
		"imported": imported,
		"duration": time.Since(startTime).String(),
	}).Info("Importação concluída com sucesso")
}
