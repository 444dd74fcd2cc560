// Package scheduler contém os serviços agendados da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sensor-dashboard-api/internal/config"
	"github.com/vfg2006/sensor-dashboard-api/internal/metrics"
	"github.com/vfg2006/sensor-dashboard-api/internal/usecases/sensoring"
	"github.com/vfg2006/sensor-dashboard-api/internal/usecases/streaming"
)

// SensorSimulationConfig representa a configuração do simulador de sensores
type SensorSimulationConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SensorSimulationService grava periodicamente leituras sintéticas no armazenamento
type SensorSimulationService struct {
	scheduler           *gocron.Scheduler
	config              SensorSimulationConfig
	sensorService       sensoring.SensorService
	generator           streaming.ReadingGenerator
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	statusMutex         sync.RWMutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastError           string
	generatedReadings   int
}

func NewSensorSimulationService(
	sensorService sensoring.SensorService,
	cfg *config.Config,
) *SensorSimulationService {
	simulationConfig := SensorSimulationConfig{
		CronSchedule: cfg.SensorSimulation.CronSchedule,
		SyncEnabled:  cfg.SensorSimulation.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": simulationConfig.CronSchedule,
		"sync_enabled":  simulationConfig.SyncEnabled,
	}).Info("Configuração do simulador de sensores carregada")

	return &SensorSimulationService{
		scheduler:     gocron.NewScheduler(time.UTC),
		config:        simulationConfig,
		sensorService: sensorService,
		generator:     streaming.NewRandomReadingGenerator(),
		now:           time.Now,
	}
}

// Start inicia o agendador
func (s *SensorSimulationService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Simulador de sensores desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando simulador de sensores")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunSimulation(ctx); err != nil {
			logrus.WithError(err).Error("Erro na simulação de leitura de sensores")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar simulador de sensores: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando simulador de sensores")
		s.scheduler.Stop()
	}()

	return nil
}

// RunSimulation gera uma leitura sintética e a grava no armazenamento
func (s *SensorSimulationService) RunSimulation(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Simulação de sensores já está em execução")
		return nil
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startedAt := s.now()
	s.setStarted(startedAt)

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	reading := s.generator.Generate(startedAt)
	err := s.sensorService.Record(ctx, reading)

	s.setCompleted(s.now(), err)
	metrics.ObserveSimulationRun(err == nil, s.now().Sub(startedAt))

	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"timestamp":   reading.Timestamp,
		"temperature": reading.Temperature,
		"energy":      reading.Energy,
		"occupancy":   reading.Occupancy,
	}).Debug("Leitura simulada gravada")

	return nil
}

func (s *SensorSimulationService) setStarted(at time.Time) {
	s.statusMutex.Lock()
	defer s.statusMutex.Unlock()
	s.lastSyncStartedAt = at
}

func (s *SensorSimulationService) setCompleted(at time.Time, err error) {
	s.statusMutex.Lock()
	defer s.statusMutex.Unlock()
	s.lastSyncCompletedAt = at
	if err != nil {
		s.lastError = err.Error()
		return
	}
	s.lastError = ""
	s.generatedReadings++
}

// TriggerManualSync executa uma simulação fora do agendamento, em background
func (s *SensorSimulationService) TriggerManualSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Simulação de sensores já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando simulação manual de sensores")
	go func() {
		if err := s.RunSimulation(ctx); err != nil {
			logrus.WithError(err).Error("Erro na simulação manual de sensores")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *SensorSimulationService) GetStatus() map[string]any {
	s.statusMutex.RLock()
	defer s.statusMutex.RUnlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_error":             s.lastError,
		"generated_readings":     s.generatedReadings,
	}
}
