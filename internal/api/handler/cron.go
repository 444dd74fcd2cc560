package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sensor-dashboard-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSensorSimulation = "sensor-simulation"
)

// ManualJob é um job agendado que também pode ser disparado manualmente
type ManualJob interface {
	TriggerManualSync(ctx context.Context)
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	SensorSimulationService ManualJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSensorSimulation:
			if services.SensorSimulationService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de simulação de sensores não disponível", nil)
				return
			}
			// A execução continua depois da resposta
			services.SensorSimulationService.TriggerManualSync(context.WithoutCancel(r.Context()))

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: sensor-simulation", nil)
			return
		}

		writeJSON(w, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.SensorSimulationService != nil {
			status[CronJobTypeSensorSimulation] = services.SensorSimulationService.GetStatus()
		}

		writeJSON(w, status)
	}
}
