package handler

import (
	"net/http"

	"github.com/vfg2006/sensor-dashboard-api/internal/usecases/sensoring"
	"github.com/vfg2006/sensor-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sensor-dashboard-api/pkg/log"
)

// GetLatestReading retorna a última leitura gravada, ou {} quando não há leituras
func GetLatestReading(service sensoring.SensorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		latest, err := service.Latest(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar última leitura")
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao ler leituras dos sensores", nil)
			return
		}

		if latest == nil {
			writeJSON(w, struct{}{})
			return
		}

		writeJSON(w, latest)
	}
}

// GetReadingHistory retorna todas as leituras na ordem do armazenamento
func GetReadingHistory(service sensoring.SensorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		history, err := service.History(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar histórico de leituras")
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao ler leituras dos sensores", nil)
			return
		}

		writeJSON(w, history)
	}
}
