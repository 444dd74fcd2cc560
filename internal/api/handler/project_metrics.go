package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/sensor-dashboard-api/internal/usecases/projecting"
	"github.com/vfg2006/sensor-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sensor-dashboard-api/pkg/log"
)

var projectErrorMessages = map[string]string{
	apiErrors.ErrResourceNotFound:  "Documento do projeto não encontrado",
	apiErrors.ErrMalformedDocument: "Documento do projeto malformado",
	apiErrors.ErrEmptyInput:        "Projeto sem sprints",
	apiErrors.ErrStorageOperation:  "Erro ao ler documento do projeto",
}

// GetProjectMetrics calcula velocity, CPI, SPI e burndown do projeto
func GetProjectMetrics(service projecting.MetricsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics, err := service.ComputeMetrics(r.Context())
		if err != nil {
			logger := log.ForContext(r.Context()).WithError(err)

			var projectErr *projecting.ProjectError
			if errors.As(err, &projectErr) {
				if apiErrors.StatusFor(projectErr.Code) >= http.StatusInternalServerError {
					logger.Error("Erro ao calcular métricas do projeto")
				} else {
					logger.Warn("Métricas do projeto indisponíveis")
				}

				message, ok := projectErrorMessages[projectErr.Code]
				if !ok {
					message = "Erro ao calcular métricas do projeto"
				}

				var details any
				if projectErr.Details != "" {
					details = projectErr.Details
				}
				apiErrors.WriteError(w, projectErr.Code, message, details)
				return
			}

			logger.Error("Erro inesperado ao calcular métricas do projeto")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular métricas do projeto", nil)
			return
		}

		writeJSON(w, metrics)
	}
}
