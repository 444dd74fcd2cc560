package handler

import (
	"bytes"
	"io"
	"net/http"

	"github.com/vfg2006/sensor-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sensor-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sensor-dashboard-api/pkg/log"
)

const maxReportBodyBytes = 1 << 20

type statusReportRequest struct {
	Velocity *float64 `json:"velocity"`
}

// GenerateStatusReport gera o relatório de status. Corpo vazio usa a velocity padrão.
func GenerateStatusReport(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxReportBodyBytes))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao ler corpo da requisição")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler corpo da requisição", nil)
			return
		}

		var req statusReportRequest
		if len(bytes.TrimSpace(body)) > 0 {
			if err := json.Unmarshal(body, &req); err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Corpo do relatório inválido")
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo deve ser um objeto JSON com velocity numérica opcional", nil)
				return
			}
		}

		writeJSON(w, reporter.GenerateStatusReport(req.Velocity))
	}
}
