package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sensor-dashboard-api/pkg/apiErrors"
)

const healthcheckPingTimeout = 2 * time.Second

// Pinger verifica a conexão com o banco de leituras
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthcheckHandler responde com o horário atual. Com banco configurado, testa a conexão antes.
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthcheckPingTimeout)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				logrus.WithError(err).Error("Healthcheck: banco de leituras indisponível")
				apiErrors.WriteError(w, apiErrors.ErrStorageUnavailable, "Banco de leituras indisponível", nil)
				return
			}
		}

		_, err := w.Write([]byte(time.Now().UTC().Format(time.RFC3339)))
		if err != nil {
			logrus.WithError(err).Warn("Erro ao responder healthcheck")
		}
	})
}
