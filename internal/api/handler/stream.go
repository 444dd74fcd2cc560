package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vfg2006/sensor-dashboard-api/internal/metrics"
	"github.com/vfg2006/sensor-dashboard-api/internal/usecases/streaming"
	"github.com/vfg2006/sensor-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sensor-dashboard-api/pkg/log"
	"github.com/vfg2006/sensor-dashboard-api/pkg/utils"
)

// StreamSensors envia leituras sintéticas como Server-Sent Events até o cliente desconectar
func StreamSensors(streamer streaming.SensorStreamer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrStreamNotSupported, "Conexão não suporta streaming", nil)
			return
		}

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		streamID, err := utils.GenerateID()
		if err != nil {
			log.ForContext(ctx).WithError(err).Warn("Erro ao gerar ID do stream")
		}
		logger := log.ForContext(ctx).WithField("stream_id", streamID)

		h := w.Header()
		h.Set("Content-Type", "text/event-stream")
		h.Set("Cache-Control", "no-cache")
		h.Set("Connection", "keep-alive")
		h.Set("X-Accel-Buffering", "no")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		closeStream := metrics.StreamOpened()
		defer closeStream()

		logger.Info("Cliente conectado ao stream de sensores")

		sent := 0
		for reading := range streamer.Stream(ctx) {
			payload, err := json.Marshal(reading)
			if err != nil {
				logger.WithError(err).Error("Erro ao serializar leitura do stream")
				return
			}

			if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
				logger.WithError(err).Debug("Erro ao escrever no stream, encerrando")
				return
			}
			flusher.Flush()

			sent++
			metrics.ObserveStreamEvent()
		}

		logger.WithField("events", sent).Info("Cliente desconectado do stream de sensores")
	}
}
