package streaming

import (
	"context"
	"time"

	"github.com/vfg2006/sensor-dashboard-api/internal/domain"
)

// DefaultInterval é o intervalo entre eventos do stream de sensores
const DefaultInterval = 5 * time.Second

type SensorStreamer interface {
	// Stream emite uma leitura imediatamente e depois uma a cada intervalo.
	// O canal é fechado quando ctx é cancelado.
	Stream(ctx context.Context) <-chan domain.SensorReading
}

type Emitter struct {
	interval     time.Duration
	now          func() time.Time
	newGenerator func() ReadingGenerator
}

func NewEmitter(interval time.Duration) *Emitter {
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Emitter{
		interval: interval,
		now:      time.Now,
		newGenerator: func() ReadingGenerator {
			return NewRandomReadingGenerator()
		},
	}
}

// WithGenerator troca a fábrica de geradores (um gerador por conexão)
func (e *Emitter) WithGenerator(factory func() ReadingGenerator) *Emitter {
	e.newGenerator = factory
	return e
}

// Interval retorna o intervalo configurado
func (e *Emitter) Interval() time.Duration {
	return e.interval
}

func (e *Emitter) Stream(ctx context.Context) <-chan domain.SensorReading {
	readings := make(chan domain.SensorReading)

	go func() {
		defer close(readings)

		generator := e.newGenerator()
		timer := time.NewTimer(e.interval)
		defer timer.Stop()

		for {
			if !e.deliver(ctx, readings, generator) {
				return
			}

			// O intervalo conta a partir da entrega, nunca menos que interval entre eventos
			timer.Reset(e.interval)
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}
		}
	}()

	return readings
}

// deliver entrega uma leitura. Se o consumidor demorar mais que um intervalo,
// a leitura é gerada de novo para não carregar timestamp vencido.
func (e *Emitter) deliver(ctx context.Context, readings chan<- domain.SensorReading, generator ReadingGenerator) bool {
	stale := time.NewTimer(e.interval)
	defer stale.Stop()

	reading := generator.Generate(e.now())
	for {
		select {
		case <-ctx.Done():
			return false
		case readings <- reading:
			return true
		case <-stale.C:
			reading = generator.Generate(e.now())
			stale.Reset(e.interval)
		}
	}
}
