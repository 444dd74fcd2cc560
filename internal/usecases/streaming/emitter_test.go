package streaming

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sensor-dashboard-api/internal/domain"
)

// recordingGenerator guarda os instantes em que cada leitura foi gerada
type recordingGenerator struct {
	mu    sync.Mutex
	times []time.Time
	inner ReadingGenerator
}

func (g *recordingGenerator) Generate(at time.Time) domain.SensorReading {
	g.mu.Lock()
	g.times = append(g.times, at)
	g.mu.Unlock()
	return g.inner.Generate(at)
}

func (g *recordingGenerator) snapshot() []time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]time.Time{}, g.times...)
}

func TestRandomReadingGenerator_Bounds(t *testing.T) {
	generator := NewRandomReadingGenerator()
	at := time.Date(2024, 5, 1, 10, 0, 0, 123456000, time.UTC)

	seenOccupancy := map[int]bool{}
	for i := 0; i < 5000; i++ {
		reading := generator.Generate(at)

		assert.True(t, reading.WithinSyntheticBounds(), "leitura fora dos limites: %+v", reading)
		assert.Equal(t, "2024-05-01T10:00:00.123456", reading.Timestamp)
		seenOccupancy[reading.Occupancy] = true
	}

	// Os dois extremos inteiros aparecem em 5000 sorteios
	assert.True(t, seenOccupancy[domain.MinOccupancy])
	assert.True(t, seenOccupancy[domain.MaxOccupancy])
}

func TestRandomReadingGenerator_TwoDecimals(t *testing.T) {
	generator := NewSeededReadingGenerator(1, 2)

	for i := 0; i < 100; i++ {
		reading := generator.Generate(time.Now())
		assert.InDelta(t, reading.Temperature, float64(int64(reading.Temperature*100+0.5))/100, 1e-9)
		assert.InDelta(t, reading.Energy, float64(int64(reading.Energy*100+0.5))/100, 1e-9)
	}
}

func TestRandomReadingGenerator_Seeded(t *testing.T) {
	at := time.Now()
	a := NewSeededReadingGenerator(42, 7).Generate(at)
	b := NewSeededReadingGenerator(42, 7).Generate(at)

	assert.Equal(t, a, b)
}

func TestEmitter_Stream(t *testing.T) {
	interval := 30 * time.Millisecond
	recorder := &recordingGenerator{inner: NewRandomReadingGenerator()}
	emitter := NewEmitter(interval).WithGenerator(func() ReadingGenerator { return recorder })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	readings := emitter.Stream(ctx)

	start := time.Now()
	received := make([]domain.SensorReading, 0, 3)
	for len(received) < 3 {
		select {
		case reading, ok := <-readings:
			require.True(t, ok)
			received = append(received, reading)
		case <-time.After(time.Second):
			t.Fatal("stream não emitiu a tempo")
		}
	}

	// Primeiro evento é imediato
	times := recorder.snapshot()
	require.GreaterOrEqual(t, len(times), 3)
	assert.Less(t, times[0].Sub(start), interval)

	for i := 1; i < 3; i++ {
		assert.GreaterOrEqual(t, times[i].Sub(times[i-1]), interval)
	}

	for _, reading := range received {
		assert.True(t, reading.WithinSyntheticBounds())
	}
}

func TestEmitter_SlowConsumerGetsFreshTimestamp(t *testing.T) {
	interval := 20 * time.Millisecond
	emitter := NewEmitter(interval)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	start := time.Now()
	readings := emitter.Stream(ctx)

	// Consumidor ocupado por vários intervalos antes de ler
	time.Sleep(10 * interval)

	reading := <-readings
	at, err := time.Parse(domain.StreamTimestampLayout, reading.Timestamp)
	require.NoError(t, err)

	assert.False(t, at.Before(start.UTC().Add(5*interval)), "timestamp vencido: %s", reading.Timestamp)
}

func TestEmitter_StreamClosesOnCancel(t *testing.T) {
	emitter := NewEmitter(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	readings := emitter.Stream(ctx)
	<-readings // primeiro evento imediato

	cancel()

	select {
	case _, ok := <-readings:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("canal não foi fechado após cancelamento")
	}
}

func TestEmitter_IndependentConnections(t *testing.T) {
	var mu sync.Mutex
	created := 0
	emitter := NewEmitter(time.Hour).WithGenerator(func() ReadingGenerator {
		mu.Lock()
		created++
		mu.Unlock()
		return NewRandomReadingGenerator()
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	<-emitter.Stream(ctx)
	<-emitter.Stream(ctx)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, created)
}

func TestNewEmitter_DefaultInterval(t *testing.T) {
	assert.Equal(t, DefaultInterval, NewEmitter(0).Interval())
	assert.Equal(t, 5*time.Second, DefaultInterval)
}
