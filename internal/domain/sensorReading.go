// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// StreamTimestampLayout é o formato ISO 8601 (sem fuso) usado nas leituras sintéticas
const StreamTimestampLayout = "2006-01-02T15:04:05.000000"

// SensorReading representa uma leitura ambiental com data e hora
type SensorReading struct {
	Timestamp   string  `json:"timestamp"`
	Temperature float64 `json:"temperature"`
	Energy      float64 `json:"energy"`
	Occupancy   int     `json:"occupancy"`
}

// Limites das leituras sintéticas (inclusivos)
const (
	MinTemperature = 20.0
	MaxTemperature = 27.0
	MinEnergy      = 80.0
	MaxEnergy      = 200.0
	MinOccupancy   = 0
	MaxOccupancy   = 10
)

// WithinSyntheticBounds indica se a leitura respeita os limites das leituras sintéticas
func (r SensorReading) WithinSyntheticBounds() bool {
	return r.Temperature >= MinTemperature && r.Temperature <= MaxTemperature &&
		r.Energy >= MinEnergy && r.Energy <= MaxEnergy &&
		r.Occupancy >= MinOccupancy && r.Occupancy <= MaxOccupancy
}
