// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"errors"

	"github.com/vfg2006/sensor-dashboard-api/internal/domain"
)

//go:generate mockgen -source=reading.go -destination=mocks/mock_reading.go -package=mocks

// ErrInvalidReading indica uma linha de leitura com valor numérico inválido
var ErrInvalidReading = errors.New("invalid sensor reading")

// ReadingRepository acessa as leituras dos sensores, na ordem em que foram gravadas
type ReadingRepository interface {
	LoadAll(ctx context.Context) ([]domain.SensorReading, error)
	AppendOne(ctx context.Context, reading domain.SensorReading) error
}
