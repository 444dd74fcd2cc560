package sensoring

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/sensor-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sensor-dashboard-api/internal/domain"
)

type SensorService interface {
	// Latest retorna a última leitura gravada ou nil quando não há leituras
	Latest(ctx context.Context) (*domain.SensorReading, error)
	// History retorna todas as leituras na ordem em que foram gravadas
	History(ctx context.Context) ([]domain.SensorReading, error)
	// Record grava uma nova leitura no final do armazenamento
	Record(ctx context.Context, reading domain.SensorReading) error
}

type ReadingService struct {
	ReadingRepository repository.ReadingRepository
}

func NewReadingService(readingRepository repository.ReadingRepository) SensorService {
	return &ReadingService{
		ReadingRepository: readingRepository,
	}
}

func (s *ReadingService) Latest(ctx context.Context) (*domain.SensorReading, error) {
	readings, err := s.ReadingRepository.LoadAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar leituras")
	}

	if len(readings) == 0 {
		return nil, nil
	}

	latest := readings[len(readings)-1]
	return &latest, nil
}

func (s *ReadingService) History(ctx context.Context) ([]domain.SensorReading, error) {
	readings, err := s.ReadingRepository.LoadAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar leituras")
	}

	if readings == nil {
		return []domain.SensorReading{}, nil
	}

	return readings, nil
}

func (s *ReadingService) Record(ctx context.Context, reading domain.SensorReading) error {
	if err := s.ReadingRepository.AppendOne(ctx, reading); err != nil {
		return errors.Wrap(err, "erro ao gravar leitura")
	}
	return nil
}
