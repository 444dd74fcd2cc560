package projecting

import (
	"context"
	"errors"

	"github.com/vfg2006/sensor-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sensor-dashboard-api/internal/domain"
	"github.com/vfg2006/sensor-dashboard-api/pkg/apiErrors"
)

type MetricsService interface {
	// ComputeMetrics carrega o documento do projeto e calcula velocity, CPI, SPI e burndown
	ComputeMetrics(ctx context.Context) (*domain.ProjectMetrics, error)
}

type ProjectMetricsService struct {
	ProjectRepository repository.ProjectRepository
}

func NewProjectMetricsService(projectRepository repository.ProjectRepository) MetricsService {
	return &ProjectMetricsService{
		ProjectRepository: projectRepository,
	}
}

func (s *ProjectMetricsService) ComputeMetrics(ctx context.Context) (*domain.ProjectMetrics, error) {
	document, err := s.ProjectRepository.Load(ctx)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProjectNotFound):
			return nil, NewProjectError(err, apiErrors.ErrResourceNotFound, "")
		case errors.Is(err, repository.ErrProjectMalformed):
			return nil, NewProjectError(err, apiErrors.ErrMalformedDocument, "")
		default:
			return nil, NewProjectError(err, apiErrors.ErrStorageOperation, "")
		}
	}

	metrics, err := domain.CalculateProjectMetrics(document.Sprints)
	if err != nil {
		if errors.Is(err, domain.ErrEmptySprints) {
			return nil, NewProjectError(err, apiErrors.ErrEmptyInput, "velocity indefinida sem sprints")
		}
		return nil, NewProjectError(err, apiErrors.ErrInternalServer, "")
	}

	return metrics, nil
}
