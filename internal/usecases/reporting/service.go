package reporting

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/sensor-dashboard-api/internal/domain"
	"github.com/vfg2006/sensor-dashboard-api/pkg/utils"
)

const reportSummary = "Resumo: Trabalho em andamento, sem bloqueios críticos. " +
	"Próximas ações: finalizar integração do dashboard e scripts de simulação."

type Reporter interface {
	// GenerateStatusReport formata o relatório de status. velocity nil usa o valor padrão.
	GenerateStatusReport(velocity *float64) domain.StatusReport
}

type StatusReportService struct {
	defaultVelocity float64
	now             func() time.Time
}

func NewStatusReportService(defaultVelocity float64) *StatusReportService {
	return &StatusReportService{
		defaultVelocity: defaultVelocity,
		now:             time.Now,
	}
}

// WithClock substitui o relógio usado na data do cabeçalho
func (s *StatusReportService) WithClock(now func() time.Time) *StatusReportService {
	s.now = now
	return s
}

func (s *StatusReportService) GenerateStatusReport(velocity *float64) domain.StatusReport {
	v := s.defaultVelocity
	if velocity != nil {
		v = *velocity
	}

	date := s.now().UTC().Format(time.DateOnly)

	var b strings.Builder
	fmt.Fprintf(&b, "Relatório de status - %s\n", date)
	fmt.Fprintf(&b, "Velocity estimada: %s\n", utils.FormatNumber(v))
	b.WriteString(reportSummary + "\n")

	return domain.StatusReport{
		Report:      b.String(),
		GeneratedAt: date,
		Velocity:    v,
	}
}
