package reporting

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedClock() time.Time {
	// 23h em São Paulo já é dia seguinte em UTC
	return time.Date(2024, 3, 9, 23, 30, 0, 0, time.FixedZone("BRT", -3*60*60))
}

func TestStatusReportService_GenerateStatusReport(t *testing.T) {
	service := NewStatusReportService(24).WithClock(fixedClock)

	tests := []struct {
		name     string
		velocity *float64
		expected string
	}{
		{
			name:     "Velocity omitida usa o padrão 24",
			velocity: nil,
			expected: "Velocity estimada: 24\n",
		},
		{
			name:     "Velocity decimal informada",
			velocity: func() *float64 { v := 7.5; return &v }(),
			expected: "Velocity estimada: 7.5\n",
		},
		{
			name:     "Velocity zero informada não usa o padrão",
			velocity: func() *float64 { v := 0.0; return &v }(),
			expected: "Velocity estimada: 0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := service.GenerateStatusReport(tt.velocity)

			lines := strings.Split(report.Report, "\n")
			assert.Len(t, lines, 4) // três linhas + vazio após o último \n
			assert.Equal(t, "Relatório de status - 2024-03-10", lines[0])
			assert.Contains(t, report.Report, tt.expected)
			assert.True(t, strings.HasPrefix(lines[2], "Resumo: Trabalho em andamento"))
			assert.Equal(t, "2024-03-10", report.GeneratedAt)
		})
	}
}

func TestStatusReportService_DefaultVelocityConfigurable(t *testing.T) {
	report := NewStatusReportService(30).WithClock(fixedClock).GenerateStatusReport(nil)

	assert.Contains(t, report.Report, "Velocity estimada: 30\n")
	assert.Equal(t, 30.0, report.Velocity)
}
