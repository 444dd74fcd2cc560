package domain

import (
	"errors"

	"github.com/vfg2006/sensor-dashboard-api/pkg/utils"
)

// ErrEmptySprints é retornado quando o documento do projeto não possui sprints
var ErrEmptySprints = errors.New("project document has no sprints")

// Sprint representa os números de uma iteração no documento do projeto
type Sprint struct {
	DeliveredPoints float64 `json:"delivered_points"`
	PlannedPoints   float64 `json:"planned_points"`
	EV              float64 `json:"ev"`
	PV              float64 `json:"pv"`
	AC              float64 `json:"ac"`
}

// ProjectDocument é o documento de acompanhamento do projeto
type ProjectDocument struct {
	Sprints []Sprint `json:"sprints"`
}

// BurndownPoint representa os pontos restantes ao final de uma sprint
type BurndownPoint struct {
	Sprint    int     `json:"sprint"`
	Remaining float64 `json:"remaining"`
}

// ProjectMetrics agrega as métricas derivadas das sprints
type ProjectMetrics struct {
	Velocity     float64         `json:"velocity"`
	CPI          float64         `json:"cpi"`
	SPI          float64         `json:"spi"`
	EarnedValue  float64         `json:"earned_value"`
	PlannedValue float64         `json:"planned_value"`
	ActualCost   float64         `json:"actual_cost"`
	Burndown     []BurndownPoint `json:"burndown"`
}

// CalculateProjectMetrics calcula velocity, CPI, SPI e burndown a partir das sprints.
// A ordem das sprints define o índice (1-based) do burndown.
func CalculateProjectMetrics(sprints []Sprint) (*ProjectMetrics, error) {
	if len(sprints) == 0 {
		return nil, ErrEmptySprints
	}

	var delivered, planned, ev, pv, ac float64
	for _, s := range sprints {
		delivered += s.DeliveredPoints
		planned += s.PlannedPoints
		ev += s.EV
		pv += s.PV
		ac += s.AC
	}

	velocity := delivered / float64(len(sprints))

	// Índices com proteção contra divisão por zero
	cpi := 0.0
	if ac > 0 {
		cpi = ev / ac
	}

	spi := 0.0
	if pv > 0 {
		spi = ev / pv
	}

	burndown := make([]BurndownPoint, 0, len(sprints))
	remaining := planned
	for i, s := range sprints {
		remaining -= s.DeliveredPoints
		burndown = append(burndown, BurndownPoint{
			Sprint:    i + 1,
			Remaining: utils.RoundWithTwoDecimalPlace(max(0, remaining)),
		})
	}

	return &ProjectMetrics{
		Velocity:     utils.RoundWithTwoDecimalPlace(velocity),
		CPI:          utils.RoundWithTwoDecimalPlace(cpi),
		SPI:          utils.RoundWithTwoDecimalPlace(spi),
		EarnedValue:  utils.RoundWithTwoDecimalPlace(ev),
		PlannedValue: utils.RoundWithTwoDecimalPlace(pv),
		ActualCost:   utils.RoundWithTwoDecimalPlace(ac),
		Burndown:     burndown,
	}, nil
}
