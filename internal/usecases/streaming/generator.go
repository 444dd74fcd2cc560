package streaming

import (
	"math/rand/v2"
	"time"

	"github.com/vfg2006/sensor-dashboard-api/internal/domain"
	"github.com/vfg2006/sensor-dashboard-api/pkg/utils"
)

// ReadingGenerator produz leituras sintéticas
type ReadingGenerator interface {
	Generate(at time.Time) domain.SensorReading
}

// RandomReadingGenerator sorteia temperatura, energia e ocupação dentro dos limites do domínio.
// Não é seguro para uso concorrente; cada stream cria o seu.
type RandomReadingGenerator struct {
	rnd *rand.Rand
}

func NewRandomReadingGenerator() *RandomReadingGenerator {
	return &RandomReadingGenerator{
		rnd: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// NewSeededReadingGenerator cria um gerador determinístico
func NewSeededReadingGenerator(seed1, seed2 uint64) *RandomReadingGenerator {
	return &RandomReadingGenerator{
		rnd: rand.New(rand.NewPCG(seed1, seed2)),
	}
}

func (g *RandomReadingGenerator) Generate(at time.Time) domain.SensorReading {
	return domain.SensorReading{
		Timestamp:   at.UTC().Format(domain.StreamTimestampLayout),
		Temperature: g.uniform(domain.MinTemperature, domain.MaxTemperature),
		Energy:      g.uniform(domain.MinEnergy, domain.MaxEnergy),
		Occupancy:   domain.MinOccupancy + g.rnd.IntN(domain.MaxOccupancy-domain.MinOccupancy+1),
	}
}

// uniform sorteia em [low, high] com duas casas decimais
func (g *RandomReadingGenerator) uniform(low, high float64) float64 {
	v := utils.RoundWithTwoDecimalPlace(low + g.rnd.Float64()*(high-low))
	return min(max(v, low), high)
}
