package repository

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/vfg2006/sensor-dashboard-api/internal/domain"
)

var csvHeader = []string{"timestamp", "temperature", "energy", "occupancy"}

type csvReadingRepository struct {
	path string
	// Serializa escritas do simulador; leituras não usam lock
	writeMutex sync.Mutex
}

// NewCSVReadingRepository cria um repositório que relê o arquivo CSV inteiro a cada chamada
func NewCSVReadingRepository(path string) ReadingRepository {
	return &csvReadingRepository{path: path}
}

func (r *csvReadingRepository) LoadAll(ctx context.Context) ([]domain.SensorReading, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.SensorReading{}, nil
		}
		return nil, errors.Wrapf(err, "erro ao abrir arquivo de leituras %s", r.path)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return []domain.SensorReading{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler cabeçalho do CSV")
	}

	columns, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	readings := make([]domain.SensorReading, 0)
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao ler linha %d do CSV", line)
		}

		reading, err := parseRecord(record, columns)
		if err != nil {
			return nil, errors.Wrapf(err, "linha %d", line)
		}

		readings = append(readings, reading)
	}

	return readings, nil
}

func (r *csvReadingRepository) AppendOne(_ context.Context, reading domain.SensorReading) error {
	r.writeMutex.Lock()
	defer r.writeMutex.Unlock()

	writeHeader := false
	if info, err := os.Stat(r.path); os.IsNotExist(err) || (err == nil && info.Size() == 0) {
		writeHeader = true
	}

	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "erro ao abrir arquivo de leituras %s para escrita", r.path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(csvHeader); err != nil {
			return errors.Wrap(err, "erro ao escrever cabeçalho do CSV")
		}
	}

	record := []string{
		reading.Timestamp,
		strconv.FormatFloat(reading.Temperature, 'f', -1, 64),
		strconv.FormatFloat(reading.Energy, 'f', -1, 64),
		strconv.Itoa(reading.Occupancy),
	}
	if err := w.Write(record); err != nil {
		return errors.Wrap(err, "erro ao escrever leitura no CSV")
	}

	w.Flush()
	return errors.Wrap(w.Error(), "erro ao gravar CSV")
}

// indexColumns localiza as colunas pelo nome do cabeçalho
func indexColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}

	for _, name := range csvHeader {
		if _, ok := columns[name]; !ok {
			return nil, errors.Wrapf(ErrInvalidReading, "coluna %q ausente no cabeçalho", name)
		}
	}

	return columns, nil
}

func parseRecord(record []string, columns map[string]int) (domain.SensorReading, error) {
	field := func(name string) string {
		idx := columns[name]
		if idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	temperature, err := strconv.ParseFloat(field("temperature"), 64)
	if err != nil {
		return domain.SensorReading{}, errors.Wrapf(ErrInvalidReading, "temperature %q", field("temperature"))
	}

	energy, err := strconv.ParseFloat(field("energy"), 64)
	if err != nil {
		return domain.SensorReading{}, errors.Wrapf(ErrInvalidReading, "energy %q", field("energy"))
	}

	occupancy, err := strconv.Atoi(field("occupancy"))
	if err != nil {
		return domain.SensorReading{}, errors.Wrapf(ErrInvalidReading, "occupancy %q", field("occupancy"))
	}

	return domain.SensorReading{
		Timestamp:   field("timestamp"),
		Temperature: temperature,
		Energy:      energy,
		Occupancy:   occupancy,
	}, nil
}
