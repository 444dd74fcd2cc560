package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/sensor-dashboard-api/infrastructure/database/sqldb"
	"github.com/vfg2006/sensor-dashboard-api/internal/config"
	"github.com/vfg2006/sensor-dashboard-api/internal/domain"
)

const (
	readingsTable   = "sensor_readings"
	importBatchSize = 500
)

type sqlReadingRepository struct {
	conn *sqldb.Connection
}

// NewSQLReadingRepository cria um repositório de leituras sobre Postgres ou SQLite
func NewSQLReadingRepository(conn *sqldb.Connection) ReadingRepository {
	return &sqlReadingRepository{
		conn: conn,
	}
}

// EnsureReadingsSchema cria a tabela de leituras caso ainda não exista
func EnsureReadingsSchema(ctx context.Context, conn *sqldb.Connection) error {
	idColumn := "id INTEGER PRIMARY KEY AUTOINCREMENT"
	if conn.Driver() == config.ReadingsDriverPostgres {
		idColumn = "id BIGSERIAL PRIMARY KEY"
	}

	ddl := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			%s,
			recorded_at TEXT NOT NULL,
			temperature DOUBLE PRECISION NOT NULL,
			energy DOUBLE PRECISION NOT NULL,
			occupancy INTEGER NOT NULL
		)`, readingsTable, idColumn)

	if _, err := conn.ExecContext(ctx, ddl); err != nil {
		return errors.Wrap(err, "erro ao criar tabela de leituras")
	}

	return nil
}

func (r *sqlReadingRepository) LoadAll(ctx context.Context) ([]domain.SensorReading, error) {
	query, args, err := squirrel.
		Select("recorded_at", "temperature", "energy", "occupancy").
		From(readingsTable).
		OrderBy("id ASC").
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	readings := make([]domain.SensorReading, 0)
	for rows.Next() {
		var reading domain.SensorReading
		if err := rows.Scan(&reading.Timestamp, &reading.Temperature, &reading.Energy, &reading.Occupancy); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear leitura")
		}
		readings = append(readings, reading)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return readings, nil
}

func (r *sqlReadingRepository) AppendOne(ctx context.Context, reading domain.SensorReading) error {
	query, args, err := squirrel.
		Insert(readingsTable).
		Columns("recorded_at", "temperature", "energy", "occupancy").
		Values(reading.Timestamp, reading.Temperature, reading.Energy, reading.Occupancy).
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir query de inserção")
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "erro ao executar query de inserção")
	}

	return nil
}

// ImportReadings insere as leituras em lotes dentro de uma única transação.
// Em caso de erro nada é gravado.
func ImportReadings(ctx context.Context, conn *sqldb.Connection, readings []domain.SensorReading) (int, error) {
	imported := 0

	err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for start := 0; start < len(readings); start += importBatchSize {
			end := min(start+importBatchSize, len(readings))

			builder := squirrel.
				Insert(readingsTable).
				Columns("recorded_at", "temperature", "energy", "occupancy").
				PlaceholderFormat(conn.Placeholder())
			for _, reading := range readings[start:end] {
				builder = builder.Values(reading.Timestamp, reading.Temperature, reading.Energy, reading.Occupancy)
			}

			query, args, err := builder.ToSql()
			if err != nil {
				return errors.Wrap(err, "erro ao construir query de importação")
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return errors.Wrapf(err, "erro ao importar lote iniciado na leitura %d", start+1)
			}
			imported = end
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return imported, nil
}
