package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sensor-dashboard-api/infrastructure/database/sqldb"
	"github.com/vfg2006/sensor-dashboard-api/internal/config"
	"github.com/vfg2006/sensor-dashboard-api/internal/domain"
)

func newSQLiteConnection(t *testing.T) *sqldb.Connection {
	t.Helper()
	ctx := context.Background()

	conn, err := sqldb.NewConnection(ctx, config.Database{
		Driver: config.ReadingsDriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "readings.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, EnsureReadingsSchema(ctx, conn))
	// Idempotente
	require.NoError(t, EnsureReadingsSchema(ctx, conn))

	return conn
}

func newSQLiteRepository(t *testing.T) ReadingRepository {
	t.Helper()
	return NewSQLReadingRepository(newSQLiteConnection(t))
}

func TestSQLReadingRepository(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepository(t)

	readings, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, readings)
	assert.Empty(t, readings)

	expected := []domain.SensorReading{
		{Timestamp: "2024-05-01T10:00:00", Temperature: 22.5, Energy: 120.75, Occupancy: 3},
		{Timestamp: "2024-05-01T09:00:00", Temperature: 21, Energy: 90, Occupancy: 0},
		{Timestamp: "2024-05-01T11:00:00", Temperature: 26.99, Energy: 199.5, Occupancy: 10},
	}
	for _, reading := range expected {
		require.NoError(t, repo.AppendOne(ctx, reading))
	}

	// Ordem de inserção, não ordem do timestamp
	readings, err = repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, readings)
}

func TestImportReadings(t *testing.T) {
	ctx := context.Background()
	conn := newSQLiteConnection(t)
	repo := NewSQLReadingRepository(conn)

	readings := make([]domain.SensorReading, 0, importBatchSize+3)
	for i := 0; i < importBatchSize+3; i++ {
		readings = append(readings, domain.SensorReading{
			Timestamp:   fmt.Sprintf("2024-05-01T10:%02d:%02d", (i/60)%60, i%60),
			Temperature: 20 + float64(i%7),
			Energy:      80 + float64(i%120),
			Occupancy:   i % 11,
		})
	}

	imported, err := ImportReadings(ctx, conn, readings)
	require.NoError(t, err)
	assert.Equal(t, len(readings), imported)

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, readings, loaded)

	imported, err = ImportReadings(ctx, conn, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, imported)
}

func TestImportReadings_RollbackOnError(t *testing.T) {
	ctx := context.Background()
	conn := newSQLiteConnection(t)
	_, err := conn.ExecContext(ctx, "DROP TABLE sensor_readings")
	require.NoError(t, err)

	imported, err := ImportReadings(ctx, conn, []domain.SensorReading{{Timestamp: "2024-05-01T10:00:00"}})

	require.Error(t, err)
	assert.Equal(t, 0, imported)
}
