// Package sqldb abre conexões database/sql para os backends SQL de leituras (Postgres e SQLite)
package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/sensor-dashboard-api/internal/config"
	_ "modernc.org/sqlite"
)

type Connection struct {
	*sql.DB
	driver string
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	var driverName string
	switch cfg.Driver {
	case config.ReadingsDriverPostgres:
		driverName = "postgres"
	case config.ReadingsDriverSQLite:
		driverName = "sqlite"
	default:
		return nil, fmt.Errorf("sqldb: driver não suportado: %q", cfg.Driver)
	}

	db, err := sql.Open(driverName, cfg.DSN)
	if err != nil {
		return nil, err
	}

	// SQLite serializa escritas; uma conexão evita "database is locked"
	if cfg.Driver == config.ReadingsDriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return &Connection{DB: db, driver: cfg.Driver}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// Driver retorna o nome do backend configurado (postgres ou sqlite)
func (c *Connection) Driver() string {
	return c.driver
}

// Placeholder retorna o formato de parâmetros do driver para o squirrel
func (c *Connection) Placeholder() squirrel.PlaceholderFormat {
	if c.driver == config.ReadingsDriverPostgres {
		return squirrel.Dollar
	}
	return squirrel.Question
}

// RunInTransaction run a query in the transaction
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return rbErr
		}
		return err
	}

	return tx.Commit()
}
