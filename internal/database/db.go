// Package database opens the Postgres pool and the gorm handle built on it.
package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MikeMC777/ordenes-api/internal/config"
)

type DB struct {
	Gorm *gorm.DB
	pool *pgxpool.Pool
	sql  *sql.DB
}

func Open(ctx context.Context, cfg config.Config, log logrus.FieldLogger) (*DB, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	if cfg.DBMaxConns > 0 {
		pcfg.MaxConns = int32(cfg.DBMaxConns)
	}
	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	g, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		_ = sqlDB.Close()
		pool.Close()
		return nil, fmt.Errorf("open gorm: %w", err)
	}
	log.WithField("max_conns", pcfg.MaxConns).Info("postgres connected")
	return &DB{Gorm: g, pool: pool, sql: sqlDB}, nil
}

// EnsureSchema creates the tables for models. With recreate set the tables
// are dropped first, which wipes every row.
func EnsureSchema(db *gorm.DB, recreate bool, models ...any) error {
	if recreate {
		// reverse order so dependent tables go first
		for i := len(models) - 1; i >= 0; i-- {
			if err := db.Migrator().DropTable(models[i]); err != nil {
				return fmt.Errorf("drop table: %w", err)
			}
		}
	}
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func (d *DB) Close() {
	_ = d.sql.Close()
	d.pool.Close()
}
