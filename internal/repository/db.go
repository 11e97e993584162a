package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

const presetsSchema = `
	CREATE TABLE IF NOT EXISTS presets (
		name       VARCHAR(64) NOT NULL PRIMARY KEY,
		length     INT         NOT NULL,
		numbers    BOOLEAN     NOT NULL,
		symbols    BOOLEAN     NOT NULL,
		created_at TIMESTAMP   NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP   NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

// NewDB opens a MySQL pool and verifies it with a ping. Unlike sql.Open alone,
// an unreachable server is reported so callers can disable preset routes.
func NewDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate creates the presets table if it does not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, presetsSchema); err != nil {
		return err
	}
	slog.Debug("presets schema ready")
	return nil
}
