package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/virtuacademy/touchpoint/config"
	"github.com/virtuacademy/touchpoint/internal/database/schema"
)

// ConnectionPoolSettings returns the pool limits applied to the shared pool.
func ConnectionPoolSettings() (maxOpen, maxIdle int, maxLifetime time.Duration) {
	return 20, 5, 5 * time.Minute
}

// DSN builds the Postgres connection string from config.
func DSN(cfg *config.DatabaseConfig) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)
}

// Connect opens the pool and verifies connectivity.
func Connect(cfg *config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	maxOpen, maxIdle, maxLifetime := ConnectionPoolSettings()
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(maxLifetime)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// InitializeDatabase creates the schema if it does not exist yet.
func InitializeDatabase(db *sql.DB) error {
	for _, stmt := range schema.TableDefinitions {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return nil
}
