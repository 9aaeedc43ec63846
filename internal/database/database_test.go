package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/virtuacademy/touchpoint/config"
	"github.com/virtuacademy/touchpoint/internal/database/schema"
)

func TestDSN(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "app",
		Password: "secret",
		DBName:   "touchpoint",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.internal port=5433 user=app password=secret dbname=touchpoint sslmode=require",
		DSN(cfg))
}

func TestInitializeDatabase(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	for range schema.TableDefinitions {
		mock.ExpectExec(".*").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, InitializeDatabase(db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitializeDatabaseError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(".*").WillReturnError(assert.AnError)

	assert.Error(t, InitializeDatabase(db))
}
