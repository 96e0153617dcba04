package config_test

import (
	"os"
	"testing"
	"time"

	"trivia-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "SERVER_PORT", "SHUTDOWN_TIMEOUT", "DB_AUTO_MIGRATE", "LOG_LEVEL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, config.DriverPostgres, cfg.Database.Driver)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_SQLITE_PATH", "/tmp/trivia-test.db")
	t.Setenv("DB_SEED_CATEGORIES", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, config.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/trivia-test.db", cfg.Database.DSN())
	assert.False(t, cfg.Database.SeedCategories)
}

func TestLoad_UnsupportedDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mongodb")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDatabase_DSN(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		driver   string
		expected string
	}{
		{
			driver:   config.DriverPostgres,
			expected: "host=db port=5433 user=trivia password=secret dbname=trivia_test sslmode=disable",
		},
		{
			driver:   config.DriverMySQL,
			expected: "trivia:secret@tcp(db:5433)/trivia_test?charset=utf8mb4&parseTime=True&loc=UTC",
		},
		{
			driver:   config.DriverSQLite,
			expected: "trivia.db",
		},
	}
	for _, tc := range testCases {
		db := config.Database{
			Driver:     tc.driver,
			Host:       "db",
			Port:       "5433",
			User:       "trivia",
			Password:   "secret",
			Name:       "trivia_test",
			SSLMode:    "disable",
			SQLitePath: "trivia.db",
		}
		assert.Equal(t, tc.expected, db.DSN(), tc.driver)
	}
}
