package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   Server
	Database Database
	Logger   Logger
}

type Server struct {
	Port            string        `env:"SERVER_PORT" env-default:"8080"`
	GinMode         string        `env:"GIN_MODE" env-default:"release"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type Database struct {
	Driver         string `env:"DB_DRIVER" env-default:"postgres"`
	Host           string `env:"DB_HOST" env-default:"localhost"`
	Port           string `env:"DB_PORT" env-default:"5432"`
	User           string `env:"DB_USER" env-default:"postgres"`
	Password       string `env:"DB_PASSWORD" env-default:"postgres"`
	Name           string `env:"DB_NAME" env-default:"trivia"`
	SSLMode        string `env:"DB_SSLMODE" env-default:"disable"`
	SQLitePath     string `env:"DB_SQLITE_PATH" env-default:"trivia.db"`
	AutoMigrate    bool   `env:"DB_AUTO_MIGRATE" env-default:"true"`
	SeedCategories bool   `env:"DB_SEED_CATEGORIES" env-default:"true"`
}

// DSN returns the connection string for the configured driver.
func (d Database) DSN() string {
	switch d.Driver {
	case DriverSQLite:
		return d.SQLitePath
	case DriverMySQL:
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			d.User, d.Password, d.Host, d.Port, d.Name,
		)
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" env-default:"info"`
	File   string `env:"LOG_FILE" env-default:""`
	Pretty bool   `env:"LOG_PRETTY" env-default:"false"`
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
)

// Load reads an optional .env file from the working directory and then
// fills the config from the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	switch cfg.Database.Driver {
	case DriverPostgres, DriverSQLite, DriverMySQL:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}

	return &cfg, nil
}
