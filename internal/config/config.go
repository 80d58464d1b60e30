package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the application's configuration values.
// Tags like `envconfig:"APP_PORT"` specify the environment variable name;
// `default:""` supplies a fallback and `required:"true"` makes a variable
// mandatory.
type Config struct {
	AppEnv     string `envconfig:"APP_ENV" default:"development"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	HttpServer ServerConfig
	GrpcServer GrpcServerConfig
	Storage    StorageConfig
}

// ServerConfig holds HTTP server-specific configurations.
type ServerConfig struct {
	Port         string        `envconfig:"HTTP_SERVER_PORT" default:"8080"`
	TimeoutRead  time.Duration `envconfig:"HTTP_SERVER_TIMEOUT_READ" default:"15s"`
	TimeoutWrite time.Duration `envconfig:"HTTP_SERVER_TIMEOUT_WRITE" default:"15s"`
	TimeoutIdle  time.Duration `envconfig:"HTTP_SERVER_TIMEOUT_IDLE" default:"60s"`
}

// GrpcServerConfig holds gRPC server-specific configurations. The gRPC
// port serves only the health/reflection services used by the platform.
type GrpcServerConfig struct {
	Port string `envconfig:"GRPC_SERVER_PORT" default:"9090"`
}

// StorageConfig selects and configures the session persistence backend.
// "memory" runs without a database (dev/demo); "postgres" persists
// session blobs across restarts.
type StorageConfig struct {
	Backend  string `envconfig:"STORAGE_BACKEND" default:"memory"`
	Postgres PostgresConfig
}

// PostgresConfig holds PostgreSQL connection details. Required only when
// STORAGE_BACKEND=postgres.
type PostgresConfig struct {
	Host     string `envconfig:"POSTGRES_HOST" default:"localhost"`
	Port     string `envconfig:"POSTGRES_PORT" default:"5432"`
	User     string `envconfig:"POSTGRES_USER" default:""`
	Password string `envconfig:"POSTGRES_PASSWORD" default:""`
	DBName   string `envconfig:"POSTGRES_DBNAME" default:""`
}

// DSN constructs the Data Source Name string for connecting to PostgreSQL.
func (pc *PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		pc.Host, pc.Port, pc.User, pc.Password, pc.DBName)
}

// Load initializes the configuration from environment variables. It
// should be called once during application startup.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration: %w", err)
	}
	switch cfg.Storage.Backend {
	case "memory", "postgres":
	default:
		return nil, fmt.Errorf("invalid STORAGE_BACKEND %q: must be memory or postgres", cfg.Storage.Backend)
	}
	if cfg.Storage.Backend == "postgres" && (cfg.Storage.Postgres.User == "" || cfg.Storage.Postgres.DBName == "") {
		return nil, fmt.Errorf("STORAGE_BACKEND=postgres requires POSTGRES_USER and POSTGRES_DBNAME")
	}
	return &cfg, nil
}
