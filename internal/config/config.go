package config

import "time"

// Supported persistence backends.
const (
	BackendPostgres = "postgres"
	BackendMongo    = "mongodb"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"             validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level"        validate:"required,oneof=debug info warn error"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"required"`
}

// DatabaseConfig contains all persistence-related configuration settings.
// Backend selects which repository implementations the factory hands out;
// URL is the connection target for the selected backend.
type DatabaseConfig struct {
	Backend      string        `mapstructure:"backend"       validate:"required,oneof=postgres mongodb"`
	URL          string        `mapstructure:"url"           validate:"required"`
	Name         string        `mapstructure:"name"          validate:"required_if=Backend mongodb"`
	QueryTimeout time.Duration `mapstructure:"query_timeout" validate:"required"`
}
