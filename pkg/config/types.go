package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment string           `mapstructure:"environment"`
	Server      ServerConfig     `mapstructure:"server"`
	Database    DatabaseConfig   `mapstructure:"database"`
	Ingest      IngestConfig     `mapstructure:"ingest"`
	Media       MediaConfig      `mapstructure:"media"`
	Logging     LoggingConfig    `mapstructure:"logging"`
	Monitoring  MonitoringConfig `mapstructure:"monitoring"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Driver                string        `mapstructure:"driver"` // sqlite or postgres
	Path                  string        `mapstructure:"path"`   // sqlite file path
	DSN                   string        `mapstructure:"dsn"`    // postgres connection string
	MaxConnections        int           `mapstructure:"max_connections"`
	MaxIdleConnections    int           `mapstructure:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `mapstructure:"connection_max_lifetime"`
	LogQueries            bool          `mapstructure:"log_queries"`
}

// IngestConfig contains feed sync settings
type IngestConfig struct {
	ItemLimit    int           `mapstructure:"item_limit"`
	BatchSize    int           `mapstructure:"batch_size"`
	Concurrency  int           `mapstructure:"concurrency"`
	Schedule     string        `mapstructure:"schedule"`
	RunOnStart   bool          `mapstructure:"run_on_start"`
	FeedTimeout  time.Duration `mapstructure:"feed_timeout"`
	HostInterval time.Duration `mapstructure:"host_interval"` // 0 disables per-host spacing
	UserAgent    string        `mapstructure:"user_agent"`
}

// MediaConfig contains media URL probe settings
type MediaConfig struct {
	ProbeEnabled bool          `mapstructure:"probe_enabled"`
	ProbeTimeout time.Duration `mapstructure:"probe_timeout"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// MonitoringConfig contains monitoring settings
type MonitoringConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	MetricsPath string `mapstructure:"metrics_path"`
	HealthPath  string `mapstructure:"health_path"`
}
