package config

import (
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	App        AppConfig
	Cache      CacheConfig
	Clicks     ClicksConfig
	Metrics    MetricsConfig
	Validation ValidationConfig
	Log        LogConfig
	Debug      DebugConfig
}

type ServerConfig struct {
	Host            string        `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	MaxConnections  int           `env:"SERVER_MAX_CONNECTIONS" envDefault:"0"`
	BodyLimit       string        `env:"SERVER_BODY_LIMIT" envDefault:"64K"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type DatabaseConfig struct {
	URL             string        `env:"DATABASE_URL,required,notEmpty"`
	MaxConns        int32         `env:"DATABASE_MAX_CONNS" envDefault:"10"`
	MinConns        int32         `env:"DATABASE_MIN_CONNS" envDefault:"0"`
	MaxConnLifetime time.Duration `env:"DATABASE_MAX_CONN_LIFETIME" envDefault:"1h"`
}

type AppConfig struct {
	BaseURL    string `env:"BASE_URL,required,notEmpty"`
	CodeLength int    `env:"CODE_LENGTH" envDefault:"8"`
}

type CacheConfig struct {
	Enabled     bool          `env:"CACHE_ENABLED" envDefault:"true"`
	MaxSizePow2 int           `env:"CACHE_MAX_SIZE_POW2" envDefault:"24"`
	// TTL bounds how long a link deactivated outside the service keeps resolving.
	TTL         time.Duration `env:"CACHE_TTL" envDefault:"5s"`
}

type ClicksConfig struct {
	BufferSize     int           `env:"CLICKS_BUFFER_SIZE" envDefault:"10000"`
	Workers        int           `env:"CLICKS_WORKERS" envDefault:"2"`
	FlushThreshold int           `env:"CLICKS_FLUSH_THRESHOLD" envDefault:"500"`
	FlushInterval  time.Duration `env:"CLICKS_FLUSH_INTERVAL" envDefault:"1s"`
}

type MetricsConfig struct {
	Enabled        bool          `env:"METRICS_ENABLED" envDefault:"false"`
	BufferSize     int           `env:"METRICS_BUFFER_SIZE" envDefault:"10000"`
	FlushThreshold int           `env:"METRICS_FLUSH_THRESHOLD" envDefault:"1000"`
	FlushInterval  time.Duration `env:"METRICS_FLUSH_INTERVAL" envDefault:"1s"`
	InfraInterval  time.Duration `env:"METRICS_INFRA_INTERVAL" envDefault:"10s"`
}

type ValidationConfig struct {
	MaxURLLength    int  `env:"VALIDATION_MAX_URL_LENGTH" envDefault:"0"`
	AllowPrivateIPs bool `env:"VALIDATION_ALLOW_PRIVATE_IPS" envDefault:"true"`
}

type LogConfig struct {
	Level slog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

type DebugConfig struct {
	PprofEnabled bool `env:"DEBUG_PPROF_ENABLED" envDefault:"false"`
}

// Load reads a .env file from the working directory when present, then parses
// the environment. Variables already set take precedence over the file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
