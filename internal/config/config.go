package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// minSecretLen is the shortest accepted HS256 signing key.
const minSecretLen = 32

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Frost Guard"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"frostguard"`
		Migrate  bool   `envconfig:"DB_MIGRATE" default:"true"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		Secret   string        `envconfig:"AUTH_SECRET" required:"true"`
		TokenTTL time.Duration `envconfig:"AUTH_TOKEN_TTL" default:"24h"`
		ResetTTL time.Duration `envconfig:"AUTH_RESET_TTL" default:"1h"`
		// RateLimit is requests per minute per client on the public auth routes.
		RateLimit int `envconfig:"AUTH_RATE_LIMIT" default:"10"`
		RateBurst int `envconfig:"AUTH_RATE_BURST" default:"5"`
	}

	Exchange struct {
		APIURL            string        `envconfig:"EXCHANGE_API_URL" default:"https://v6.exchangerate-api.com/v6"`
		APIKey            string        `envconfig:"EXCHANGE_API_KEY"`
		ReportingCurrency string        `envconfig:"REPORTING_CURRENCY" default:"BRL"`
		Timeout           time.Duration `envconfig:"EXCHANGE_TIMEOUT" default:"10s"`
		Retries           int           `envconfig:"EXCHANGE_RETRIES" default:"0"`
		FallbackFile      string        `envconfig:"FALLBACK_RATES_FILE"`
	}

	Cache struct {
		Backend string        `envconfig:"RATE_CACHE_BACKEND" default:"memory"`
		TTL     time.Duration `envconfig:"RATE_CACHE_TTL" default:"1h"`
	}

	Redis struct {
		Host     string `envconfig:"REDIS_HOST" default:"localhost"`
		Port     int    `envconfig:"REDIS_PORT" default:"6379"`
		Password string `envconfig:"REDIS_PASSWORD" default:""`
		DB       int    `envconfig:"REDIS_DB" default:"0"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if len(cfg.Auth.Secret) < minSecretLen {
		return nil, fmt.Errorf("AUTH_SECRET must be at least %d bytes", minSecretLen)
	}

	if cfg.Cache.Backend != "memory" && cfg.Cache.Backend != "redis" {
		return nil, fmt.Errorf("unsupported rate cache backend %q", cfg.Cache.Backend)
	}

	return &cfg, nil
}
