package config

import (
	"fmt"
	"strconv"
	"time"

	"blog-backend/internal/infrastructure/database"
)

type durationEnv struct {
	key string
	def string
	dst *time.Duration
}

// LoadDatabaseConfig builds the pool configuration for the blog database.
// Connection identity comes from the loaded Config so the `_test` suffix
// applied by Load is honoured.
func (c *Config) LoadDatabaseConfig() (*database.DBConfig, error) {
	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}

	minConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "2"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	maxRetries, err := strconv.Atoi(getEnv("DB_MAX_RETRIES", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_RETRIES: %w", err)
	}

	cfg := &database.DBConfig{
		Host:       c.Database.Host,
		Port:       c.Database.Port,
		Username:   c.Database.User,
		Password:   c.Database.Password,
		DBName:     c.Database.Database,
		SSLMode:    c.Database.SSLMode,
		MaxConns:   int32(maxConns),
		MinConns:   int32(minConns),
		MaxRetries: maxRetries,
	}

	durations := []durationEnv{
		{"DB_MAX_CONN_LIFETIME", "5m", &cfg.MaxConnLifetime},
		{"DB_MAX_CONN_IDLE_TIME", "1m", &cfg.MaxConnIdleTime},
		{"DB_HEALTH_CHECK_PERIOD", "1m", &cfg.HealthCheckPeriod},
		{"DB_RETRY_DELAY", "1s", &cfg.RetryDelay},
		{"DB_CONNECT_TIMEOUT", "10s", &cfg.ConnectTimeout},
	}
	for _, d := range durations {
		v, err := time.ParseDuration(getEnv(d.key, d.def))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", d.key, err)
		}
		*d.dst = v
	}

	return cfg, nil
}
