package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"myregistry/adapters/myredis"
	"myregistry/domain"

	"github.com/go-kit/log/level"
)

type MyRegistryConfig struct {
	Redis          myredis.RedisConfig
	HTTPPort       int
	GRPCPort       int
	DefaultTTL     int
	ReaperInterval time.Duration
	EventsChannel  string
	LogLevel       level.Option
}

// LoadConfig loads configuration from environment variables.
// REDIS_ADDR and SERVICE_PORT_HTTP are required. The gRPC health server is off unless SERVICE_PORT_GRPC is set.
func LoadConfig() (*MyRegistryConfig, error) {
	config := &MyRegistryConfig{
		DefaultTTL:     myredis.DefaultTTLSeconds,
		ReaperInterval: time.Second,
		LogLevel:       level.AllowInfo(),
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		return nil, fmt.Errorf("REDIS_ADDR is required")
	}
	config.Redis.Addr = redisAddr

	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil || db < 0 {
			return nil, fmt.Errorf("invalid REDIS_DB %q: must be a non-negative integer", v)
		}
		config.Redis.DB = &db
	}

	httpPortStr := os.Getenv("SERVICE_PORT_HTTP")
	if httpPortStr == "" {
		return nil, fmt.Errorf("SERVICE_PORT_HTTP is required")
	}
	httpPort, err := strconv.Atoi(httpPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVICE_PORT_HTTP: %w", err)
	}
	config.HTTPPort = httpPort

	if v := os.Getenv("SERVICE_PORT_GRPC"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SERVICE_PORT_GRPC: %w", err)
		}
		config.GRPCPort = port
	}

	if v := os.Getenv("DEFAULT_TTL_SECONDS"); v != "" {
		ttl, err := strconv.Atoi(v)
		if err != nil || domain.ValidateTTL(ttl) != nil {
			return nil, fmt.Errorf("invalid DEFAULT_TTL_SECONDS %q: must be an integer in [1, %d]", v, domain.MaxTTLSeconds)
		}
		config.DefaultTTL = ttl
	}

	if v := os.Getenv("REAPER_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REAPER_INTERVAL: %w", err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("invalid REAPER_INTERVAL %q: must be positive", v)
		}
		config.ReaperInterval = d
	}

	config.EventsChannel = os.Getenv("EVENTS_CHANNEL")

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		opt, err := parseLogLevel(v)
		if err != nil {
			return nil, err
		}
		config.LogLevel = opt
	}

	return config, nil
}

func parseLogLevel(v string) (level.Option, error) {
	switch v {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	default:
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: must be one of debug, info, warn, error", v)
	}
}
