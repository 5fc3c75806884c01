package myredis

import (
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisConfig describes the backing store connection.
type RedisConfig struct {
	// Addr is a redis:// URL carrying host, port and, optionally, the database number.
	Addr string
	// DB overrides the database selected by Addr when set.
	DB *int
}

// Options returns the client options derived from the config.
func (c RedisConfig) Options() []ConfigOption {
	if c.DB == nil {
		return nil
	}
	return []ConfigOption{WithDB(*c.DB)}
}

// NewRedisUniversalClient creates and configures instance of redis universal client.
func NewRedisUniversalClient(redisAddr string, options ...ConfigOption) (redis.UniversalClient, error) {
	redisOptions, err := redis.ParseURL(redisAddr)
	if err != nil {
		return nil, fmt.Errorf("cant parse redis url: %w", err)
	}
	for _, opt := range options {
		opt(redisOptions)
	}
	return redis.NewUniversalClient(universalOptions(redisOptions)), nil
}

// ConfigOption configures the client.
type ConfigOption func(*redis.Options)

// WithDB selects the logical database the registry lives in.
func WithDB(db int) ConfigOption {
	return func(o *redis.Options) {
		o.DB = db
	}
}

func universalOptions(options *redis.Options) *redis.UniversalOptions {
	return &redis.UniversalOptions{
		Addrs:              []string{options.Addr},
		DB:                 options.DB,
		Username:           options.Username,
		Password:           options.Password,
		WriteTimeout:       options.WriteTimeout,
		ReadTimeout:        options.ReadTimeout,
		DialTimeout:        options.DialTimeout,
		MaxRetries:         options.MaxRetries,
		PoolSize:           options.PoolSize,
		PoolTimeout:        options.PoolTimeout,
		MinIdleConns:       options.MinIdleConns,
		IdleTimeout:        options.IdleTimeout,
		IdleCheckFrequency: options.IdleCheckFrequency,
		TLSConfig:          options.TLSConfig,
	}
}
