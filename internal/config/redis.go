package config

// This file defines the Redis client constructor.  Redis backs the shared
// session store, the submit rate limiter and the catalog response cache.
// If connection fails during startup, the function returns nil and callers
// degrade gracefully: sessions stay in memory, rate limiting and caching
// are disabled.

import (
	"context"
	"crypto/tls"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/redis/go-redis/v9"
)

// RedisConfig holds connection settings.  Host and Port take precedence
// over Addr when both are set.
type RedisConfig struct {
	Host     string `env:"REDIS_HOST"`
	Port     string `env:"REDIS_PORT"`
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	TLS      string `env:"REDIS_TLS"`
}

// Address resolves the host:port to dial.
func (c RedisConfig) Address() string {
	if c.Host != "" && c.Port != "" {
		return c.Host + ":" + c.Port
	}
	return c.Addr
}

// NewRedisClient instantiates a Redis client using REDIS_* variables.  The
// returned client is nil if the variables are malformed or the server does
// not answer a ping within two seconds.
func NewRedisClient() *redis.Client {
	var c RedisConfig
	if err := env.Parse(&c); err != nil {
		return nil
	}
	var tlsConf *tls.Config
	if strings.EqualFold(c.TLS, "true") || c.TLS == "1" {
		tlsConf = &tls.Config{InsecureSkipVerify: true}
	}
	client := redis.NewClient(&redis.Options{
		Addr:      c.Address(),
		Password:  c.Password,
		DB:        c.DB,
		TLSConfig: tlsConf,
	})
	// Ping the server with a short timeout.  Return nil on failure.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil
	}
	return client
}
