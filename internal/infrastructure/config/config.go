package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth  AuthConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type AuthConfig struct {
	// JWTSecret signs session tokens; the process refuses to start without it.
	JWTSecret string `env:"JWT_SECRET, required"`
	// TokenTTLSeconds bounds token lifetime. Default: 7 days.
	TokenTTLSeconds int `env:"TOKEN_TTL_SECONDS, default=604800"`
	// Login limiter policy knobs.
	LoginMaxAttempts   int `env:"LOGIN_MAX_ATTEMPTS,   default=5"`
	LoginWindowSeconds int `env:"LOGIN_WINDOW_SECONDS, default=900"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=personal_diary"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// TokenTTL returns the configured token lifetime as a duration.
func (c AuthConfig) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLSeconds) * time.Second
}

// LoginWindow returns the limiter window as a duration.
func (c AuthConfig) LoginWindow() time.Duration {
	return time.Duration(c.LoginWindowSeconds) * time.Second
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
