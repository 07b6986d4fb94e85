package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config is the process-wide configuration, loaded once at startup and passed
// explicitly to whoever needs it.
type Config struct {
	Port        string `env:"PORT,         default=8080"`
	Env         string `env:"ENV,          default=development"`
	LogLevel    string `env:"LOG_LEVEL,    default=info"`
	TokenSecret string `env:"TOKEN_SECRET"`

	// StoreBackend selects the key-value store implementation:
	// "mongo" (durable, the default), "redis", or "memory" (development only).
	StoreBackend string `env:"STORE_BACKEND, default=mongo"`

	// AlertThreshold is the overallScore below which a recorded scan raises a
	// system alert.
	AlertThreshold    float64 `env:"ALERT_THRESHOLD,     default=60"`
	AlertWorkers      int     `env:"ALERT_WORKERS,       default=4"`
	SignInMaxAttempts int64   `env:"SIGNIN_MAX_ATTEMPTS, default=5"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=pranag"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
