package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// SimLatency is the artificial delay applied to state-changing wallet
	// operations (login, signup, recharge, subscription, boost).
	SimLatency time.Duration `env:"SIM_LATENCY, default=800ms"`
	// AllowNegativeBalance keeps the permissive debit policy of the original
	// product; set to false to reject debits that would go below zero.
	AllowNegativeBalance bool `env:"ALLOW_NEGATIVE_BALANCE, default=true"`
	// DefaultLocale is used when no preference is resolvable (fr, ar, en).
	DefaultLocale string `env:"DEFAULT_LOCALE, default=fr"`
	// PublishWorkers sizes the alert-match worker pool.
	PublishWorkers int `env:"PUBLISH_WORKERS, default=4"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Generator GeneratorConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=dari_marketplace"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type GeneratorConfig struct {
	URL    string  `env:"GENERATOR_URL"`
	APIKey string  `env:"GENERATOR_API_KEY"`
	// RPS caps outbound generation calls per second.
	RPS float64 `env:"GENERATOR_RPS, default=1"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
