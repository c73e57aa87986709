package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const minSecretLength = 16

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`
	SeedData bool   `env:"SEED_DATA, default=true"`

	Auth          AuthConfig
	Mongo         MongoConfig
	Redis         RedisConfig
	Cache         CacheConfig
	Notifications NotificationConfig
}

type AuthConfig struct {
	JWTSecret      string        `env:"JWT_SECRET, required"`
	JWTIssuer      string        `env:"JWT_ISSUER,      default=restaurant-api"`
	JWTAudience    string        `env:"JWT_AUDIENCE,    default=restaurant-api-clients"`
	TokenTTL       time.Duration `env:"JWT_TTL,         default=1h"`
	PasswordScheme string        `env:"PASSWORD_SCHEME, default=sha256"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=food_delivery"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type CacheConfig struct {
	RestaurantTTL time.Duration `env:"RESTAURANT_CACHE_TTL, default=10m"`
}

type NotificationConfig struct {
	Workers int `env:"NOTIFY_WORKERS, default=4"`
}

// Load reads configuration from the environment using go-envconfig. A nil
// lookuper reads the process environment.
func Load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	if lookuper == nil {
		lookuper = envconfig.OsLookuper()
	}

	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Validate rejects settings that would only fail later at request time.
func (c *Config) Validate() error {
	var errs []error
	if len(c.Auth.JWTSecret) < minSecretLength {
		errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d bytes", minSecretLength))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL must be positive"))
	}
	switch c.Auth.PasswordScheme {
	case "sha256", "bcrypt":
	default:
		errs = append(errs, fmt.Errorf("PASSWORD_SCHEME %q is not supported", c.Auth.PasswordScheme))
	}
	if c.Cache.RestaurantTTL <= 0 {
		errs = append(errs, errors.New("RESTAURANT_CACHE_TTL must be positive"))
	}
	return errors.Join(errs...)
}

// IsDevelopment reports whether human-friendly output should be used.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// HTTPAddress returns the listen address for the HTTP server.
func (c *Config) HTTPAddress() string {
	return ":" + c.Port
}
