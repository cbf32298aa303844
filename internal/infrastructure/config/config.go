package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config is the process-wide configuration, constructed once at startup and
// passed explicitly into constructors. Request-handling code never reads the
// environment.
type Config struct {
	Port     string `env:"PORT,      default=4000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs every issued credential. Startup fails without it.
	JWTSecret string `env:"JWT_SECRET, required"`

	// AssetCloud is the external asset host's cloud name; artwork and avatar
	// links must resolve to it.
	AssetCloud string `env:"ASSET_CLOUD, default=artisio"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, required"`
	Database string `env:"MONGO_DB,  default=marketplace"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Production reports whether the process runs with production settings.
func (c *Config) Production() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables. Missing required
// values (the signing secret, the database URI) are an error: the caller is
// expected to fail fast before accepting traffic.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
