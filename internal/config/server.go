package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Server holds the configuration for the HTTP API, parsed from the
// environment. DatabaseURL and RedisURL are required; everything else has
// a sensible default.
type Server struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	DatabaseURL     string        `env:"DATABASE_URL,required"`
	RedisURL        string        `env:"REDIS_URL,required"`
	MigrationsDir   string        `env:"MIGRATIONS_DIR" envDefault:"migrations"`
	CacheTTL        time.Duration `env:"CACHE_TTL" envDefault:"1h"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// LoadServer parses the server configuration from the environment.
func LoadServer() (*Server, error) {
	var s Server
	if err := env.Parse(&s); err != nil {
		return nil, fmt.Errorf("parsing server config: %w", err)
	}
	return &s, nil
}
