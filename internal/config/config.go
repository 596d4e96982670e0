package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	DBDriver    string `env:"DB_DRIVER" envDefault:"sqlite"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"todo.db"`

	JWTSecret  string        `env:"JWT_SECRET,required,notEmpty"`
	JWTIssuer  string        `env:"JWT_ISSUER" envDefault:"todo-service"`
	JWTTTL     time.Duration `env:"JWT_TTL" envDefault:"24h"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	RateLimitRPS       float64  `env:"RATE_LIMIT_RPS" envDefault:"20"`
	RateLimitBurst     int      `env:"RATE_LIMIT_BURST" envDefault:"40"`
	TrustedProxies     []string `env:"TRUSTED_PROXIES" envSeparator:","`

	NatsURL string `env:"NATS_URL"`
}

// Load reads an optional .env file and then parses the environment. Variables
// already set in the process win over the file.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if _, err := cfg.TrustedProxyRanges(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// RateLimitEnabled reports whether the auth endpoints are throttled.
func (c *Config) RateLimitEnabled() bool {
	return c.RateLimitRPS > 0
}

// TrustedProxyRanges parses TRUSTED_PROXIES as CIDR blocks.
func (c *Config) TrustedProxyRanges() ([]*net.IPNet, error) {
	ranges := make([]*net.IPNet, 0, len(c.TrustedProxies))
	for _, cidr := range c.TrustedProxies {
		_, ipRange, err := net.ParseCIDR(strings.TrimSpace(cidr))
		if err != nil {
			return nil, fmt.Errorf("parse TRUSTED_PROXIES %q: %w", cidr, err)
		}
		ranges = append(ranges, ipRange)
	}
	return ranges, nil
}
