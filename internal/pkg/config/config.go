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

	UpstreamBaseURL string `env:"UPSTREAM_BASE_URL"`

	Session SessionConfig
	Gate    GateConfig
	Audit   AuditConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

type SessionConfig struct {
	Backend    string        `env:"SESSION_BACKEND, default=redis"`
	TTL        time.Duration `env:"SESSION_TTL,     default=24h"`
	CookieName string        `env:"SESSION_COOKIE,  default=console_session"`
}

type GateConfig struct {
	ExemptPrefixes []string `env:"GATE_EXEMPT_PREFIXES, default=/admin/tokens"`
}

type AuditConfig struct {
	Workers     int           `env:"AUDIT_WORKERS,      default=4"`
	DedupWindow time.Duration `env:"AUDIT_DEDUP_WINDOW, default=1m"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=sms_console"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// IsDevelopment reports whether the service runs with ENV=development.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration from l and validates it.
func LoadWith(l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Session.Backend {
	case "memory", "redis", "mongo":
	default:
		return fmt.Errorf("SESSION_BACKEND must be one of memory, redis, mongo; got %q", c.Session.Backend)
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("SESSION_COOKIE must not be empty")
	}
	if c.Audit.Workers < 0 {
		return fmt.Errorf("AUDIT_WORKERS must not be negative")
	}
	return nil
}
