package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v10"
)

const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config holds configuration for the storefront binaries.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort       int     `env:"STOREFRONT_HTTP_PORT" envDefault:"8080"`
	MetricsEnabled bool    `env:"METRICS_ENABLED" envDefault:"true"`
	MetricsToken   string  `env:"METRICS_TOKEN"`
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"20"`

	// Catalog source: memory (embedded seed or CATALOG_FILE) or postgres.
	CatalogBackend string `env:"CATALOG_BACKEND" envDefault:"memory"`
	CatalogFile    string `env:"CATALOG_FILE"`

	// Durable slots
	SlotBackend  string `env:"SLOT_BACKEND" envDefault:"sqlite"`
	SQLitePath   string `env:"SQLITE_PATH" envDefault:"shopsphere.db"`
	CartSlot     string `env:"CART_SLOT" envDefault:"shopSphere_cart"`
	WishlistSlot string `env:"WISHLIST_SLOT" envDefault:"shopSphere_wishlist"`

	// Redis
	RedisAddr      string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass      string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB        int    `env:"REDIS_DB" envDefault:"0"`
	RedisKeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"storefront:"`
	SlotTTLHours   int    `env:"SLOT_TTL_HOURS" envDefault:"0"`

	// Postgres, shared by the postgres catalog and slot backends
	PostgresDSN string `env:"POSTGRES_DSN"`

	// Kafka notification publishing is off when no brokers are set.
	KafkaBrokers       []string `env:"KAFKA_BROKERS" envSeparator:","`
	NotificationsTopic string   `env:"NOTIFICATIONS_TOPIC" envDefault:"shopsphere.notifications"`
	FeedSize           int      `env:"NOTIFICATION_FEED_SIZE" envDefault:"50"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}

	switch c.SlotBackend {
	case BackendMemory, BackendSQLite, BackendRedis, BackendPostgres:
	default:
		return fmt.Errorf("invalid SLOT_BACKEND %q", c.SlotBackend)
	}
	switch c.CatalogBackend {
	case BackendMemory, BackendPostgres:
	default:
		return fmt.Errorf("invalid CATALOG_BACKEND %q", c.CatalogBackend)
	}

	if c.CartSlot == "" || c.WishlistSlot == "" {
		return errors.New("CART_SLOT and WISHLIST_SLOT must be set")
	}
	if c.CartSlot == c.WishlistSlot {
		return fmt.Errorf("CART_SLOT and WISHLIST_SLOT must differ, both are %q", c.CartSlot)
	}

	if (c.SlotBackend == BackendPostgres || c.CatalogBackend == BackendPostgres) && c.PostgresDSN == "" {
		return errors.New("POSTGRES_DSN is required for the postgres backend")
	}
	if c.SlotBackend == BackendSQLite && c.SQLitePath == "" {
		return errors.New("SQLITE_PATH is required for the sqlite backend")
	}
	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be positive, got %v", c.RateLimitRPS)
	}
	if c.SlotTTLHours < 0 {
		return fmt.Errorf("SLOT_TTL_HOURS must not be negative, got %d", c.SlotTTLHours)
	}
	return nil
}
