package infra

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration parsed from environment variables.
type Config struct {
	// Server
	APIPort int `env:"API_PORT" envDefault:"3333"`

	// Storage: "memory" keeps all state in-process (resets on restart),
	// "postgres" persists through pgx.
	StoreBackend string `env:"STORE_BACKEND" envDefault:"memory"`

	// Database (postgres backend only)
	DatabaseURL string `env:"DATABASE_URL"`
	PGHost      string `env:"PGHOST" envDefault:"localhost"`
	PGPort      int    `env:"PGPORT" envDefault:"5432"`
	PGUser      string `env:"PGUSER" envDefault:"apostaguard"`
	PGPassword  string `env:"PGPASSWORD" envDefault:"apostaguard"`
	PGDatabase  string `env:"PGDATABASE" envDefault:"apostaguard"`

	// JWT
	JWTSecret string `env:"JWT_SECRET" envDefault:"change-me-in-production"`
	JWTExpiry string `env:"JWT_EXPIRY" envDefault:"24h"`

	// Kafka
	KafkaBrokers string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	KafkaEnabled bool   `env:"KAFKA_ENABLED" envDefault:"false"`
	KafkaTopic   string `env:"KAFKA_TOPIC" envDefault:"rg.domain-events"`
	KafkaGroupID string `env:"KAFKA_GROUP_ID" envDefault:"rg-event-logger"`

	// Reporting timezone for calendar windows and CSV timestamps.
	// Empty means the process-local zone.
	Timezone string `env:"TIMEZONE"`

	// Seeded demo account (created at startup when set, memory backend).
	DemoEmail    string `env:"DEMO_EMAIL" envDefault:"user01@teste.com"`
	DemoPassword string `env:"DEMO_PASSWORD" envDefault:"Senha@123"`

	// Dev
	AllowInsecureDefaults bool `env:"ALLOW_INSECURE_DEFAULTS" envDefault:"false"`
}

// LoadConfig parses environment variables into a Config struct.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks for insecure or inconsistent configuration.
// Set ALLOW_INSECURE_DEFAULTS=true to bypass the secret checks (local dev only).
func (c *Config) Validate() error {
	if c.StoreBackend != "memory" && c.StoreBackend != "postgres" {
		return fmt.Errorf("STORE_BACKEND must be memory or postgres, got %q", c.StoreBackend)
	}
	if c.AllowInsecureDefaults {
		return nil
	}
	if c.JWTSecret == "change-me-in-production" {
		return fmt.Errorf("JWT_SECRET is set to the insecure default; set a strong secret or set ALLOW_INSECURE_DEFAULTS=true for local dev")
	}
	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET is too short (%d chars); minimum 32 characters required", len(c.JWTSecret))
	}
	return nil
}

// DSN returns the PostgreSQL connection string, preferring DATABASE_URL if set.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDatabase)
}

// Location resolves the reporting timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
