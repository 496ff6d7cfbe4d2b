package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gamestation-backend/internal/domain"
	"gamestation-backend/internal/utils"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	JWT       JWTConfig       `yaml:"jwt"`
	Log       LogConfig       `yaml:"log"`
	Billing   BillingConfig   `yaml:"billing"`
	Packages  PackagesConfig  `yaml:"packages"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// JWTConfig contains staff token settings
type JWTConfig struct {
	Secret            string `yaml:"secret"`
	AccessTokenExpiry int    `yaml:"access_token_expiry_minutes"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// BillingConfig contains the billing quantum and default pricing rules.
// Rates are whole currency units per hour.
type BillingConfig struct {
	QuantumMinutes int                      `yaml:"quantum_minutes"`
	DefaultRates   map[string]RateRuleEntry `yaml:"default_rates"`
}

// RateRuleEntry is one day/night rate pair keyed by console type.
type RateRuleEntry struct {
	Day   int32 `yaml:"day"`
	Night int32 `yaml:"night"`
}

// RateTable converts the configured default rates into the billing table.
func (b BillingConfig) RateTable() utils.RateTable {
	table := make(utils.RateTable, len(b.DefaultRates))
	for key, entry := range b.DefaultRates {
		t := domain.ConsoleType(key)
		table[t] = domain.PricingRule{ConsoleType: t, DayRate: entry.Day, NightRate: entry.Night}
	}
	return table
}

// PackagesConfig holds the canonical definitions for each package kind.
type PackagesConfig struct {
	Basic   domain.PackageDefinition `yaml:"basic"`
	Premium domain.PackageDefinition `yaml:"premium"`
}

// Definition returns the canonical grant for a package kind.
func (p PackagesConfig) Definition(kind domain.PackageKind) (domain.PackageDefinition, error) {
	switch kind {
	case domain.PackageKindBasic:
		return p.Basic, nil
	case domain.PackageKindPremium:
		return p.Premium, nil
	default:
		return domain.PackageDefinition{}, fmt.Errorf("unknown package kind %q", kind)
	}
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	RecomputeOpenSessions string `yaml:"recompute_open_sessions"`
	LogDailySummary       string `yaml:"log_daily_summary"`
	SweepExpiredPackages  string `yaml:"sweep_expired_packages"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.JWT.Secret = val
	}

	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	if val := os.Getenv("BILLING_QUANTUM_MINUTES"); val != "" {
		fmt.Sscanf(val, "%d", &c.Billing.QuantumMinutes)
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid and fills defaults
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}
	if c.JWT.AccessTokenExpiry <= 0 {
		c.JWT.AccessTokenExpiry = 720 // 12-hour shifts
	}

	// Billing defaults
	if c.Billing.QuantumMinutes <= 0 {
		c.Billing.QuantumMinutes = 6
	}
	if 60%c.Billing.QuantumMinutes != 0 {
		return fmt.Errorf("billing quantum must divide evenly into an hour, got %d minutes", c.Billing.QuantumMinutes)
	}
	if c.Billing.DefaultRates == nil {
		c.Billing.DefaultRates = map[string]RateRuleEntry{
			string(domain.ConsoleTypePS3): {Day: 5000, Night: 4000},
			string(domain.ConsoleTypePS4): {Day: 7000, Night: 6000},
			string(domain.ConsoleTypePS5): {Day: 10000, Night: 8000},
		}
	}

	// Package definition defaults
	if c.Packages.Basic.Minutes == 0 {
		c.Packages.Basic = domain.PackageDefinition{
			Minutes: 600, Drinks: 3, ValidityDays: 30, PricePS3: 30000, PricePS4: 50000,
		}
	}
	if c.Packages.Premium.Minutes == 0 {
		c.Packages.Premium = domain.PackageDefinition{
			Minutes: 840, Drinks: 7, ValidityDays: 7, PricePS3: 39000, PricePS4: 65000,
		}
	}

	// Scheduler defaults
	if c.Scheduler.RecomputeOpenSessions == "" {
		c.Scheduler.RecomputeOpenSessions = "*/30 * * * * *" // every 30 seconds
	}
	if c.Scheduler.LogDailySummary == "" {
		c.Scheduler.LogDailySummary = "0 0 23 * * *" // 11 PM daily
	}
	if c.Scheduler.SweepExpiredPackages == "" {
		c.Scheduler.SweepExpiredPackages = "0 30 2 * * *" // 2:30 AM daily
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
