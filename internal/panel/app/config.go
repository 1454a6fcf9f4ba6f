package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"
	_ "time/tzdata" // distroless images ship no zoneinfo

	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

type Config struct {
	Store        string `yaml:"store"`         // memory or sqlite (default: memory)
	DatabaseFile string `yaml:"database_file"` // SQLite file (default: ./pandda.db)
	Issuer       string `yaml:"issuer"`        // iss claim of session tokens (default: pandda)
	Seed         bool   `yaml:"seed"`          // load the demo data set into an empty store (default: true)
	PepperFile   string `yaml:"pepper_file"`   // password hashing pepper (default: ./pepper)
	Timezone     string `yaml:"timezone"`      // IANA zone of the operator calendar (default: Local)

	Env                  string        `yaml:"env"`                   // dev, staging, prod (default: dev)
	LogLevel             string        `yaml:"log_level"`             // debug, info, warn, error (default: info)
	LogFormat            string        `yaml:"log_format"`            // json, text (default: json)
	Port                 int           `yaml:"port"`                  // HTTP port (default: 8080)
	SessionTTL           time.Duration `yaml:"session_ttl"`           // session token lifetime (default: 12h)
	ShutdownGracePeriod  time.Duration `yaml:"shutdown_grace_period"` // (default: 10s)
	HousekeepingInterval time.Duration `yaml:"housekeeping_interval"` // idle dialog sweep (default: 1m)
	DialogIdleTimeout    time.Duration `yaml:"dialog_idle_timeout"`   // idle dialogs are closed after (default: 30m)
}

// DefaultConfig is the configuration with nothing set.
func DefaultConfig() Config {
	return Config{
		Store:                StoreMemory,
		DatabaseFile:         "pandda.db",
		Issuer:               "pandda",
		Seed:                 true,
		PepperFile:           "pepper",
		Timezone:             "Local",
		Env:                  "dev",
		LogLevel:             "info",
		LogFormat:            "json",
		Port:                 8080,
		SessionTTL:           12 * time.Hour,
		ShutdownGracePeriod:  10 * time.Second,
		HousekeepingInterval: time.Minute,
		DialogIdleTimeout:    30 * time.Minute,
	}
}

// LoadConfig reads the file named by PANDDA_CONFIG, if any, and applies the
// environment on top.
func LoadConfig() (Config, error) {
	return LoadConfigFile(os.Getenv("PANDDA_CONFIG"))
}

// LoadConfigFile is LoadConfig with an explicit file. An empty path skips
// the file; a missing file is an error.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		raw, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config file %s not found", path)
		}
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.Store = getEnvOrDefault("PANDDA_STORE", cfg.Store)
	cfg.DatabaseFile = getEnvOrDefault("PANDDA_DATABASE_FILE", cfg.DatabaseFile)
	cfg.Issuer = getEnvOrDefault("PANDDA_ISSUER", cfg.Issuer)
	cfg.Seed = getEnvBoolOrDefault("PANDDA_SEED", cfg.Seed)
	cfg.PepperFile = getEnvOrDefault("PANDDA_PEPPER_FILE", cfg.PepperFile)
	cfg.Timezone = getEnvOrDefault("PANDDA_TIMEZONE", cfg.Timezone)
	cfg.Env = getEnvOrDefault("ENV", cfg.Env)
	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnvOrDefault("LOG_FORMAT", cfg.LogFormat)
	cfg.Port = getEnvIntOrDefault("PORT", cfg.Port)
	cfg.SessionTTL = getEnvDurationOrDefault("PANDDA_SESSION_TTL", cfg.SessionTTL)
	cfg.ShutdownGracePeriod = getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", cfg.ShutdownGracePeriod)
	cfg.HousekeepingInterval = getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", cfg.HousekeepingInterval)
	cfg.DialogIdleTimeout = getEnvDurationOrDefault("DIALOG_IDLE_TIMEOUT", cfg.DialogIdleTimeout)

	return cfg, cfg.Validate()
}

// Validate rejects settings the application cannot start with.
func (c Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreSQLite:
	default:
		return fmt.Errorf("unknown store %q (want %s or %s)", c.Store, StoreMemory, StoreSQLite)
	}
	if c.Store == StoreSQLite && c.DatabaseFile == "" {
		return errors.New("database file is required for the sqlite store")
	}
	if c.Issuer == "" {
		return errors.New("issuer is required")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
