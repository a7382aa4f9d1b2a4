package config

import (
	"os"
	"strconv"
)

const environmentProduction = "production"

// Config holds the application configuration
type Config struct {
	// Environment
	Environment string
	Port        string

	// Observability
	SentryDSN string // Sentry DSN for error tracking

	// Storage (optional, examples are kept in memory when unset)
	DatabaseURL string

	// Generation
	LexiconDir        string // Directory with names/, maps/ and objects/ markdown; embedded data when empty
	Seed              int64  // Fixed generator seed; 0 means time-seeded
	ExamplesPerIntent int    // Export limit per intent
	MaxCommands       int    // Upper bound on commands per request
}

func Load() *Config {
	return &Config{
		Environment:       getEnv("ENVIRONMENT", "development"),
		Port:              getEnv("PORT", "8080"),
		SentryDSN:         getEnv("SENTRY_DSN", ""),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		LexiconDir:        getEnv("LEXICON_DIR", ""),
		Seed:              getEnvInt64("GENERATOR_SEED", 0),
		ExamplesPerIntent: int(getEnvInt64("EXAMPLES_PER_INTENT", 15)),
		MaxCommands:       int(getEnvInt64("MAX_COMMANDS_PER_REQUEST", 100)),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	value, err := strconv.ParseInt(getEnv(key, ""), 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == environmentProduction
}

// HasDatabase reports whether examples are persisted to postgres
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}
