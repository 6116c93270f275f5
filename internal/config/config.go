// Package config loads application configuration from environment
// variables.
package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable.
type Config struct {
	Env    string // application environment (e.g. "dev", "prod")
	DBPath string // filesystem path of the embedded database file
	Seed   bool   // insert sample data when the schema is first created
}

// Load reads configuration from environment variables. DB_PATH is
// required; missing values cause the program to exit with a fatal log
// message. APP_ENV defaults to "dev" and DB_SEED to true.
func Load() Config {
	return Config{
		Env:    envOr("APP_ENV", "dev"),
		DBPath: must("DB_PATH"),
		Seed:   boolOr("DB_SEED", true),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and
// exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func boolOr(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Fatalf("invalid bool for %s: %q", key, v)
	}
	return b
}
