/*
Package config - Shift Planning Application Configuration

==============================================================================
FILE: internal/config/app_config.go
==============================================================================

DESCRIPTION:
    Central application configuration for the shift planning backend. Loads
    settings from environment variables and .env files.

DEVELOPER GUIDELINES:
    OK to modify: Add new configuration fields, new env var mappings
    CAUTION: Changing default values (may affect existing deployments)
    Always add new fields with sensible defaults

CONFIGURATION SOURCES (priority order):
    1. Environment variables
    2. .env file
    3. Default values in DefaultAppConfig()
==============================================================================
*/
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// AppConfig contains all application configuration
type AppConfig struct {
	// Server configuration
	ServerPort int    `mapstructure:"SERVER_PORT"`
	Env        string `mapstructure:"ENVIRONMENT"`

	// Database configuration
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	DBDriver    string `mapstructure:"DB_DRIVER"`

	// Logging
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Scheduling engine
	ScheduleOutputDir      string  `mapstructure:"SCHEDULE_OUTPUT_DIR"`
	SolverTimeLimitSeconds float64 `mapstructure:"SOLVER_TIME_LIMIT_SECONDS"`
	SolverRandomSeed       int64   `mapstructure:"SOLVER_RANDOM_SEED"`
}

// DefaultAppConfig returns configuration with default values
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		ServerPort:             8080,
		Env:                    "development",
		DatabaseURL:            "./shiftplan.db",
		DBDriver:               "sqlite",
		LogLevel:               "info",
		ScheduleOutputDir:      "./output",
		SolverTimeLimitSeconds: 30,
		SolverRandomSeed:       1,
	}
}

// LoadAppConfig loads all application configuration from the environment.
func LoadAppConfig() *AppConfig {
	_ = godotenv.Load()

	config := DefaultAppConfig()

	if portStr := os.Getenv("SERVER_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			config.ServerPort = port
		}
	}
	if env := os.Getenv("ENVIRONMENT"); env != "" {
		config.Env = env
	}
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		config.DatabaseURL = dbURL
	}
	if dbDriver := os.Getenv("DB_DRIVER"); dbDriver != "" {
		config.DBDriver = dbDriver
	}
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		config.LogLevel = logLevel
	}
	if outDir := os.Getenv("SCHEDULE_OUTPUT_DIR"); outDir != "" {
		config.ScheduleOutputDir = outDir
	}
	if limitStr := os.Getenv("SOLVER_TIME_LIMIT_SECONDS"); limitStr != "" {
		if limit, err := strconv.ParseFloat(limitStr, 64); err == nil {
			config.SolverTimeLimitSeconds = limit
		}
	}
	if seedStr := os.Getenv("SOLVER_RANDOM_SEED"); seedStr != "" {
		if seed, err := strconv.ParseInt(seedStr, 10, 64); err == nil {
			config.SolverRandomSeed = seed
		}
	}

	return config
}

// IsProduction returns true if environment is production
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// IsDevelopment returns true if environment is development
func (c *AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}

// IsTesting returns true if environment is testing
func (c *AppConfig) IsTesting() bool {
	return c.Env == "testing"
}
