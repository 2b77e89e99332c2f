package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearScheduleEnv(t *testing.T) {
	vars := []string{
		"SERVER_PORT", "ENVIRONMENT", "DATABASE_URL", "DB_DRIVER", "LOG_LEVEL",
		"SCHEDULE_OUTPUT_DIR", "SOLVER_TIME_LIMIT_SECONDS", "SOLVER_RANDOM_SEED",
	}
	for _, v := range vars {
		orig, had := os.LookupEnv(v)
		os.Unsetenv(v)
		t.Cleanup(func() {
			if had {
				os.Setenv(v, orig)
			}
		})
	}
}

func TestDefaultAppConfig(t *testing.T) {
	cfg := DefaultAppConfig()
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 30.0, cfg.SolverTimeLimitSeconds)
	assert.Equal(t, int64(1), cfg.SolverRandomSeed)
}

func TestLoadAppConfigOverridesFromEnv(t *testing.T) {
	clearScheduleEnv(t)
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("ENVIRONMENT", "production")
	os.Setenv("SOLVER_TIME_LIMIT_SECONDS", "45.5")
	os.Setenv("SOLVER_RANDOM_SEED", "42")

	cfg := LoadAppConfig()
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 45.5, cfg.SolverTimeLimitSeconds)
	assert.Equal(t, int64(42), cfg.SolverRandomSeed)
}

func TestLoadAppConfigIgnoresMalformedNumericEnv(t *testing.T) {
	clearScheduleEnv(t)
	os.Setenv("SERVER_PORT", "not-a-number")
	os.Setenv("SOLVER_RANDOM_SEED", "not-a-number")

	cfg := LoadAppConfig()
	assert.Equal(t, 8080, cfg.ServerPort, "malformed SERVER_PORT should fall back to the default")
	assert.Equal(t, int64(1), cfg.SolverRandomSeed, "malformed SOLVER_RANDOM_SEED should fall back to the default")
}

func TestAppConfigEnvironmentPredicates(t *testing.T) {
	cfg := &AppConfig{Env: "production"}
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsTesting())

	cfg.Env = "testing"
	assert.True(t, cfg.IsTesting())
}
