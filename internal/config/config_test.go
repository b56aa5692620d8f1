package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnvVars unsets every variable Load reads so tests start from defaults
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "API_KEY", "LOG_LEVEL", "LOG_FORMAT", "LOG_DIR",
		"SERVICE_NAME", "VERSION", "ENVIRONMENT", "TRUSTED_PROXIES",
		"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME",
		"DB_MAX_CONNS", "DB_MAX_CONN_IDLE_TIME", "DB_MAX_CONN_LIFETIME", "AUTO_MIGRATE",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
		"DEV_MODE", "XP_COOLDOWN", "COOLDOWN_MAX_ENTRIES", "CONFIG_CACHE_SIZE", "CONFIG_CACHE_TTL",
		"WORKER_COUNT", "WORKER_QUEUE_SIZE", "SHUTDOWN_TIMEOUT", "SCHEDULER_ENABLED",
	} {
		if prev, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, prev) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("API_KEY", "test-key")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "logs", cfg.LogDir)
	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, DefaultServiceName, cfg.ServiceName)
	assert.Empty(t, cfg.TrustedProxies)

	assert.Equal(t, "mimi", cfg.DBName)
	assert.Equal(t, DefaultDBMaxConns, cfg.DBMaxConns)
	assert.Equal(t, DefaultDBMaxConnIdleTime, cfg.DBMaxConnIdleTime)
	assert.Equal(t, DefaultDBMaxConnLifetime, cfg.DBMaxConnLifetime)
	assert.True(t, cfg.AutoMigrate)

	assert.False(t, cfg.RedisEnabled())
	assert.False(t, cfg.DevMode)
	assert.Equal(t, 60*time.Second, cfg.XPCooldown)
	assert.Equal(t, DefaultCooldownEntries, cfg.CooldownEntries)
	assert.Equal(t, DefaultConfigCacheSize, cfg.ConfigCacheSize)
	assert.Equal(t, DefaultConfigCacheTTL, cfg.ConfigCacheTTL)
	assert.Equal(t, DefaultWorkerCount, cfg.WorkerCount)
	assert.Equal(t, DefaultShutdownTimeout, cfg.ShutdownTimeout)
	assert.True(t, cfg.SchedulerEnabled)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("API_KEY", "custom-api-key")
	t.Setenv("PORT", "3000")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("ENVIRONMENT", "prod")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.1, ,10.0.0.2")
	t.Setenv("DB_HOST", "db.example.com")
	t.Setenv("DB_MAX_CONNS", "50")
	t.Setenv("DB_MAX_CONN_IDLE_TIME", "10m")
	t.Setenv("AUTO_MIGRATE", "false")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("DEV_MODE", "true")
	t.Setenv("XP_COOLDOWN", "30s")
	t.Setenv("CONFIG_CACHE_TTL", "1m")
	t.Setenv("WORKER_COUNT", "4")
	t.Setenv("SCHEDULER_ENABLED", "false")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "custom-api-key", cfg.APIKey)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "prod", cfg.Environment)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
	assert.Equal(t, "db.example.com", cfg.DBHost)
	assert.Equal(t, 50, cfg.DBMaxConns)
	assert.Equal(t, 10*time.Minute, cfg.DBMaxConnIdleTime)
	assert.False(t, cfg.AutoMigrate)
	assert.True(t, cfg.RedisEnabled())
	assert.Equal(t, 2, cfg.RedisDB)
	assert.True(t, cfg.DevMode)
	assert.Equal(t, 30*time.Second, cfg.XPCooldown)
	assert.Equal(t, time.Minute, cfg.ConfigCacheTTL)
	assert.Equal(t, 4, cfg.WorkerCount)
	assert.False(t, cfg.SchedulerEnabled)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("API_KEY", "test-key")
	t.Setenv("DB_MAX_CONNS", "lots")
	t.Setenv("XP_COOLDOWN", "a minute")
	t.Setenv("DEV_MODE", "maybe")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultDBMaxConns, cfg.DBMaxConns)
	assert.Equal(t, DefaultXPCooldown, cfg.XPCooldown)
	assert.False(t, cfg.DevMode)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing API_KEY", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "API_KEY")
	})

	for _, port := range []string{"not-a-number", "8080.5", ""} {
		t.Run("port "+port, func(t *testing.T) {
			clearEnvVars(t)
			t.Setenv("API_KEY", "test-key")
			t.Setenv("PORT", port)

			_, err := Load()

			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid PORT")
		})
	}
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "user",
		DBPassword: "p@ss:word",
		DBHost:     "db",
		DBPort:     "5433",
		DBName:     "mimi",
	}

	assert.Equal(t, "postgres://user:p@ss:word@db:5433/mimi?sslmode=disable", cfg.GetDBConnString())
}
