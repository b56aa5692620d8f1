package config

import (
	"errors"
	"fmt"
	"strings"
)

// Placeholder values shipped in the example .env
const (
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
	ExampleDBPassword = "change_this_secure_password"
)

const (
	// MinAPIKeyLength is the shortest API key that does not raise a warning
	MinAPIKeyLength = 16
	maxPort         = 65535
	prodEnvironment = "prod"
)

// Validate checks the loaded configuration. Problems that would break the
// process are returned as one error; risky but workable settings come back
// as warnings for the caller to log.
func (c *Config) Validate() ([]string, error) {
	var problems []string
	if c.Port < 1 || c.Port > maxPort {
		problems = append(problems, fmt.Sprintf("PORT must be between 1 and %d, got %d", maxPort, c.Port))
	}
	if c.DBMaxConns < 1 {
		problems = append(problems, "DB_MAX_CONNS must be at least 1")
	}
	if c.WorkerCount < 1 {
		problems = append(problems, "WORKER_COUNT must be at least 1")
	}
	if c.XPCooldown < 0 {
		problems = append(problems, "XP_COOLDOWN must not be negative")
	}
	if c.ShutdownTimeout <= 0 {
		problems = append(problems, "SHUTDOWN_TIMEOUT must be positive")
	}
	if len(problems) > 0 {
		return nil, errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}

	var warnings []string
	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, "API_KEY is the example value - generate a key with: openssl rand -hex 32")
	} else if len(c.APIKey) < MinAPIKeyLength {
		warnings = append(warnings, fmt.Sprintf("API_KEY is shorter than %d characters", MinAPIKeyLength))
	}
	if c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD is the example value - please use a secure password")
	}

	if c.Environment == prodEnvironment {
		if c.DevMode {
			warnings = append(warnings, "DEV_MODE is enabled in prod - XP cooldowns are disabled")
		}
		if !c.SchedulerEnabled {
			warnings = append(warnings, "SCHEDULER_ENABLED is false in prod - salaries are only paid through the admin API")
		}
	}

	return warnings, nil
}
