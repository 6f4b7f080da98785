package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"smssync/internal/constants"
	"smssync/internal/models"
	"smssync/internal/security"
)

var (
	ErrMissingAuthEmail = models.ConfigError{Message: "missing auth email"}
	ErrMissingPassword  = models.ConfigError{Message: "missing auth password or password hash"}
	ErrMissingDataFile  = models.ConfigError{Message: "missing store data file path"}
)

func LoadConfig(path string) (*models.Config, error) {
	// Validate config file path to prevent directory traversal
	if err := security.ValidateFilePath(path); err != nil {
		return nil, fmt.Errorf("invalid config path: %w", err)
	}

	file, err := os.ReadFile(path) // #nosec G304 - Path validated by security.ValidateFilePath above
	if err != nil {
		return nil, err
	}

	var config models.Config
	if err := json.Unmarshal(file, &config); err != nil {
		return nil, err
	}

	applyEnvironmentOverrides(&config)

	if err := validate(&config); err != nil {
		return nil, err
	}

	if err := validateSecurity(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validate(c *models.Config) error {
	if c.Auth.Email == "" {
		return ErrMissingAuthEmail
	}
	if c.Auth.Password == "" && c.Auth.PasswordHash == "" {
		return ErrMissingPassword
	}
	if c.Store.DataFile == "" {
		return ErrMissingDataFile
	}
	if err := security.ValidateFilePath(c.Store.DataFile); err != nil {
		return models.ConfigError{Message: fmt.Sprintf("invalid store data file path: %v", err)}
	}

	if c.Server.Port <= 0 {
		c.Server.Port = constants.DefaultServerPort
	}
	if c.Server.ReadTimeoutSec <= 0 {
		c.Server.ReadTimeoutSec = constants.DefaultServerReadTimeoutSec
	}
	if c.Server.WriteTimeoutSec <= 0 {
		c.Server.WriteTimeoutSec = constants.DefaultServerWriteTimeoutSec
	}
	if c.Server.IdleTimeoutSec <= 0 {
		c.Server.IdleTimeoutSec = constants.DefaultServerIdleTimeoutSec
	}
	if c.Auth.IdleTimeoutSec <= 0 {
		c.Auth.IdleTimeoutSec = constants.DefaultIdleTimeoutSec
	}
	return nil
}

func applyEnvironmentOverrides(c *models.Config) {
	if email := os.Getenv("SMSSYNC_AUTH_EMAIL"); email != "" {
		c.Auth.Email = email
	}

	// SECURITY: credentials should be supplied via environment variables
	if pass := os.Getenv("SMSSYNC_AUTH_PASSWORD"); pass != "" {
		c.Auth.Password = pass
	}
	if hash := os.Getenv("SMSSYNC_AUTH_PASSWORD_HASH"); hash != "" {
		c.Auth.PasswordHash = hash
	}

	if dataFile := os.Getenv("SMSSYNC_DATA_FILE"); dataFile != "" {
		c.Store.DataFile = dataFile
	}
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}
}

// validateSecurity performs security-specific validation
func validateSecurity(c *models.Config) error {
	isProduction := os.Getenv("SMSSYNC_ENV") == "production"

	if isProduction {
		if c.Auth.PasswordHash == "" {
			return models.ConfigError{Message: "a bcrypt password hash is required in production (set SMSSYNC_AUTH_PASSWORD_HASH environment variable)"}
		}
		if c.Auth.Password != "" {
			return models.ConfigError{Message: "plaintext auth password must not be configured in production"}
		}
		if c.LogLevel == "debug" {
			return models.ConfigError{Message: "debug logging should not be used in production (security risk)"}
		}
	} else {
		if c.Auth.PasswordHash == "" {
			fmt.Fprintf(os.Stderr, "WARNING: plaintext auth password in use. Set SMSSYNC_AUTH_PASSWORD_HASH for a bcrypt hash instead.\n")
		}
	}

	return nil
}
