package features

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variables take the form SMSSYNC_FEATURE_<NAME>=true/false,
// with SMSSYNC_FEATURES_ENABLE_ALL and SMSSYNC_FEATURES_DISABLE_ALL as
// global overrides.
const (
	envPrefix     = "SMSSYNC_FEATURE_"
	envEnableAll  = "SMSSYNC_FEATURES_ENABLE_ALL"
	envDisableAll = "SMSSYNC_FEATURES_DISABLE_ALL"
)

// LoadFromEnvironment applies environment variable overrides to the
// registered flags.
func (fm *FlagManager) LoadFromEnvironment() {
	fm.mu.Lock()
	defer fm.mu.Unlock()

	if value := os.Getenv(envEnableAll); value != "" {
		if enableAll, _ := strconv.ParseBool(value); enableAll {
			fm.setAll(true)
			return
		}
	}
	if value := os.Getenv(envDisableAll); value != "" {
		if disableAll, _ := strconv.ParseBool(value); disableAll {
			fm.setAll(false)
			return
		}
	}

	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}

		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			continue
		}

		name := strings.ToLower(strings.TrimPrefix(parts[0], envPrefix))
		enabled, err := strconv.ParseBool(parts[1])
		if err != nil {
			continue
		}

		if flag, exists := fm.flags[name]; exists {
			flag.Enabled = enabled
			flag.UpdatedAt = time.Now()
		} else {
			fm.flags[name] = &Flag{
				Name:        name,
				Enabled:     enabled,
				Description: "Flag created from environment variable",
				UpdatedAt:   time.Now(),
				Tags:        []string{"env"},
			}
		}
	}
}

// setAll flips every registered flag; callers hold the lock.
func (fm *FlagManager) setAll(enabled bool) {
	now := time.Now()
	for _, flag := range fm.flags {
		flag.Enabled = enabled
		flag.UpdatedAt = now
	}
}
