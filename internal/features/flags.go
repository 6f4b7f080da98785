package features

import (
	"sync"
	"time"
)

// Flag represents a runtime feature toggle with metadata.
type Flag struct {
	Name        string    `json:"name"`
	Enabled     bool      `json:"enabled"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updated_at"`
	Tags        []string  `json:"tags,omitempty"`
}

// FlagManager manages feature flags with thread-safe operations.
type FlagManager struct {
	flags map[string]*Flag
	mu    sync.RWMutex
}

func NewFlagManager() *FlagManager {
	return &FlagManager{
		flags: make(map[string]*Flag),
	}
}

// Flag name constants
const (
	FlagMetricsEndpoint = "metrics_endpoint"
	FlagVersionEndpoint = "version_endpoint"
	FlagRequestLogging  = "request_logging"
	FlagBulkOperations  = "bulk_operations"
)

// FlagDefinition contains metadata about a flag.
type FlagDefinition struct {
	Name         string
	Description  string
	DefaultValue bool
	Tags         []string
}

// DefaultFlags defines all available feature flags with their defaults.
var DefaultFlags = []FlagDefinition{
	{FlagMetricsEndpoint, "Expose the in-process metrics endpoint", true, []string{"observability"}},
	{FlagVersionEndpoint, "Expose build and API version information", true, []string{"observability"}},
	{FlagRequestLogging, "Log a debug line when each HTTP request starts", true, []string{"observability"}},
	{FlagBulkOperations, "Allow batch mutations through the bulk operation", true, []string{"api"}},
}

// InitializeDefaults registers all default flags.
func (fm *FlagManager) InitializeDefaults() {
	fm.mu.Lock()
	defer fm.mu.Unlock()

	now := time.Now()
	for _, def := range DefaultFlags {
		if _, exists := fm.flags[def.Name]; !exists {
			fm.flags[def.Name] = &Flag{
				Name:        def.Name,
				Enabled:     def.DefaultValue,
				Description: def.Description,
				UpdatedAt:   now,
				Tags:        def.Tags,
			}
		}
	}
}

// IsEnabled checks if a feature flag is enabled. Unknown flags read as
// disabled.
func (fm *FlagManager) IsEnabled(name string) bool {
	fm.mu.RLock()
	defer fm.mu.RUnlock()

	flag, exists := fm.flags[name]
	return exists && flag.Enabled
}

// Enable enables a feature flag.
func (fm *FlagManager) Enable(name string) error {
	return fm.set(name, true)
}

// Disable disables a feature flag.
func (fm *FlagManager) Disable(name string) error {
	return fm.set(name, false)
}

func (fm *FlagManager) set(name string, enabled bool) error {
	fm.mu.Lock()
	defer fm.mu.Unlock()

	flag, exists := fm.flags[name]
	if !exists {
		return ErrFlagNotFound{Name: name}
	}

	flag.Enabled = enabled
	flag.UpdatedAt = time.Now()
	return nil
}

// ListFlags returns a copy of every registered flag.
func (fm *FlagManager) ListFlags() []*Flag {
	fm.mu.RLock()
	defer fm.mu.RUnlock()

	result := make([]*Flag, 0, len(fm.flags))
	for _, flag := range fm.flags {
		flagCopy := *flag
		if flag.Tags != nil {
			flagCopy.Tags = make([]string, len(flag.Tags))
			copy(flagCopy.Tags, flag.Tags)
		}
		result = append(result, &flagCopy)
	}
	return result
}

// Global flag manager instance
var globalFlagManager = NewFlagManager()

// Initialize sets up the global flag manager with defaults and applies
// environment overrides.
func Initialize() {
	globalFlagManager.InitializeDefaults()
	globalFlagManager.LoadFromEnvironment()
}

// IsEnabled checks a flag on the global manager.
func IsEnabled(name string) bool {
	return globalFlagManager.IsEnabled(name)
}

// Enable enables a flag on the global manager.
func Enable(name string) error {
	return globalFlagManager.Enable(name)
}

// Disable disables a flag on the global manager.
func Disable(name string) error {
	return globalFlagManager.Disable(name)
}

// GetGlobalManager returns the global flag manager.
func GetGlobalManager() *FlagManager {
	return globalFlagManager
}

type ErrFlagNotFound struct {
	Name string
}

func (e ErrFlagNotFound) Error() string {
	return "feature flag not found: " + e.Name
}
