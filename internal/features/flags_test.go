package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDefaults(t *testing.T) {
	fm := NewFlagManager()
	fm.InitializeDefaults()

	assert.True(t, fm.IsEnabled(FlagMetricsEndpoint))
	assert.True(t, fm.IsEnabled(FlagVersionEndpoint))
	assert.True(t, fm.IsEnabled(FlagRequestLogging))
	assert.True(t, fm.IsEnabled(FlagBulkOperations))
	assert.Len(t, fm.ListFlags(), len(DefaultFlags))
}

func TestEnableDisable(t *testing.T) {
	fm := NewFlagManager()
	fm.InitializeDefaults()

	require.NoError(t, fm.Disable(FlagBulkOperations))
	assert.False(t, fm.IsEnabled(FlagBulkOperations))

	require.NoError(t, fm.Enable(FlagBulkOperations))
	assert.True(t, fm.IsEnabled(FlagBulkOperations))

	err := fm.Disable("no_such_flag")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no_such_flag")
}

func TestUnknownFlagReadsDisabled(t *testing.T) {
	fm := NewFlagManager()
	fm.InitializeDefaults()

	assert.False(t, fm.IsEnabled("not_registered"))
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SMSSYNC_FEATURE_BULK_OPERATIONS", "false")
	t.Setenv("SMSSYNC_FEATURE_CUSTOM_TOGGLE", "true")

	fm := NewFlagManager()
	fm.InitializeDefaults()
	fm.LoadFromEnvironment()

	assert.False(t, fm.IsEnabled(FlagBulkOperations))
	assert.True(t, fm.IsEnabled("custom_toggle"))
	assert.True(t, fm.IsEnabled(FlagMetricsEndpoint), "untouched flags keep their default")
}

func TestDisableAllOverride(t *testing.T) {
	t.Setenv("SMSSYNC_FEATURES_DISABLE_ALL", "true")

	fm := NewFlagManager()
	fm.InitializeDefaults()
	fm.LoadFromEnvironment()

	for _, flag := range fm.ListFlags() {
		assert.False(t, flag.Enabled, flag.Name)
	}
}

func TestEnableAllOverride(t *testing.T) {
	t.Setenv("SMSSYNC_FEATURES_ENABLE_ALL", "true")

	fm := NewFlagManager()
	fm.InitializeDefaults()
	require.NoError(t, fm.Disable(FlagRequestLogging))
	fm.LoadFromEnvironment()

	assert.True(t, fm.IsEnabled(FlagRequestLogging))
}

func TestListFlagsReturnsCopies(t *testing.T) {
	fm := NewFlagManager()
	fm.InitializeDefaults()

	flags := fm.ListFlags()
	require.NotEmpty(t, flags)
	flags[0].Enabled = !flags[0].Enabled

	assert.NotEqual(t, flags[0].Enabled, fm.IsEnabled(flags[0].Name))
}
