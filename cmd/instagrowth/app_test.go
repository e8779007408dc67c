package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags() {
	flagConfig = ""
	flagVerbose = false
	flagStoreDir = ""
	flagAPIKey = ""
	flagModel = ""
	flagProviderURL = ""
	flagProviderHost = ""
}

func TestLoadSettings_FlagsOverrideConfigFile(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)

	content := `{"gemini_api_key": "file-key", "model": "file-model"}`
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	flagConfig = tmpFile
	flagModel = "flag-model"

	cfg, err := loadSettings()
	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.GeminiAPIKey)
	assert.Equal(t, "flag-model", cfg.Model)
}

func TestLoadSettings_DefaultsModel(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)
	t.Setenv("INSTAGROWTH_MODEL", "")

	cfg, err := loadSettings()
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
}

func TestLoadSettings_BadConfigPath(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)

	flagConfig = "/nonexistent/config.json"

	_, err := loadSettings()
	assert.Error(t, err)
}

func TestValidHookStyle(t *testing.T) {
	assert.True(t, validHookStyle("Curiosity Gap"))
	assert.True(t, validHookStyle("curiosity gap"))
	assert.False(t, validHookStyle("Shouting"))
}

func TestRunPerformance_RejectsUnknownSortOrder(t *testing.T) {
	performanceSort = "random"
	t.Cleanup(func() { performanceSort = "latest" })

	err := runPerformance(nil, []string{"someone"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown sort order")
}

func TestCalendarSchedule_RequiresTitleAndTime(t *testing.T) {
	scheduleTitle = ""
	scheduleAt = ""
	err := runCalendarSchedule(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--title")

	scheduleTitle = "Gear review"
	t.Cleanup(func() { scheduleTitle = "" })
	err = runCalendarSchedule(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--at")

	scheduleAt = "not-a-time"
	t.Cleanup(func() { scheduleAt = "" })
	err = runCalendarSchedule(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --at")
}
