package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jroosing/autodns/internal/config"
	"github.com/jroosing/autodns/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Logger Configuration Tests
// =============================================================================

func TestConfigure_AllLogLevels(t *testing.T) {
	levels := []string{"DEBUG", "INFO", "WARN", "WARNING", "ERROR", "debug", "DeBuG", "", "INVALID"}

	for _, level := range levels {
		t.Run(level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := logging.Configure(logging.Config{Level: level, Output: &buf})
			require.NotNil(t, logger)
		})
	}
}

func TestConfigure_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.Configure(logging.Config{Level: "warn", Output: &buf})

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestConfigure_InvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.Configure(logging.Config{Level: "INVALID", Output: &buf})

	logger.Debug("debug line")
	logger.Info("info line")

	assert.NotContains(t, buf.String(), "debug line")
	assert.Contains(t, buf.String(), "info line")
}

func TestConfigure_StructuredJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.Configure(logging.Config{
		Level:            "INFO",
		Structured:       true,
		StructuredFormat: "json",
		ExtraFields:      map[string]string{"app": "autodns"},
		IncludePID:       true,
		Output:           &buf,
	})

	logger.Info("zone written", "domain", "integris.ptt")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "zone written", entry["msg"])
	assert.Equal(t, "integris.ptt", entry["domain"])
	assert.Equal(t, "autodns", entry["app"])
	assert.Contains(t, entry, "pid")
}

func TestConfigure_StructuredText(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.Configure(logging.Config{
		Level:            "INFO",
		Structured:       true,
		StructuredFormat: "text",
		Output:           &buf,
	})

	logger.Info("hello", "k", "v")
	assert.True(t, strings.Contains(buf.String(), "k=v"))
}

func TestFromConfig(t *testing.T) {
	lc := config.LoggingConfig{Level: "DEBUG", Structured: true, StructuredFormat: "json", IncludePID: true}
	got := logging.FromConfig(lc)

	assert.Equal(t, "DEBUG", got.Level)
	assert.True(t, got.Structured)
	assert.Equal(t, "json", got.StructuredFormat)
	assert.True(t, got.IncludePID)
	assert.Nil(t, got.Output)
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { logging.Discard().Error("nothing") })
}
