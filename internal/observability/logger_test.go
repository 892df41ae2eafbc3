package observability

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, false, false)

	logger.Debug("hidden detail")
	logger.Info("watching catalog", "url", "http://example.com")

	out := buf.String()
	assert.NotContains(t, out, "hidden detail")
	assert.Contains(t, out, "watching catalog")
	assert.Contains(t, out, "url=http://example.com")
}

func TestNewLogger_Verbose(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, true, false)

	logger.Debug("fetched page", "bytes", 42)

	assert.Contains(t, buf.String(), "fetched page")
	assert.Contains(t, buf.String(), "bytes=42")
}

func TestNewLogger_NoColor(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, false, false).Warn("multiple containers")

	assert.NotContains(t, buf.String(), "\033[")
}

func TestSetup_InstallsDefault(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	logger := Setup(false, false)
	assert.Same(t, logger, slog.Default())
}
