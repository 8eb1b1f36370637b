package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sessionguard/sessionguard/pkg/logger"
)

func TestNew_JSONFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithFormat(logger.FormatJSON),
		logger.WithAttr(slog.String("service", "test")),
	)

	log.Info("hello", slog.String("key", "value"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "value", record["key"])
	assert.Equal(t, "test", record["service"])
}

func TestNew_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithLevel(slog.LevelWarn),
	)

	log.Info("dropped")
	assert.Empty(t, buf.String())

	log.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestNew_DevelopmentDefaults(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithDevelopment("sessionguard"),
		logger.WithOutput(&buf),
	)

	log.Debug("visible in dev")
	out := buf.String()
	assert.Contains(t, out, "visible in dev")
	assert.Contains(t, out, "env=development")
}

func TestWithFormat_PanicsOnGarbage(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		logger.New(logger.WithFormat("yaml"))
	})
}

func TestError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.Error(nil))

	attr := logger.Error(errors.New("boom"))
	assert.Equal(t, "error", attr.Key)
}
