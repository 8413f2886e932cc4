package zap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logpkg "github.com/9876691/accounts/log"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  Format
		wantErr bool
	}{
		{name: "json at info", level: "info", format: FormatJSON},
		{name: "console at debug", level: "debug", format: FormatConsole},
		{name: "empty level defaults", level: "", format: FormatJSON},
		{name: "empty format defaults to console", level: "warn", format: ""},
		{name: "invalid level", level: "loud", format: FormatJSON, wantErr: true},
		{name: "invalid format", level: "info", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger, err := NewLogger(tt.level, tt.format)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, logger)
		})
	}
}

func TestEnabledRespectsLevel(t *testing.T) {
	t.Parallel()

	logger, err := NewLogger("warn", FormatJSON)
	require.NoError(t, err)

	assert.True(t, logger.Enabled(logpkg.LevelError))
	assert.True(t, logger.Enabled(logpkg.LevelWarn))
	assert.False(t, logger.Enabled(logpkg.LevelInfo))
	assert.False(t, logger.Enabled(logpkg.LevelDebug))
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var logger *Logger

	assert.NotPanics(t, func() {
		logger.Log(context.Background(), logpkg.LevelInfo, "dropped", logpkg.String("k", "v"))
	})
	assert.False(t, logger.Enabled(logpkg.LevelError))
}

func TestWithAddsFields(t *testing.T) {
	t.Parallel()

	logger, err := NewLogger("info", FormatJSON)
	require.NoError(t, err)

	child := logger.With(logpkg.String("run_id", "abc"))
	require.NotNil(t, child)

	assert.NotPanics(t, func() {
		child.Log(context.Background(), logpkg.LevelDebug, "suppressed")
	})
}
