package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"questiondesk/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		env           string
		expectedLevel slog.Level
	}{
		{
			name:          "local environment",
			env:           config.EnvLocal,
			expectedLevel: slog.LevelDebug,
		},
		{
			name:          "dev environment",
			env:           config.EnvDev,
			expectedLevel: slog.LevelDebug,
		},
		{
			name:          "prod environment",
			env:           config.EnvProd,
			expectedLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.env)
			require.NotNil(t, logger)
			ctx := context.Background()
			assert.Equal(t, tt.expectedLevel <= slog.LevelDebug, logger.Enabled(ctx, slog.LevelDebug))
			assert.True(t, logger.Enabled(ctx, slog.LevelInfo))
		})
	}
}

func TestNewWithLevel(t *testing.T) {
	ctx := context.Background()

	// Явный уровень важнее окружения
	prodDebug := NewWithLevel(config.EnvProd, "debug")
	assert.True(t, prodDebug.Enabled(ctx, slog.LevelDebug))

	localWarn := NewWithLevel(config.EnvLocal, "WARN")
	assert.False(t, localWarn.Enabled(ctx, slog.LevelInfo))
	assert.True(t, localWarn.Enabled(ctx, slog.LevelWarn))

	// Неизвестный уровень - значение по умолчанию для окружения
	devUnknown := NewWithLevel(config.EnvDev, "verbose")
	assert.True(t, devUnknown.Enabled(ctx, slog.LevelDebug))
}

func TestPrettyHandler(t *testing.T) {
	var buf bytes.Buffer
	opts := PrettyHandlerOptions{SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug}}
	log := slog.New(opts.NewPrettyHandler(&buf)).With("component", "test")

	log.Info("record created", "id", "rec1")

	out := buf.String()
	assert.Contains(t, out, "record created")
	assert.Contains(t, out, `"component": "test"`)
	assert.Contains(t, out, `"id": "rec1"`)
}
