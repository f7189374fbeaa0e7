package logger

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/youruser/badgeapp/internal/config"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	require.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	require.Equal(t, slog.LevelError, ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, ParseLevel(""))
	require.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestNewWithoutFile(t *testing.T) {
	log, closer := New(config.LogConfig{Level: "info"})
	require.NotNil(t, log)
	require.NoError(t, closer.Close())
}
