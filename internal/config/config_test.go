package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/scriptchat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the loader at a missing env file and clears every
// variable it reads.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv(EnvFile, filepath.Join(t.TempDir(), "missing.env"))
	for _, k := range []string{EnvDefaultMode, EnvLogUseCases, EnvLogLevel, EnvReplyDelayMs, EnvNoColor, "NO_COLOR"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	assert.Empty(t, cfg.DefaultMode)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv(EnvDefaultMode, "shop")
	t.Setenv(EnvLogUseCases, "yes")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvReplyDelayMs, "250")
	t.Setenv(EnvNoColor, "1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, domain.ModeEcom, cfg.DefaultMode)
	assert.True(t, cfg.LogUseCases)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 250*time.Millisecond, cfg.ReplyDelay)
	assert.True(t, cfg.NoColor)
}

func TestLoad_NoColorConvention(t *testing.T) {
	isolate(t)
	t.Setenv("NO_COLOR", "1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.NoColor)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key, value, want string
	}{
		{EnvDefaultMode, "legal", "unknown mode"},
		{EnvLogLevel, "loud", EnvLogLevel},
		{EnvReplyDelayMs, "60000", "must be between"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			isolate(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_UnparseableNumbersFallBack(t *testing.T) {
	isolate(t)
	t.Setenv(EnvReplyDelayMs, "soon")
	t.Setenv(EnvLogUseCases, "maybe")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Zero(t, cfg.ReplyDelay)
	assert.False(t, cfg.LogUseCases)
}

func TestLoad_EnvFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("SCRIPTCHAT_DEFAULT_MODE=curriculum\nSCRIPTCHAT_REPLY_DELAY_MS=100\n"), 0o600))
	t.Setenv(EnvFile, path)
	t.Setenv(EnvReplyDelayMs, "5")
	t.Cleanup(func() { os.Unsetenv(EnvDefaultMode) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, domain.ModeCurriculum, cfg.DefaultMode)
	assert.Equal(t, 5*time.Millisecond, cfg.ReplyDelay, "environment wins over the file")
}
