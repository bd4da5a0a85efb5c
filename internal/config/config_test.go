package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("FRONTEND_ORIGINS", "")
	t.Setenv("TZ", "Asia/Kolkata")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, "dhaara", cfg.MongoDB)
	assert.Equal(t, 60, cfg.CacheTTLSeconds)
	assert.Equal(t, "dhaara-uploads", cfg.MinIOBucket)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes())
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017/legal/extra")
	t.Setenv("MONGO_DB", "")
	t.Setenv("FRONTEND_ORIGINS", "http://a.test, http://b.test ,")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATE_LIMIT_CHAT", "3")
	t.Setenv("TZ", "UTC")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "legal", cfg.MongoDB)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.FrontendOrigins)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 3, cfg.RateLimitChat)
}

func TestParseLevelFallsBackToInfo(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, parseLevel("loud"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
}
