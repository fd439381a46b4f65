package main

import (
	"os"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("SPOTIFY_CLIENT_ID", "id")
		t.Setenv("SPOTIFY_CLIENT_SECRET", "secret")

		env, err := LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, "id", env.SpotifyClientID)
		assert.Equal(t, "3001", env.Port)
		assert.Equal(t, "US", env.SpotifyMarket)
		assert.Equal(t, []string{"*"}, env.CORSAllowOrigins)
		assert.Equal(t, 10*time.Second, env.HTTPTimeout)
		assert.Equal(t, "https://api.spotify.com/v1/", env.SpotifyAPIURL)
		assert.Empty(t, env.OTELExporterEndpoint)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("SPOTIFY_CLIENT_ID", "id")
		t.Setenv("SPOTIFY_CLIENT_SECRET", "secret")
		t.Setenv("PORT", "8080")
		t.Setenv("SPOTIFY_MARKET", "FR")
		t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:5173,https://example.com")
		t.Setenv("HTTP_TIMEOUT", "3s")

		env, err := LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, "8080", env.Port)
		assert.Equal(t, "FR", env.SpotifyMarket)
		assert.Equal(t, []string{"http://localhost:5173", "https://example.com"}, env.CORSAllowOrigins)
		assert.Equal(t, 3*time.Second, env.HTTPTimeout)
	})

	t.Run("missing credentials", func(t *testing.T) {
		t.Setenv("SPOTIFY_CLIENT_ID", "")
		t.Setenv("SPOTIFY_CLIENT_SECRET", "")
		os.Unsetenv("SPOTIFY_CLIENT_ID")
		os.Unsetenv("SPOTIFY_CLIENT_SECRET")

		_, err := LoadEnv()
		assert.Error(t, err)
	})
}

func TestNewLogger(t *testing.T) {
	logger := newLogger(&Env{LogFormat: "text", LogLevel: "debug"})
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)

	logger = newLogger(&Env{LogFormat: "json", LogLevel: "nonsense"})
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestNewRootCmd(t *testing.T) {
	root := newRootCmd()
	assert.True(t, root.SilenceUsage)
	assert.False(t, root.SilenceErrors, "errors are still printed")

	for _, name := range []string{"serve", "search", "suggest"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}
