package config_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/voicequiz/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("VOICEQUIZ_STATE_DIR", dir)

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, config.DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, config.DefaultTimeout, cfg.API.Timeout)
	assert.Equal(t, dir, cfg.StateDir)
	assert.Equal(t, filepath.Join(dir, "voicequiz.log"), cfg.Log.File)
	assert.Equal(t, "en", cfg.Transcribe.Language)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := "api:\n  base_url: https://quiz.example.com/api/\n  timeout: 30s\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	t.Setenv("VOICEQUIZ_STATE_DIR", dir)
	t.Setenv("VOICEQUIZ_LANGUAGE", "fr")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://quiz.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "fr", cfg.Transcribe.Language)
}

func TestLoadRejectsMalformedDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BAD-KEY=1\n"), 0o600))
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("VOICEQUIZ_STATE_DIR", dir)

	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load .env")
}

func TestValidate(t *testing.T) {
	valid := func() config.Config {
		return config.Config{
			API:        config.APIConfig{BaseURL: "http://localhost:5000/api", Timeout: time.Second},
			StateDir:   "/tmp/vq",
			Log:        config.LogConfig{Level: "info"},
			Transcribe: config.TranscribeConfig{Language: "en"},
		}
	}

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"bad url", func(c *config.Config) { c.API.BaseURL = "not a url" }},
		{"zero timeout", func(c *config.Config) { c.API.Timeout = 0 }},
		{"no state dir", func(c *config.Config) { c.StateDir = "" }},
		{"bad level", func(c *config.Config) { c.Log.Level = "loud" }},
		{"short key", func(c *config.Config) { c.CryptoKey = "abc" }},
		{"no language", func(c *config.Config) { c.Transcribe.Language = "" }},
	}

	base := valid()
	require.NoError(t, base.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestWithContextCarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	config.SetOutput(&buf)
	t.Cleanup(func() { config.SetOutput(os.Stderr) })

	ctx := config.ContextWithRequestID(context.Background(), "req-42")
	config.WithContext(ctx).Warn("hello")

	assert.Contains(t, buf.String(), "req-42")
	assert.Equal(t, "req-42", config.RequestIDFromContext(ctx))
}
