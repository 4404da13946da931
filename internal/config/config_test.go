package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()
	assert.Equal(t, ":5001", cfg.Addr)
	assert.Equal(t, int64(100<<20), cfg.MaxUploadBytes)
	assert.Equal(t, "uploads", cfg.UploadDir)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("STUDIUM_ADDR", ":9000")
	t.Setenv("STUDIUM_MODE", "debug")
	t.Setenv("STUDIUM_MAX_UPLOAD_MB", "25")
	t.Setenv("STUDIUM_UPLOAD_DIR", "/tmp/pdfs")

	cfg := FromEnv()
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "debug", cfg.Mode)
	assert.Equal(t, int64(25<<20), cfg.MaxUploadBytes)
	assert.Equal(t, "/tmp/pdfs", cfg.UploadDir)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.LLM.Provider = "mock"
	require.NoError(t, cfg.Validate())

	bad := cfg
	bad.Mode = "production"
	assert.Error(t, bad.Validate(), "unknown mode should fail validation")

	bad = cfg
	bad.MaxUploadBytes = 0
	assert.Error(t, bad.Validate(), "zero upload cap should fail validation")
}
