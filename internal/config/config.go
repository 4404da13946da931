// Package config holds server configuration loaded from the environment.
// A .env file in the working directory is honored when present.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/abhisek/studium/internal/llm"
)

// Config is the full server configuration.
type Config struct {
	// Addr is the listen address for the HTTP server. Default: ":5001".
	Addr string

	// Mode selects the gin mode: "debug", "release", or "test".
	Mode string

	// DatabasePath is the SQLite file path. Empty means the default
	// resolution in store.DefaultDBPath.
	DatabasePath string

	// UploadDir is where uploaded PDFs are stored.
	UploadDir string

	// MaxUploadBytes caps multipart uploads. Default: 100MB.
	MaxUploadBytes int64

	// TemplateDir optionally overrides the embedded prompt templates.
	TemplateDir string

	// SecretKey signs session cookies.
	SecretKey string

	// LLM carries provider selection and credentials.
	LLM llm.Config
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Addr:           ":5001",
		Mode:           "release",
		UploadDir:      "uploads",
		MaxUploadBytes: 100 << 20,
		SecretKey:      "dev-secret-key",
		LLM:            llm.DefaultConfig(),
	}
}

// FromEnv builds a Config from the environment, loading a .env file
// first if one exists. Unset variables keep their defaults.
func FromEnv() Config {
	// Missing .env is the normal case in production.
	_ = godotenv.Load()

	cfg := Default()
	cfg.LLM = llm.ConfigFromEnv()

	if v := os.Getenv("STUDIUM_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("STUDIUM_MODE"); v != "" {
		cfg.Mode = v
	}
	if v := os.Getenv("STUDIUM_DB"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("STUDIUM_UPLOAD_DIR"); v != "" {
		cfg.UploadDir = v
	}
	if v := os.Getenv("STUDIUM_MAX_UPLOAD_MB"); v != "" {
		if mb, err := strconv.ParseInt(v, 10, 64); err == nil && mb > 0 {
			cfg.MaxUploadBytes = mb << 20
		}
	}
	if v := os.Getenv("STUDIUM_TEMPLATE_DIR"); v != "" {
		cfg.TemplateDir = v
	}
	if v := os.Getenv("STUDIUM_SECRET_KEY"); v != "" {
		cfg.SecretKey = v
	}

	return cfg
}

// Validate checks the configuration for values the server cannot run with.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("listen address is required")
	}
	switch c.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unknown mode: %q", c.Mode)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("max upload size must be positive")
	}
	if err := c.LLM.Validate(); err != nil {
		return err
	}
	return nil
}
