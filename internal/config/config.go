// Package config loads and validates kvserver's JSON configuration file, in
// the same shape the teacher repo uses for its own config: a Default(), a
// Load(path), and a Validate().
package config

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
)

// Server configures the wire-protocol listener.
type Server struct {
	ListenAddr string `json:"listen_addr"`
}

// Admin configures the HTTP health/metrics listener (internal/admin).
type Admin struct {
	Enabled    bool   `json:"enabled"`
	ListenAddr string `json:"listen_addr"`
}

// Limits bounds how much of a single request the codec will buffer before
// giving up with a framing error, so one misbehaving client cannot grow a
// connection's read buffer without bound.
type Limits struct {
	MaxInlineLine int   `json:"max_inline_line"`
	MaxBulkLen    int64 `json:"max_bulk_len"`
}

// Log configures the standard-library logger in internal/logging.
type Log struct {
	Level string `json:"level"`
}

// Config is the top-level configuration document.
type Config struct {
	Server Server `json:"server"`
	Admin  Admin  `json:"admin"`
	Limits Limits `json:"limits"`
	Log    Log    `json:"log"`
}

// Default returns the safe loopback configuration used on first boot,
// mirroring the teacher's own Default()/EnsureConfigFile pairing.
func Default() Config {
	return Config{
		Server: Server{ListenAddr: "127.0.0.1:6380"},
		Admin:  Admin{Enabled: true, ListenAddr: "127.0.0.1:6381"},
		Limits: Limits{
			MaxInlineLine: 64 * 1024,
			MaxBulkLen:    512 * 1024 * 1024,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads and merges a JSON config file over Default(). An empty path
// returns Default() unchanged, matching the teacher's Load(""); a missing or
// unparsable file is reported as an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	if strings.TrimSpace(cfg.Log.Level) == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Limits.MaxInlineLine <= 0 {
		cfg.Limits.MaxInlineLine = 64 * 1024
	}
	if cfg.Limits.MaxBulkLen <= 0 {
		cfg.Limits.MaxBulkLen = 512 * 1024 * 1024
	}
	return cfg, nil
}

// Validate rejects configurations that cannot start a server.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Server.ListenAddr) == "" {
		return errors.New("server.listen_addr required")
	}
	if c.Admin.Enabled && strings.TrimSpace(c.Admin.ListenAddr) == "" {
		return errors.New("admin.listen_addr required when admin.enabled")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("log.level must be one of debug|info|warn|error")
	}
	return nil
}
