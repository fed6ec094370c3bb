package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureConfigFile makes sure the config file exists.
//
// If the file does not exist, it writes the safe loopback default config so
// kvserver can boot without any prior setup.
//
// It never overwrites an existing file.
func EnsureConfigFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	cfg := Default()
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')

	// Write with restrictive perms; user can loosen on host side if desired.
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return fmt.Errorf("write default config: %w", err)
	}
	return nil
}

// Save writes cfg to path atomically (write to a temp file, then rename),
// so a reader never observes a partially-written config document. An empty
// path is a no-op, matching EnsureConfigFile's own empty-path handling.
func Save(path string, cfg Config) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
