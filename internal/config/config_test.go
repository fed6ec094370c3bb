package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, want nil", err)
	}
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") = %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load(\"\") = %+v, want Default()", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("Load(missing file) = nil error, want error")
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	body := `{"server":{"listen_addr":"0.0.0.0:7000"}}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.ListenAddr != "0.0.0.0:7000" {
		t.Errorf("Server.ListenAddr = %q, want 0.0.0.0:7000", cfg.Server.ListenAddr)
	}
	if cfg.Admin.ListenAddr != Default().Admin.ListenAddr {
		t.Errorf("Admin.ListenAddr = %q, want untouched default", cfg.Admin.ListenAddr)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info (backfilled)", cfg.Log.Level)
	}
}

func TestLoadUnparsableFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte("not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load(invalid json) = nil error, want error")
	}
}

func TestValidateRejectsEmptyServerAddr(t *testing.T) {
	cfg := Default()
	cfg.Server.ListenAddr = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() with empty Server.ListenAddr = nil, want error")
	}
}

func TestValidateRejectsAdminEnabledWithoutAddr(t *testing.T) {
	cfg := Default()
	cfg.Admin.Enabled = true
	cfg.Admin.ListenAddr = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() with admin enabled but no addr = nil, want error")
	}
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() with bad log level = nil, want error")
	}
}

func TestEnsureConfigFileWritesDefaultOnce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.json")

	if err := EnsureConfigFile(path); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Fatalf("bootstrapped config = %+v, want Default()", cfg)
	}

	if err := os.WriteFile(path, []byte(`{"server":{"listen_addr":"1.2.3.4:1"}}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := EnsureConfigFile(path); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.ListenAddr != "1.2.3.4:1" {
		t.Fatal("EnsureConfigFile overwrote an existing config file")
	}
}

func TestEnsureConfigFileEmptyPathNoop(t *testing.T) {
	if err := EnsureConfigFile(""); err != nil {
		t.Fatalf("EnsureConfigFile(\"\") = %v, want nil", err)
	}
}

func TestSaveWritesRoundTrippableConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.json")

	cfg := Default()
	cfg.Server.ListenAddr = "0.0.0.0:7001"
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != cfg {
		t.Fatalf("Load(Save(cfg)) = %+v, want %+v", got, cfg)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("Save left a temp file behind: stat err = %v", err)
	}
}

func TestSaveEmptyPathNoop(t *testing.T) {
	if err := Save("", Default()); err != nil {
		t.Fatalf("Save(\"\", ...) = %v, want nil", err)
	}
}
