package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// validEnv sets the minimum required env vars for a valid config.
func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017/pollwise")
	t.Setenv("CONFIG_PATH", "")
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
mongo:
  uri: "mongodb://yaml-host:27017/pollwise"
  server_selection_timeout: "2s"

admin:
  panel_url: "https://admin.internal.example.com/panel.html"

log:
  level: "debug"
  format: "json"
`

func TestLoad_EnvOnly_Defaults(t *testing.T) {
	validEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}

	if cfg.Mongo.URI != "mongodb://localhost:27017/pollwise" {
		t.Errorf("unexpected URI: %q", cfg.Mongo.URI)
	}
	if cfg.Mongo.ServerSelectionTimeout != 5*time.Second {
		t.Errorf("server_selection_timeout default = %v, want 5s", cfg.Mongo.ServerSelectionTimeout)
	}
	if cfg.Admin.PanelURL != "https://instructor.pollwise.app/admin.html" {
		t.Errorf("panel_url default = %q", cfg.Admin.PanelURL)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("log defaults = %q/%q, want info/text", cfg.Log.Level, cfg.Log.Format)
	}
}

func TestLoad_MissingURI(t *testing.T) {
	t.Setenv("MONGODB_URI", "") // register restore, then drop the variable entirely
	os.Unsetenv("MONGODB_URI")
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	if err == nil {
		t.Fatal("Load should fail when MONGODB_URI is absent")
	}
	if cfg != nil {
		t.Error("config should be nil on failure")
	}
	if !strings.Contains(err.Error(), "MONGODB_URI") {
		t.Errorf("error should name the missing variable, got: %v", err)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("MONGODB_URI", "")
	os.Unsetenv("MONGODB_URI")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}

	if cfg.Mongo.URI != "mongodb://yaml-host:27017/pollwise" {
		t.Errorf("unexpected URI: %q", cfg.Mongo.URI)
	}
	if cfg.Mongo.ServerSelectionTimeout != 2*time.Second {
		t.Errorf("server_selection_timeout = %v, want 2s", cfg.Mongo.ServerSelectionTimeout)
	}
	if cfg.Admin.PanelURL != "https://admin.internal.example.com/panel.html" {
		t.Errorf("panel_url = %q", cfg.Admin.PanelURL)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("log = %q/%q, want debug/json", cfg.Log.Level, cfg.Log.Format)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("MONGODB_URI", "mongodb://env-host:27017/pollwise")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}

	if cfg.Mongo.URI != "mongodb://env-host:27017/pollwise" {
		t.Errorf("ENV should override YAML, got URI %q", cfg.Mongo.URI)
	}
}

func TestLoad_ExplicitPathMissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017/pollwise")

	if _, err := Load(); err == nil {
		t.Fatal("Load should fail when CONFIG_PATH points to a missing file")
	}
}

func TestValidate_Timeout(t *testing.T) {
	cfg := Config{
		Mongo: MongoConfig{URI: "mongodb://localhost:27017/pollwise"},
		Admin: AdminConfig{PanelURL: "https://example.com"},
	}

	if err := cfg.Validate(); err == nil {
		t.Error("zero server_selection_timeout should be rejected")
	}

	cfg.Mongo.ServerSelectionTimeout = 5 * time.Second
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}
