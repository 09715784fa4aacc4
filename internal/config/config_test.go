package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.OutputDir != "./json" {
		t.Fatalf("unexpected output dir: %q", cfg.OutputDir)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("unexpected log level: %q", cfg.LogLevel)
	}
	if cfg.MaxConcurrency != 4 {
		t.Fatalf("unexpected max concurrency: %d", cfg.MaxConcurrency)
	}
	if cfg.ContinueOnError == nil || !*cfg.ContinueOnError {
		t.Fatal("continue_on_error must default to true")
	}
	if cfg.Sync.Branch != "master" {
		t.Fatalf("unexpected branch: %q", cfg.Sync.Branch)
	}
	if cfg.Sync.Pattern != "message_definitions/v1.0/*.xml" {
		t.Fatalf("unexpected pattern: %q", cfg.Sync.Pattern)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
output_dir: /srv/mirror/json
log_level: debug
pretty: true
max_concurrency: 8
continue_on_error: false
sync:
  repo_url: https://example.com/dialects.git
  branch: main
  checkout_dir: /srv/mirror/upstream
  pattern: "defs/*.xml"
  commit: true
  commit_message: "mirror refresh {timestamp}"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.OutputDir != "/srv/mirror/json" {
		t.Fatalf("unexpected output dir: %q", cfg.OutputDir)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("unexpected log level: %q", cfg.LogLevel)
	}
	if !cfg.Pretty {
		t.Fatal("pretty not honored")
	}
	if cfg.MaxConcurrency != 8 {
		t.Fatalf("unexpected max concurrency: %d", cfg.MaxConcurrency)
	}
	if cfg.ContinueOnError == nil || *cfg.ContinueOnError {
		t.Fatal("explicit continue_on_error: false must be preserved")
	}
	if cfg.Sync.RepoURL != "https://example.com/dialects.git" {
		t.Fatalf("unexpected repo url: %q", cfg.Sync.RepoURL)
	}
	if cfg.Sync.Branch != "main" {
		t.Fatalf("unexpected branch: %q", cfg.Sync.Branch)
	}
	if !cfg.Sync.Commit {
		t.Fatal("commit not honored")
	}
	if cfg.Sync.CommitMessage != "mirror refresh {timestamp}" {
		t.Fatalf("unexpected commit message: %q", cfg.Sync.CommitMessage)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("output_dir: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}
