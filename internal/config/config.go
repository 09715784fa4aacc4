// =============================================================================
// MAVLink Dialect Converter - Configuration Module
// =============================================================================
//
// Loads the YAML application configuration. Every setting has a default, so
// `dialect2json convert` works with no configuration file at all; the sync
// job is the main consumer of the settings below.
//
// CONFIGURATION FILE (config.yaml):
//
//   output_dir: ./json
//   log_level: info
//   max_concurrency: 4
//   continue_on_error: true
//   sync:
//     repo_url: https://github.com/mavlink/mavlink.git
//     branch: master
//     checkout_dir: ./upstream
//     pattern: message_definitions/v1.0/*.xml
//     commit: false
//     commit_message: "Update dialect JSON mirrors ({count} files, {timestamp})"
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// OutputDir is the directory where generated JSON mirrors are placed.
	// Default: "./json"
	OutputDir string `yaml:"output_dir"`

	// ArchiveDir is where the previous JSON mirror of a file is moved
	// before being replaced. Empty disables archival.
	ArchiveDir string `yaml:"archive_dir"`

	// LogLevel controls logging verbosity: "debug", "info", "warn", "error".
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// Pretty indents JSON output files. Mirrors kept under version control
	// usually stay compact; enable this for human-facing output.
	Pretty bool `yaml:"pretty"`

	// MaxConcurrency is the number of files converted in parallel during a
	// sync run. Each conversion is independent, so this is a plain
	// throughput knob. Default: 4
	MaxConcurrency int `yaml:"max_concurrency"`

	// ContinueOnError keeps a sync run going when individual files fail to
	// convert. A pointer so that an absent setting can default to true.
	// Default: true
	ContinueOnError *bool `yaml:"continue_on_error"`

	// Sync configures the repository-sync job.
	Sync SyncConfig `yaml:"sync"`
}

// SyncConfig configures the scheduled repository-sync job.
type SyncConfig struct {
	// RepoURL is the upstream dialect source repository.
	// Default: the canonical MAVLink definitions repository.
	RepoURL string `yaml:"repo_url"`

	// Branch is the upstream branch to track. Default: "master"
	Branch string `yaml:"branch"`

	// CheckoutDir is where the upstream repository is cloned.
	// Default: "./upstream"
	CheckoutDir string `yaml:"checkout_dir"`

	// Pattern is the glob, relative to CheckoutDir, matching the dialect
	// files to convert. Default: "message_definitions/v1.0/*.xml"
	Pattern string `yaml:"pattern"`

	// Commit enables committing the refreshed mirrors in OutputDir after a
	// successful run. OutputDir must already be a git work tree.
	Commit bool `yaml:"commit"`

	// CommitMessage is the commit message template. Placeholders:
	//   {count}     - number of files converted
	//   {timestamp} - current timestamp (YYYY-MM-DD HH:MM:SS)
	CommitMessage string `yaml:"commit_message"`
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration file at path. A missing file is not an
// error; the defaults cover every setting.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./json"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = 4
	}
	if cfg.ContinueOnError == nil {
		t := true
		cfg.ContinueOnError = &t
	}
	if cfg.Sync.RepoURL == "" {
		cfg.Sync.RepoURL = "https://github.com/mavlink/mavlink.git"
	}
	if cfg.Sync.Branch == "" {
		cfg.Sync.Branch = "master"
	}
	if cfg.Sync.CheckoutDir == "" {
		cfg.Sync.CheckoutDir = "./upstream"
	}
	if cfg.Sync.Pattern == "" {
		cfg.Sync.Pattern = "message_definitions/v1.0/*.xml"
	}
	if cfg.Sync.CommitMessage == "" {
		cfg.Sync.CommitMessage = "Update dialect JSON mirrors ({count} files, {timestamp})"
	}
}
