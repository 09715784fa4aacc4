// =============================================================================
// MAVLink Dialect Converter - Root Command
// =============================================================================
//
// Defines the root command for the Cobra CLI.
//
// COBRA CLI STRUCTURE:
//   rootCmd (dialect2json)
//   ├── convertCmd  (dialect2json convert)
//   ├── syncCmd     (dialect2json sync)
//   ├── watchCmd    (dialect2json watch)
//   ├── reportCmd   (dialect2json report)
//   ├── validateCmd (dialect2json validate)
//   └── versionCmd  (dialect2json version)
//
// The root command owns the global flags (--config, --verbose) and the
// logger construction shared by every subcommand. Diagnostics go to stderr
// through zerolog; conversion output and summaries stay on stdout.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mavforge/dialect2json/internal/config"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// Overridden with the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "dialect2json",
	Short: "MAVLink Dialect Converter - Mirror XML dialect definitions as JSON",

	Long: `dialect2json converts MAVLink dialect definitions (XML documents describing
a set of telemetry message schemas) into equivalent JSON documents, and keeps
a JSON mirror of the upstream dialect repository in sync.

Key Features:
  - One-shot conversion of a single dialect file to stdout or a file
  - Scheduled repository sync: clone upstream, convert every dialect, commit
  - Watch mode that re-converts dialect files as they change
  - XLSX summary reports for reviewing dialect contents
  - Atomic output writes: a failed conversion never leaves a partial file

Example Usage:
  dialect2json convert common.xml             # JSON on stdout
  dialect2json convert common.xml -o common.json
  dialect2json sync --config sync.yaml        # refresh the whole mirror
  dialect2json watch ./message_definitions`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once from main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// SHARED HELPERS
// =============================================================================

// loadConfig loads the configuration file named by --config. A missing file
// yields the built-in defaults.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the CLI logger. --verbose forces debug level regardless
// of the configured log_level.
func newLogger(cfg *config.Config) zerolog.Logger {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		level = parsed
	}
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (default is config.yaml)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
