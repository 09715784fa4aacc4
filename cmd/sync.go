// =============================================================================
// MAVLink Dialect Converter - Sync Command
// =============================================================================
//
// Defines the 'sync' command, the entry point for the scheduled automation
// job that keeps the JSON mirror in step with the upstream XML definitions.
//
// COMMAND USAGE:
//   dialect2json sync [flags]
//
// FLAGS:
//   --dry-run : Convert without committing, regardless of the commit setting
//
// SYNC PIPELINE:
//   1. Load configuration
//   2. Clone or fast-forward the upstream dialect repository
//   3. Discover XML files matching the configured glob
//   4. Convert each file concurrently (one goroutine per file)
//   5. Print a summary; optionally commit the refreshed mirrors
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mavforge/dialect2json/internal/syncer"
	"github.com/mavforge/dialect2json/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// syncDryRun disables committing for this run.
var syncDryRun bool

// =============================================================================
// SYNC COMMAND DEFINITION
// =============================================================================

// syncCmd represents the 'sync' command.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Refresh the JSON mirror from the upstream dialect repository",
	Long: `The sync command fetches the upstream dialect source repository, discovers
XML files matching the configured glob pattern, converts each one, and writes
the JSON mirrors to the output directory.

Each file is converted independently; with continue_on_error (the default),
a failure in one dialect does not stop the others, and the run still commits
the mirrors that did convert.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync()
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the sync command and its flags.
func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().BoolVar(
		&syncDryRun,
		"dry-run",
		false,
		"Convert without committing the refreshed mirrors",
	)
}

// =============================================================================
// MAIN SYNC FUNCTION
// =============================================================================

// runSync executes one sync run and prints the summary.
func runSync() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	if syncDryRun {
		cfg.Sync.Commit = false
	}

	if err := utils.EnsureDirectories(cfg.OutputDir); err != nil {
		return err
	}

	fmt.Println("=== MAVLink Dialect Sync ===")
	summary, runErr := syncer.New(cfg, log).Run()

	for _, result := range summary.Results {
		if result.Success {
			fmt.Printf("  ✓ %s -> %s\n", filepath.Base(result.InputPath), result.OutputPath)
		} else {
			fmt.Printf("  ✗ %s: %v\n", filepath.Base(result.InputPath), result.Error)
		}
	}

	fmt.Println("\n=== Sync Complete ===")
	fmt.Printf("Total files:     %d\n", summary.Total)
	fmt.Printf("Successful:      %d\n", summary.Succeeded)
	fmt.Printf("Errors:          %d\n", summary.Failed)
	fmt.Printf("Committed:       %t\n", summary.Committed)
	fmt.Printf("Time elapsed:    %s\n", summary.Elapsed)

	return runErr
}
