// =============================================================================
// MAVLink Dialect Converter - Validate Command
// =============================================================================
//
// Defines the 'validate' command, which checks dialect files without writing
// any output. With no arguments it only loads and reports the configuration.
//
// COMMAND USAGE:
//   dialect2json validate [dialect.xml ...]
//
// EXIT BEHAVIOR:
//   Exit code 0 when every named dialect parses and passes validation;
//   non-zero otherwise, with one line per failing file on stdout.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mavforge/dialect2json/internal/dialect"
)

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate [dialect.xml ...]",
	Short: "Validate configuration and dialect files without converting",
	Long: `The validate command runs the parse and invariant-validation stages of the
converter without producing any output files. Use it to vet a dialect edit
or a configuration change before a sync run.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(args)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// runValidate checks the configuration and each named dialect file.
func runValidate(files []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("Configuration OK (output_dir=%s, pattern=%s)\n", cfg.OutputDir, cfg.Sync.Pattern)

	failed := 0
	for _, file := range files {
		d, err := dialect.Parse(file)
		if err == nil {
			err = d.Validate(file)
		}
		if err != nil {
			failed++
			fmt.Printf("  ✗ %s: %v\n", file, err)
			continue
		}
		fmt.Printf("  ✓ %s: %d messages, %d enums\n", file, len(d.Messages), len(d.Enums))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d dialect files failed validation", failed, len(files))
	}
	return nil
}
