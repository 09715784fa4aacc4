// =============================================================================
// MAVLink Dialect Converter - Report Command
// =============================================================================
//
// Defines the 'report' command, which renders an XLSX summary workbook for a
// dialect: a Messages sheet and an Enums sheet. Intended for reviewing what
// an upstream dialect change touched without reading XML or JSON.
//
// COMMAND USAGE:
//   dialect2json report <input.xml> [flags]
//
// FLAGS:
//   -o, --output : Path of the workbook (default: <input>.xlsx)
//
// =============================================================================

package cmd

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mavforge/dialect2json/internal/dialect"
	"github.com/mavforge/dialect2json/internal/report"
)

// reportOutput is the workbook path. Empty derives it from the input name.
var reportOutput string

// reportCmd represents the 'report' command.
var reportCmd = &cobra.Command{
	Use:   "report <input.xml>",
	Short: "Write an XLSX summary workbook for a dialect",
	Args:  cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(args[0])
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(
		&reportOutput,
		"output",
		"o",
		"",
		"Path of the workbook (default: <input>.xlsx)",
	)
}

// runReport parses, validates, and renders the workbook for one dialect.
func runReport(inputPath string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	d, err := dialect.Parse(inputPath)
	if err != nil {
		return err
	}
	if err := d.Validate(inputPath); err != nil {
		return err
	}

	out := reportOutput
	if out == "" {
		out = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".xlsx"
	}

	if err := report.Write(d, out); err != nil {
		return err
	}

	log.Info().Str("input", inputPath).Str("output", out).Msg("wrote dialect report")
	return nil
}
