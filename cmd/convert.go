// =============================================================================
// MAVLink Dialect Converter - Convert Command
// =============================================================================
//
// Defines the 'convert' command: one XML dialect file in, one JSON document
// out, to stdout or to a file.
//
// COMMAND USAGE:
//   dialect2json convert <input.xml> [flags]
//
// FLAGS:
//   -o, --output  : Write the JSON to a file (atomically) instead of stdout
//       --pretty  : Indent the JSON output
//
// EXIT BEHAVIOR:
//   Exit code 0 on success. Any parse, schema, or validation failure is
//   reported on stderr and exits non-zero with no output file left behind.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mavforge/dialect2json/internal/converter"
	"github.com/mavforge/dialect2json/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// convertOutput is the output file path. Empty means stdout.
var convertOutput string

// convertPretty indents the JSON output.
var convertPretty bool

// =============================================================================
// CONVERT COMMAND DEFINITION
// =============================================================================

// convertCmd represents the 'convert' command.
var convertCmd = &cobra.Command{
	Use:   "convert <input.xml>",
	Short: "Convert one XML dialect definition to JSON",
	Long: `The convert command reads a MAVLink dialect definition from an XML file,
builds its message/enum model, and serializes it as JSON.

Declaration order of messages, fields, enums, and entries is preserved as
array order. Converting the same input twice produces byte-identical output.

With --output the file is written atomically: the document is staged to a
temp file and renamed into place, so no partial or corrupt file is ever
observable, even when the conversion fails.`,
	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(args[0])
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the convert command and its flags.
func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(
		&convertOutput,
		"output",
		"o",
		"",
		"Write JSON to this file instead of stdout",
	)

	convertCmd.Flags().BoolVar(
		&convertPretty,
		"pretty",
		false,
		"Indent the JSON output",
	)
}

// =============================================================================
// MAIN CONVERSION FUNCTION
// =============================================================================

// runConvert converts a single dialect file.
func runConvert(inputPath string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	pretty := convertPretty || cfg.Pretty
	data, err := converter.Convert(inputPath, converter.Options{Pretty: pretty})
	if err != nil {
		return err
	}

	if convertOutput == "" {
		// The marshaled document already ends with a newline.
		fmt.Print(string(data))
		return nil
	}

	if err := utils.WriteFileAtomic(convertOutput, data, 0644); err != nil {
		return err
	}
	log.Info().Str("input", inputPath).Str("output", convertOutput).Msg("wrote dialect mirror")
	return nil
}
