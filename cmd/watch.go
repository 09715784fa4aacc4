// =============================================================================
// MAVLink Dialect Converter - Watch Command
// =============================================================================
//
// Defines the 'watch' command: a filesystem watcher that re-converts dialect
// files as they change. Useful while editing a dialect locally, as a live
// alternative to re-running 'convert' by hand.
//
// COMMAND USAGE:
//   dialect2json watch <dir> [flags]
//
// FLAGS:
//   -o, --output-dir : Directory for the JSON mirrors (default from config)
//
// Each filesystem event triggers one independent converter invocation;
// conversion is idempotent, so duplicate events from editors are harmless.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/mavforge/dialect2json/internal/converter"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// watchOutputDir is the directory that receives the JSON mirrors.
var watchOutputDir string

// =============================================================================
// WATCH COMMAND DEFINITION
// =============================================================================

// watchCmd represents the 'watch' command.
var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Watch a directory and re-convert dialect files on change",
	Long: `The watch command watches a directory of XML dialect definitions and runs
the converter whenever a file is created or modified. It runs until
interrupted.`,
	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch(args[0])
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the watch command and its flags.
func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(
		&watchOutputDir,
		"output-dir",
		"o",
		"",
		"Directory for the JSON mirrors (default: output_dir from config)",
	)
}

// =============================================================================
// MAIN WATCH FUNCTION
// =============================================================================

// runWatch watches dir until the process is interrupted.
func runWatch(dir string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	outputDir := watchOutputDir
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	log.Info().Str("dir", dir).Str("output_dir", outputDir).Msg("watching for dialect changes")

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if !strings.EqualFold(filepath.Ext(event.Name), ".xml") {
				continue
			}

			base := strings.TrimSuffix(filepath.Base(event.Name), filepath.Ext(event.Name))
			out := filepath.Join(outputDir, base+".json")

			result := converter.New(event.Name, out, converter.Options{Pretty: cfg.Pretty}, log).Run()
			if result.Success {
				log.Info().Str("input", event.Name).Str("output", out).Msg("re-converted dialect")
			} else {
				log.Error().Err(result.Error).Str("input", event.Name).Msg("conversion failed")
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("watcher error")

		case <-stop:
			log.Info().Msg("shutting down watcher")
			return nil
		}
	}
}
