// =============================================================================
// MAVLink Dialect Converter - Version Command
// =============================================================================
//
// Defines the 'version' command, which displays the application version and
// build information.
//
// COMMAND USAGE:
//   dialect2json version
//
// =============================================================================

package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// =============================================================================
// VERSION INFORMATION
// =============================================================================
// Set at build time using ldflags, e.g.:
//   go build -ldflags "-X 'cmd.Version=1.2.0' -X 'cmd.BuildDate=2026-08-23'"

// Version is the application version.
var Version = "1.0.0"

// BuildDate is the date the application was built.
var BuildDate = "unknown"

// versionCmd represents the 'version' command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the application version",
	Long:  `Display the application version, build date, and Go runtime version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("MAVLink Dialect Converter")
		fmt.Printf("Version:    %s\n", Version)
		fmt.Printf("Build Date: %s\n", BuildDate)
		fmt.Printf("Go Version: %s\n", runtime.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
