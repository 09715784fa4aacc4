// =============================================================================
// MAVLink Dialect Converter - Main Entry Point
// =============================================================================
//
// Main entry point for the dialect2json CLI. It initializes the Cobra CLI
// framework and delegates command execution to the cmd package.
//
// USAGE:
//   dialect2json convert <input.xml>  - Convert one dialect file to JSON
//   dialect2json sync                 - Refresh the JSON mirror from upstream
//   dialect2json watch <dir>          - Re-convert dialect files on change
//   dialect2json report <input.xml>   - Write an XLSX summary workbook
//   dialect2json validate [files...]  - Validate without converting
//   dialect2json version              - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : Core conversion and sync logic (not for external import)
//   - pkg/       : Shared file-handling utilities
//
// =============================================================================

package main

import (
	"github.com/mavforge/dialect2json/cmd"
)

func main() {
	cmd.Execute()
}
