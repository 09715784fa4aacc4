// =============================================================================
// MAVLink Dialect Converter - Converter Module
// =============================================================================
//
// Core conversion logic: one XML dialect file in, one JSON document out.
//
// CONVERSION PIPELINE:
//   1. Parse the XML dialect definition
//   2. Validate the uniqueness invariants
//   3. Marshal the model to canonical JSON
//   4. Write the output file atomically (or hand the bytes to the caller)
//
// Every invocation is fully independent with no shared state, so the sync
// orchestrator can run many converters concurrently without synchronization.
// A failed conversion never leaves a partial output file behind.
//
// =============================================================================

package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mavforge/dialect2json/internal/dialect"
	"github.com/mavforge/dialect2json/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of converting a single file.
type Result struct {
	// InputPath is the XML file that was converted.
	InputPath string

	// OutputPath is the JSON file that was written. Empty when the
	// conversion failed or the output went to a stream.
	OutputPath string

	// Success indicates whether the conversion completed.
	Success bool

	// Error holds the failure when Success is false.
	Error error

	// Stats contains conversion statistics.
	Stats Stats
}

// Stats contains statistics about a single conversion.
type Stats struct {
	// Messages is the number of message definitions converted.
	Messages int

	// Enums is the number of enum definitions converted.
	Enums int

	// Bytes is the size of the generated JSON document.
	Bytes int

	// Duration is the time taken for the full pipeline.
	Duration time.Duration
}

// Options controls output rendering.
type Options struct {
	// Pretty indents the JSON output for human consumption. The default is
	// the compact canonical form.
	Pretty bool
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Converter converts one XML dialect file to a JSON file.
type Converter struct {
	// inputPath is the XML dialect definition to read.
	inputPath string

	// outputPath is the JSON file to write.
	outputPath string

	// opts controls output rendering.
	opts Options

	// log receives per-step debug logging.
	log zerolog.Logger
}

// New creates a Converter for a single input/output pair.
func New(inputPath, outputPath string, opts Options, log zerolog.Logger) *Converter {
	return &Converter{
		inputPath:  inputPath,
		outputPath: outputPath,
		opts:       opts,
		log:        log.With().Str("input", inputPath).Logger(),
	}
}

// =============================================================================
// MAIN CONVERSION FUNCTION
// =============================================================================

// Run executes the conversion pipeline for the file pair.
func (c *Converter) Run() Result {
	start := time.Now()
	result := Result{InputPath: c.inputPath}

	d, err := dialect.Parse(c.inputPath)
	if err != nil {
		result.Error = err
		return result
	}
	if err := d.Validate(c.inputPath); err != nil {
		result.Error = err
		return result
	}

	data, err := Marshal(d, c.opts)
	if err != nil {
		result.Error = err
		return result
	}

	if err := utils.WriteFileAtomic(c.outputPath, data, 0644); err != nil {
		result.Error = fmt.Errorf("failed to write %s: %w", c.outputPath, err)
		return result
	}

	result.OutputPath = c.outputPath
	result.Success = true
	result.Stats.Messages = len(d.Messages)
	result.Stats.Enums = len(d.Enums)
	result.Stats.Bytes = len(data)
	result.Stats.Duration = time.Since(start)
	c.log.Debug().
		Int("messages", result.Stats.Messages).
		Int("enums", result.Stats.Enums).
		Int("bytes", result.Stats.Bytes).
		Dur("elapsed", result.Stats.Duration).
		Str("output", c.outputPath).
		Msg("converted dialect")

	return result
}

// =============================================================================
// PURE CONVERSION
// =============================================================================

// Convert runs parse, validate, and marshal for one file and returns the
// finished JSON document. Nothing is written to disk.
func Convert(inputPath string, opts Options) ([]byte, error) {
	d, err := dialect.Parse(inputPath)
	if err != nil {
		return nil, err
	}
	if err := d.Validate(inputPath); err != nil {
		return nil, err
	}
	return Marshal(d, opts)
}

// Marshal serializes a dialect to its JSON document. The document ends with
// a newline so mirror files diff cleanly.
func Marshal(d *dialect.Dialect, opts Options) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if opts.Pretty {
		data, err = json.MarshalIndent(d, "", "  ")
	} else {
		data, err = json.Marshal(d)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal dialect: %w", err)
	}
	return append(data, '\n'), nil
}
