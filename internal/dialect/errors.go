// =============================================================================
// MAVLink Dialect Converter - Error Taxonomy
// =============================================================================
//
// Three terminal error classes cover everything that can go wrong while
// turning a dialect file into the in-memory model:
//
//   ParseError      - the XML is not well-formed
//   SchemaError     - the XML is well-formed but structurally unexpected
//   ValidationError - a semantic invariant is violated (duplicate id/name)
//
// None of these are recovered internally. The caller reports them and exits
// non-zero; no output file is produced for a failed conversion.
//
// =============================================================================

package dialect

import "fmt"

// =============================================================================
// PARSE ERROR
// =============================================================================

// ParseError reports malformed XML, identifying the file and the line where
// the decoder gave up.
type ParseError struct {
	// File is the path of the input document.
	File string

	// Line is the 1-based line number of the syntax error, or 0 when the
	// decoder could not attribute one.
	Line int

	// Err is the underlying decoder error.
	Err error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: malformed XML: %v", e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: malformed XML: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// =============================================================================
// SCHEMA ERROR
// =============================================================================

// SchemaError reports a well-formed document that does not look like a
// MAVLink dialect definition: wrong root element, a message without an id,
// an entry value that is not a number, and so on.
type SchemaError struct {
	// File is the path of the input document.
	File string

	// Msg describes what was unexpected.
	Msg string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: unexpected document structure: %s", e.File, e.Msg)
}

// =============================================================================
// VALIDATION ERROR
// =============================================================================

// ValidationError reports a semantic invariant violation, naming the
// duplicated identifier so the offending definition can be found upstream.
type ValidationError struct {
	// File is the path of the input document.
	File string

	// Kind identifies the violated invariant, e.g. "message id".
	Kind string

	// Value is the duplicated identifier or name.
	Value string

	// First is the name of the definition that used the value first.
	First string
}

func (e *ValidationError) Error() string {
	if e.First != "" {
		return fmt.Sprintf("%s: duplicate %s %s (already used by %s)", e.File, e.Kind, e.Value, e.First)
	}
	return fmt.Sprintf("%s: duplicate %s %s", e.File, e.Kind, e.Value)
}
