// =============================================================================
// MAVLink Dialect Converter - Invariant Validation
// =============================================================================
//
// Semantic checks that a well-formed, schema-conforming dialect must still
// pass before conversion:
//   - message ids are unique within the dialect
//   - message names are unique within the dialect
//   - enum names are unique within the dialect
//
// The first violation found aborts the conversion; nothing is written.
//
// =============================================================================

package dialect

import "strconv"

// Validate checks the uniqueness invariants of the dialect. The file name is
// used only for error reporting.
//
// RETURNS:
//   - nil when every invariant holds.
//   - A *ValidationError naming the first duplicate found.
func (d *Dialect) Validate(file string) error {
	ids := make(map[int]string, len(d.Messages))
	names := make(map[string]bool, len(d.Messages))

	for _, m := range d.Messages {
		if first, ok := ids[m.ID]; ok {
			return &ValidationError{
				File:  file,
				Kind:  "message id",
				Value: strconv.Itoa(m.ID),
				First: first,
			}
		}
		ids[m.ID] = m.Name

		if names[m.Name] {
			return &ValidationError{File: file, Kind: "message name", Value: m.Name}
		}
		names[m.Name] = true
	}

	enums := make(map[string]bool, len(d.Enums))
	for _, e := range d.Enums {
		if enums[e.Name] {
			return &ValidationError{File: file, Kind: "enum name", Value: e.Name}
		}
		enums[e.Name] = true
	}

	return nil
}
