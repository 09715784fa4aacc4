// =============================================================================
// MAVLink Dialect Converter - Dialect Data Model
// =============================================================================
//
// This package contains the in-memory representation of a MAVLink dialect
// definition and the XML parser that builds it. The model is constructed once
// from the parsed XML and serialized once; nothing mutates it afterwards.
//
// JSON SCHEMA:
//   The json struct tags below define the fixed output schema:
//
//   {
//     "version":  int|null,
//     "enums":    [ { "name", "entries": [ { "value", "name", "description" } ] } ],
//     "messages": [ { "id", "name", "description",
//                     "fields": [ { "name", "type", "enum", "units", "description" } ] } ]
//   }
//
//   Ordered collections are arrays, never objects, so declaration order in
//   the source XML survives every JSON consumer.
//
// =============================================================================

package dialect

// =============================================================================
// DIALECT
// =============================================================================

// Dialect is the root entity of a parsed dialect definition.
type Dialect struct {
	// Version is the protocol version declared by the <version> element.
	// Nil when the dialect does not declare one.
	Version *int `json:"version"`

	// Includes lists the file names referenced by <include> elements.
	// The references are recorded verbatim and never resolved; a dialect
	// that pulls shared definitions from another file is converted as-is.
	Includes []string `json:"includes,omitempty"`

	// Enums holds the enum definitions in declaration order.
	Enums []Enum `json:"enums"`

	// Messages holds the message definitions in declaration order.
	Messages []Message `json:"messages"`
}

// =============================================================================
// MESSAGE
// =============================================================================

// Message is a telemetry record definition with an ordered field list.
// Field order defines the wire layout in the source protocol and is
// preserved end-to-end.
type Message struct {
	// ID is the numeric message identifier, unique within a dialect.
	ID int `json:"id"`

	// Name is the message name, unique within a dialect.
	Name string `json:"name"`

	// Description is the optional free-text description.
	Description *string `json:"description"`

	// Fields holds the field definitions in declaration order.
	Fields []Field `json:"fields"`
}

// Field is a single typed slot within a message.
type Field struct {
	// Name is the field name.
	Name string `json:"name"`

	// Type is the declared primitive or array type, e.g. "uint8_t" or
	// "float[4]". The type string is carried through unmodified.
	Type string `json:"type"`

	// Enum optionally names the enum constraining this field's values.
	Enum *string `json:"enum"`

	// Units optionally names the physical units, e.g. "m/s".
	Units *string `json:"units"`

	// Description is the optional free-text description.
	Description *string `json:"description"`

	// Default is the optional default value. Omitted from the JSON output
	// when the source does not declare one.
	Default *string `json:"default,omitempty"`
}

// =============================================================================
// ENUM
// =============================================================================

// Enum is a named set of labeled numeric values.
type Enum struct {
	// Name is the enum name, unique within a dialect.
	Name string `json:"name"`

	// Description is the optional free-text description. Omitted from the
	// JSON output when absent.
	Description *string `json:"description,omitempty"`

	// Entries holds the entry definitions in declaration order.
	Entries []Entry `json:"entries"`
}

// Entry is one labeled numeric value within an enum definition.
type Entry struct {
	// Value is the numeric value of the entry. Bitmask enums use the full
	// unsigned 64-bit range.
	Value uint64 `json:"value"`

	// Name is the entry name.
	Name string `json:"name"`

	// Description is the optional free-text description.
	Description *string `json:"description"`
}
