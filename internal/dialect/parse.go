// =============================================================================
// MAVLink Dialect Converter - XML Parser
// =============================================================================
//
// Single top-down walk over the XML document. encoding/xml does the tree
// traversal; the struct tags below act as the attribute allow-list. Anything
// the tags do not name (display hints, WIP markers, the <extensions> divider)
// is dropped rather than guessed at or renamed.
//
// PARSING PIPELINE:
//   1. Decode the document, requiring a <mavlink> root element
//   2. Map each recognized element onto the typed model, in document order
//   3. Parse numeric attributes (message id, entry value, version)
//
// Uniqueness invariants are checked separately; see validate.go.
//
// =============================================================================

package dialect

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// rootElement is the only accepted document root.
const rootElement = "mavlink"

// =============================================================================
// XML DOCUMENT SHAPE
// =============================================================================
// Intermediate decode targets. Numeric attributes are captured as strings so
// that number parsing failures surface as SchemaError with context instead of
// an opaque decoder error.

type xmlDialect struct {
	Version  string       `xml:"version"`
	Includes []string     `xml:"include"`
	Enums    []xmlEnum    `xml:"enums>enum"`
	Messages []xmlMessage `xml:"messages>message"`
}

type xmlEnum struct {
	Name        string     `xml:"name,attr"`
	Description string     `xml:"description"`
	Entries     []xmlEntry `xml:"entry"`
}

type xmlEntry struct {
	Value       string `xml:"value,attr"`
	Name        string `xml:"name,attr"`
	Description string `xml:"description"`
}

type xmlMessage struct {
	ID          string     `xml:"id,attr"`
	Name        string     `xml:"name,attr"`
	Description string     `xml:"description"`
	Fields      []xmlField `xml:"field"`
}

type xmlField struct {
	Name    string `xml:"name,attr"`
	Type    string `xml:"type,attr"`
	Enum    string `xml:"enum,attr"`
	Units   string `xml:"units,attr"`
	Default string `xml:"default,attr"`
	Text    string `xml:",chardata"`
}

// =============================================================================
// PARSING
// =============================================================================

// Parse reads and parses a dialect definition file.
//
// RETURNS:
//   - The parsed Dialect.
//   - A *ParseError, *SchemaError, or file I/O error.
func Parse(path string) (*Dialect, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dialect file: %w", err)
	}
	return ParseData(data, path)
}

// ParseData parses a dialect definition held in memory. The name is used
// only for error reporting.
func ParseData(data []byte, name string) (*Dialect, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	// Find the root element, skipping prolog, comments, and whitespace.
	var start xml.StartElement
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, &SchemaError{File: name, Msg: "document has no root element"}
		}
		if err != nil {
			return nil, parseError(name, err)
		}
		if se, ok := tok.(xml.StartElement); ok {
			start = se
			break
		}
	}

	if start.Name.Local != rootElement {
		return nil, &SchemaError{
			File: name,
			Msg:  fmt.Sprintf("unknown root element <%s>, expected <%s>", start.Name.Local, rootElement),
		}
	}

	var doc xmlDialect
	if err := dec.DecodeElement(&doc, &start); err != nil {
		return nil, parseError(name, err)
	}

	// Anything after the closing root tag makes the document malformed.
	// The decoder itself does not enforce a single root element.
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, parseError(name, err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return nil, &ParseError{File: name, Err: errors.New("content after document root")}
			}
		case xml.Comment, xml.ProcInst:
			// Trailing comments and processing instructions are harmless.
		default:
			return nil, &ParseError{File: name, Err: errors.New("content after document root")}
		}
	}

	return buildDialect(&doc, name)
}

// parseError wraps a decoder error, extracting the line number when the
// decoder recorded one.
func parseError(name string, err error) *ParseError {
	var syntax *xml.SyntaxError
	if errors.As(err, &syntax) {
		return &ParseError{File: name, Line: syntax.Line, Err: err}
	}
	return &ParseError{File: name, Err: err}
}

// =============================================================================
// MODEL CONSTRUCTION
// =============================================================================

// buildDialect maps the decoded document onto the typed model, parsing
// numeric attributes along the way. Collections are allocated even when
// empty so they serialize as [] rather than null.
func buildDialect(doc *xmlDialect, name string) (*Dialect, error) {
	d := &Dialect{
		Enums:    make([]Enum, 0, len(doc.Enums)),
		Messages: make([]Message, 0, len(doc.Messages)),
	}

	for _, inc := range doc.Includes {
		if inc = strings.TrimSpace(inc); inc != "" {
			d.Includes = append(d.Includes, inc)
		}
	}

	if s := strings.TrimSpace(doc.Version); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, &SchemaError{File: name, Msg: fmt.Sprintf("non-numeric protocol version %q", s)}
		}
		d.Version = &v
	}

	for _, e := range doc.Enums {
		enum, err := buildEnum(&e, name)
		if err != nil {
			return nil, err
		}
		d.Enums = append(d.Enums, enum)
	}

	for _, m := range doc.Messages {
		msg, err := buildMessage(&m, name)
		if err != nil {
			return nil, err
		}
		d.Messages = append(d.Messages, msg)
	}

	return d, nil
}

func buildEnum(e *xmlEnum, name string) (Enum, error) {
	if e.Name == "" {
		return Enum{}, &SchemaError{File: name, Msg: "enum is missing a name attribute"}
	}

	enum := Enum{
		Name:        e.Name,
		Description: optString(e.Description),
		Entries:     make([]Entry, 0, len(e.Entries)),
	}

	for _, en := range e.Entries {
		if en.Name == "" {
			return Enum{}, &SchemaError{File: name, Msg: fmt.Sprintf("enum %s has an entry without a name", e.Name)}
		}
		value, err := parseEntryValue(en.Value)
		if err != nil {
			return Enum{}, &SchemaError{
				File: name,
				Msg:  fmt.Sprintf("entry %s of enum %s has a non-numeric value %q", en.Name, e.Name, en.Value),
			}
		}
		enum.Entries = append(enum.Entries, Entry{
			Value:       value,
			Name:        en.Name,
			Description: optString(en.Description),
		})
	}

	return enum, nil
}

func buildMessage(m *xmlMessage, name string) (Message, error) {
	if m.Name == "" {
		return Message{}, &SchemaError{File: name, Msg: "message is missing a name attribute"}
	}
	id, err := strconv.Atoi(strings.TrimSpace(m.ID))
	if err != nil {
		return Message{}, &SchemaError{
			File: name,
			Msg:  fmt.Sprintf("message %s has a non-numeric id %q", m.Name, m.ID),
		}
	}

	msg := Message{
		ID:          id,
		Name:        m.Name,
		Description: optString(m.Description),
		Fields:      make([]Field, 0, len(m.Fields)),
	}

	for _, f := range m.Fields {
		if f.Name == "" || f.Type == "" {
			return Message{}, &SchemaError{
				File: name,
				Msg:  fmt.Sprintf("message %s has a field without a name or type", m.Name),
			}
		}
		msg.Fields = append(msg.Fields, Field{
			Name:        f.Name,
			Type:        f.Type,
			Enum:        optString(f.Enum),
			Units:       optString(f.Units),
			Description: optString(f.Text),
			Default:     optString(f.Default),
		})
	}

	return msg, nil
}

// =============================================================================
// ATTRIBUTE PARSING HELPERS
// =============================================================================

// parseEntryValue parses an enum entry value. Dialect files use decimal,
// hexadecimal ("0x4000"), and power notation ("2**20") for bitmask enums.
func parseEntryValue(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}

	if base, exp, ok := strings.Cut(s, "**"); ok {
		b, err := strconv.ParseUint(strings.TrimSpace(base), 10, 64)
		if err != nil {
			return 0, err
		}
		e, err := strconv.ParseUint(strings.TrimSpace(exp), 10, 64)
		if err != nil {
			return 0, err
		}
		if b != 2 || e > 63 {
			return 0, fmt.Errorf("unsupported power notation %q", s)
		}
		return 1 << e, nil
	}

	return strconv.ParseUint(s, 0, 64)
}

// optString trims description text and maps the empty string to nil, so
// absent optional attributes serialize as JSON null.
func optString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
