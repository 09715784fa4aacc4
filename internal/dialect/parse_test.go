package dialect

import (
	"errors"
	"testing"
)

const heartbeatDialect = `<?xml version="1.0"?>
<mavlink>
  <version>3</version>
  <include>minimal.xml</include>
  <enums>
    <enum name="MAV_STATE">
      <description>Overall system state.</description>
      <entry value="0" name="MAV_STATE_UNINIT">
        <description>Uninitialized system.</description>
      </entry>
      <entry value="0x10" name="MAV_STATE_FLAG_TEST"/>
      <entry value="2**6" name="MAV_STATE_FLAG_POWER"/>
    </enum>
  </enums>
  <messages>
    <message id="0" name="HEARTBEAT">
      <description>The heartbeat message.</description>
      <field type="uint8_t" name="type" enum="MAV_TYPE">Vehicle type.</field>
      <field type="uint8_t" name="autopilot"/>
      <field type="uint32_t" name="custom_mode" units="rad"/>
    </message>
    <message id="1" name="SYS_STATUS">
      <field type="uint16_t" name="load" default="0"/>
    </message>
  </messages>
</mavlink>
`

func TestParseHeartbeatDialect(t *testing.T) {
	d, err := ParseData([]byte(heartbeatDialect), "heartbeat.xml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if d.Version == nil || *d.Version != 3 {
		t.Fatalf("unexpected version: %v", d.Version)
	}
	if len(d.Includes) != 1 || d.Includes[0] != "minimal.xml" {
		t.Fatalf("unexpected includes: %v", d.Includes)
	}

	if len(d.Enums) != 1 {
		t.Fatalf("expected 1 enum, got %d", len(d.Enums))
	}
	enum := d.Enums[0]
	if enum.Name != "MAV_STATE" {
		t.Fatalf("unexpected enum name: %q", enum.Name)
	}
	if enum.Description == nil || *enum.Description != "Overall system state." {
		t.Fatalf("unexpected enum description: %v", enum.Description)
	}
	if len(enum.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(enum.Entries))
	}
	if enum.Entries[0].Value != 0 || enum.Entries[0].Name != "MAV_STATE_UNINIT" {
		t.Fatalf("unexpected first entry: %+v", enum.Entries[0])
	}
	if enum.Entries[1].Value != 0x10 {
		t.Fatalf("hex entry value not parsed: %+v", enum.Entries[1])
	}
	if enum.Entries[2].Value != 64 {
		t.Fatalf("power-notation entry value not parsed: %+v", enum.Entries[2])
	}
	if enum.Entries[1].Description != nil {
		t.Fatalf("expected nil description for entry without one")
	}

	if len(d.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(d.Messages))
	}
	hb := d.Messages[0]
	if hb.ID != 0 || hb.Name != "HEARTBEAT" {
		t.Fatalf("unexpected first message: %+v", hb)
	}
	if len(hb.Fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(hb.Fields))
	}

	// Declaration order must survive.
	wantOrder := []string{"type", "autopilot", "custom_mode"}
	for i, name := range wantOrder {
		if hb.Fields[i].Name != name {
			t.Fatalf("field %d: expected %q, got %q", i, name, hb.Fields[i].Name)
		}
	}

	first := hb.Fields[0]
	if first.Type != "uint8_t" {
		t.Fatalf("unexpected field type: %q", first.Type)
	}
	if first.Enum == nil || *first.Enum != "MAV_TYPE" {
		t.Fatalf("unexpected field enum: %v", first.Enum)
	}
	if first.Description == nil || *first.Description != "Vehicle type." {
		t.Fatalf("unexpected field description: %v", first.Description)
	}
	if first.Units != nil {
		t.Fatalf("expected nil units, got %q", *first.Units)
	}
	if d.Messages[0].Fields[2].Units == nil || *d.Messages[0].Fields[2].Units != "rad" {
		t.Fatalf("units attribute not captured")
	}
	if d.Messages[1].Fields[0].Default == nil || *d.Messages[1].Fields[0].Default != "0" {
		t.Fatalf("default attribute not captured")
	}
}

func TestParseEmptyDialect(t *testing.T) {
	d, err := ParseData([]byte(`<mavlink></mavlink>`), "empty.xml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d.Version != nil {
		t.Fatalf("expected nil version, got %v", *d.Version)
	}
	if d.Enums == nil || len(d.Enums) != 0 {
		t.Fatalf("enums must be an empty slice, got %#v", d.Enums)
	}
	if d.Messages == nil || len(d.Messages) != 0 {
		t.Fatalf("messages must be an empty slice, got %#v", d.Messages)
	}
}

func TestParseMalformedXML(t *testing.T) {
	inputs := []string{
		`<mavlink><messages><message id="0" name="A">`, // truncated
		`<mavlink></wrong>`,                            // mismatched close tag
		`<mavlink></mavlink><extra/>`,                  // trailing content
	}
	for _, input := range inputs {
		_, err := ParseData([]byte(input), "bad.xml")
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("input %q: expected ParseError, got %v", input, err)
		}
		if perr.File != "bad.xml" {
			t.Fatalf("ParseError must name the file, got %q", perr.File)
		}
	}
}

func TestParseUnknownRoot(t *testing.T) {
	_, err := ParseData([]byte(`<mavschema></mavschema>`), "other.xml")
	var serr *SchemaError
	if !errors.As(err, &serr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
}

func TestParseSchemaViolations(t *testing.T) {
	cases := map[string]string{
		"non-numeric message id": `<mavlink><messages><message id="abc" name="A"/></messages></mavlink>`,
		"message without name":   `<mavlink><messages><message id="1"/></messages></mavlink>`,
		"field without type":     `<mavlink><messages><message id="1" name="A"><field name="x"/></message></messages></mavlink>`,
		"enum without name":      `<mavlink><enums><enum/></enums></mavlink>`,
		"entry without value":    `<mavlink><enums><enum name="E"><entry name="E_A"/></enum></enums></mavlink>`,
		"non-numeric version":    `<mavlink><version>three</version></mavlink>`,
	}
	for label, input := range cases {
		_, err := ParseData([]byte(input), "bad.xml")
		var serr *SchemaError
		if !errors.As(err, &serr) {
			t.Fatalf("%s: expected SchemaError, got %v", label, err)
		}
	}
}

func TestParseEntryValueNotation(t *testing.T) {
	cases := map[string]uint64{
		"0":       0,
		"42":      42,
		"0x4000":  0x4000,
		"2**20":   1 << 20,
		" 7 ":     7,
		"2 ** 10": 1 << 10,
	}
	for input, want := range cases {
		got, err := parseEntryValue(input)
		if err != nil {
			t.Fatalf("parseEntryValue(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("parseEntryValue(%q) = %d, want %d", input, got, want)
		}
	}

	for _, input := range []string{"", "3**4", "2**64", "abc"} {
		if _, err := parseEntryValue(input); err == nil {
			t.Fatalf("parseEntryValue(%q): expected error", input)
		}
	}
}
