package dialect

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateCleanDialect(t *testing.T) {
	d := &Dialect{
		Enums: []Enum{{Name: "MAV_STATE"}, {Name: "MAV_TYPE"}},
		Messages: []Message{
			{ID: 0, Name: "HEARTBEAT"},
			{ID: 1, Name: "SYS_STATUS"},
		},
	}
	if err := d.Validate("clean.xml"); err != nil {
		t.Fatalf("expected clean dialect to validate, got %v", err)
	}
}

func TestValidateDuplicateMessageID(t *testing.T) {
	d := &Dialect{
		Messages: []Message{
			{ID: 0, Name: "HEARTBEAT"},
			{ID: 0, Name: "SYS_STATUS"},
		},
	}
	err := d.Validate("dup.xml")

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Kind != "message id" || verr.Value != "0" {
		t.Fatalf("unexpected error detail: %+v", verr)
	}
	if !strings.Contains(verr.Error(), "HEARTBEAT") {
		t.Fatalf("error must name the first holder of the id: %v", verr)
	}
}

func TestValidateDuplicateMessageName(t *testing.T) {
	d := &Dialect{
		Messages: []Message{
			{ID: 0, Name: "HEARTBEAT"},
			{ID: 1, Name: "HEARTBEAT"},
		},
	}
	var verr *ValidationError
	if !errors.As(d.Validate("dup.xml"), &verr) {
		t.Fatal("expected ValidationError for duplicate message name")
	}
	if verr.Kind != "message name" || verr.Value != "HEARTBEAT" {
		t.Fatalf("unexpected error detail: %+v", verr)
	}
}

func TestValidateDuplicateEnumName(t *testing.T) {
	d := &Dialect{
		Enums: []Enum{{Name: "MAV_STATE"}, {Name: "MAV_STATE"}},
	}
	var verr *ValidationError
	if !errors.As(d.Validate("dup.xml"), &verr) {
		t.Fatal("expected ValidationError for duplicate enum name")
	}
	if verr.Kind != "enum name" || verr.Value != "MAV_STATE" {
		t.Fatalf("unexpected error detail: %+v", verr)
	}
}
