package models

import (
	"encoding/json"
	"testing"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2026, 9, 1)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2026-09-01"` {
		t.Fatalf("unexpected encoding %s", data)
	}

	var decoded Date
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !decoded.Equal(d.Time) {
		t.Fatalf("round trip changed the date: %s", decoded)
	}
}

func TestDateUnmarshalRejectsBadInput(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"01/09/2026"`), &d); err == nil {
		t.Fatal("expected error for non-ISO date")
	}
	if err := json.Unmarshal([]byte(`20260901`), &d); err == nil {
		t.Fatal("expected error for numeric date")
	}
}

func TestDateDaysFrom(t *testing.T) {
	today := NewDate(2026, 9, 1)
	cases := []struct {
		date     Date
		expected int
	}{
		{NewDate(2026, 9, 1), 0},
		{NewDate(2026, 9, 11), 10},
		{NewDate(2026, 8, 27), -5},
		{NewDate(2027, 9, 1), 365},
	}
	for _, tc := range cases {
		if got := tc.date.DaysFrom(today); got != tc.expected {
			t.Fatalf("DaysFrom(%s) expected %d, got %d", tc.date, tc.expected, got)
		}
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	if err := d.Scan("2026-02-28"); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	if d.String() != "2026-02-28" {
		t.Fatalf("unexpected value %s", d)
	}
	if err := d.Scan([]byte("2026-03-31")); err != nil {
		t.Fatalf("scan bytes: %v", err)
	}
	if d.String() != "2026-03-31" {
		t.Fatalf("unexpected value %s", d)
	}
	if err := d.Scan(42); err == nil {
		t.Fatal("expected error for unsupported type")
	}
}

func TestValidPovKind(t *testing.T) {
	for _, kind := range []string{"project", "entity", "interlinkage"} {
		if !ValidPovKind(kind) {
			t.Fatalf("%q must be valid", kind)
		}
	}
	if ValidPovKind("portfolio") {
		t.Fatal("unknown pov kind accepted")
	}
}

func TestPovEntityName(t *testing.T) {
	cases := map[string]string{
		PovKindProject:      "project",
		PovKindEntity:       "legal_entity",
		PovKindInterlinkage: "interlinkage",
	}
	for kind, expected := range cases {
		if got := PovEntityName(kind); got != expected {
			t.Fatalf("PovEntityName(%s) expected %q, got %q", kind, expected, got)
		}
	}
}
