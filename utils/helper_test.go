package utils

import "testing"

func TestParseFlag(t *testing.T) {
	truthy := []string{"1", "true", "TRUE", "yes", "Yes", "on", " on "}
	for _, v := range truthy {
		if !ParseFlag(v) {
			t.Fatalf("ParseFlag(%q) expected true", v)
		}
	}
	falsy := []string{"0", "false", "no", "off", "", "maybe"}
	for _, v := range falsy {
		if ParseFlag(v) {
			t.Fatalf("ParseFlag(%q) expected false", v)
		}
	}
}

func TestUniqueSlice(t *testing.T) {
	got := UniqueSlice([]int{3, 1, 3, 2, 1})
	if len(got) != 3 {
		t.Fatalf("expected 3 values, got %v", got)
	}
	// first occurrence order preserved
	if got[0] != 3 || got[1] != 1 || got[2] != 2 {
		t.Fatalf("order not preserved: %v", got)
	}
}
