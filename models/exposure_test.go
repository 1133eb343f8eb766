package models

import "testing"

func TestRetainLastN(t *testing.T) {
	pairs := []exposurePair{
		{InterlinkageId: 1, AsOfDate: NewDate(2026, 3, 31)},
		{InterlinkageId: 1, AsOfDate: NewDate(2026, 2, 28)},
		{InterlinkageId: 1, AsOfDate: NewDate(2026, 1, 31)},
		{InterlinkageId: 2, AsOfDate: NewDate(2026, 3, 31)},
	}

	retained := retainLastN(pairs, 2)
	if len(retained) != 3 {
		t.Fatalf("expected 3 pairs, got %d", len(retained))
	}
	// input order is (interlinkage_id, as_of_date desc); the two most
	// recent dates of interlinkage 1 survive
	if retained[0].AsOfDate.String() != "2026-03-31" || retained[1].AsOfDate.String() != "2026-02-28" {
		t.Fatalf("wrong dates retained for interlinkage 1: %s, %s", retained[0].AsOfDate, retained[1].AsOfDate)
	}
	if retained[2].InterlinkageId != 2 {
		t.Fatalf("interlinkage 2 missing: %+v", retained[2])
	}
}

func TestRetainLastN_FewerThanN(t *testing.T) {
	pairs := []exposurePair{
		{InterlinkageId: 7, AsOfDate: NewDate(2026, 1, 31)},
	}
	retained := retainLastN(pairs, 12)
	if len(retained) != 1 {
		t.Fatalf("expected all pairs retained, got %d", len(retained))
	}
}

func TestRetainLastN_Empty(t *testing.T) {
	if got := retainLastN(nil, 5); len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

func TestValidExposuresMode(t *testing.T) {
	for _, mode := range []string{"none", "latest", "last_n"} {
		if !ValidExposuresMode(mode) {
			t.Fatalf("%q must be valid", mode)
		}
	}
	if ValidExposuresMode("eventually") {
		t.Fatal("unknown mode accepted")
	}
}
