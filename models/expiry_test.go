package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestBuildBucketDefs_DefaultEdges(t *testing.T) {
	defs := buildBucketDefs(defaultBucketEdges, true)

	expected := []string{"Overdue", "0-0", "1-30", "31-90", "91-180", "181-365", ">365"}
	if len(defs) != len(expected) {
		t.Fatalf("expected %d buckets, got %d", len(expected), len(defs))
	}
	for i, label := range expected {
		if defs[i].Label != label {
			t.Fatalf("bucket %d: expected label %q, got %q", i, label, defs[i].Label)
		}
	}

	if defs[0].FromDays != nil || defs[0].ToDays == nil || *defs[0].ToDays != -1 {
		t.Fatalf("Overdue must be open below and end at -1, got %+v", defs[0])
	}
	last := defs[len(defs)-1]
	if last.FromDays == nil || *last.FromDays != 366 || last.ToDays != nil {
		t.Fatalf(">365 must start at 366 and be open above, got %+v", last)
	}
}

func TestBuildBucketDefs_WithoutOverdue(t *testing.T) {
	defs := buildBucketDefs([]int{0, 30}, false)
	expected := []string{"0-0", "1-30", ">30"}
	if len(defs) != len(expected) {
		t.Fatalf("expected %d buckets, got %d", len(expected), len(defs))
	}
	for i, label := range expected {
		if defs[i].Label != label {
			t.Fatalf("bucket %d: expected label %q, got %q", i, label, defs[i].Label)
		}
	}
}

func TestBuildBucketDefs_DedupesAndSorts(t *testing.T) {
	defs := buildBucketDefs([]int{90, 30, 30, 0}, false)
	expected := []string{"0-0", "1-30", "31-90", ">90"}
	if len(defs) != len(expected) {
		t.Fatalf("expected %d buckets, got %d", len(expected), len(defs))
	}
	for i, label := range expected {
		if defs[i].Label != label {
			t.Fatalf("bucket %d: expected label %q, got %q", i, label, defs[i].Label)
		}
	}
}

func TestBuildBucketDefs_EmptyEdges(t *testing.T) {
	defs := buildBucketDefs(nil, true)
	if len(defs) != 1 || defs[0].Label != "Overdue" {
		t.Fatalf("expected only the Overdue bucket, got %+v", defs)
	}
}

func TestAssignBucket(t *testing.T) {
	defs := buildBucketDefs(defaultBucketEdges, true)

	cases := []struct {
		days     int
		expected string
	}{
		{-5, "Overdue"},
		{-1, "Overdue"},
		{0, "0-0"},
		{1, "1-30"},
		{10, "1-30"},
		{30, "1-30"},
		{31, "31-90"},
		{180, "91-180"},
		{365, "181-365"},
		{366, ">365"},
		{4000, ">365"},
	}
	for _, tc := range cases {
		if got := assignBucket(tc.days, defs); got != tc.expected {
			t.Fatalf("assignBucket(%d) expected %q, got %q", tc.days, tc.expected, got)
		}
	}
}

func TestAssignBucket_OutsideWindow(t *testing.T) {
	defs := buildBucketDefs([]int{0, 30}, false)
	if got := assignBucket(-3, defs); got != outsideWindowLabel {
		t.Fatalf("negative days without Overdue must fall outside, got %q", got)
	}
}

func TestAggregateBuckets(t *testing.T) {
	defs := buildBucketDefs(defaultBucketEdges, true)

	items := []ExpiryItem{
		{ID: 1, CurrencyCode: "EUR", NotionalAmount: decimal.NewFromInt(100), DaysToMaturity: 10, Bucket: "1-30"},
		{ID: 2, CurrencyCode: "EUR", NotionalAmount: decimal.NewFromInt(50), DaysToMaturity: -5, Bucket: "Overdue"},
		{ID: 3, CurrencyCode: "USD", NotionalAmount: decimal.NewFromFloat(12.345), DaysToMaturity: 12, Bucket: "1-30"},
	}
	buckets := aggregateBuckets(items, defs)

	if len(buckets) != len(defs) {
		t.Fatalf("expected %d buckets, got %d", len(defs), len(buckets))
	}

	byLabel := map[string]ExpiryBucket{}
	totalCount := 0
	for _, b := range buckets {
		byLabel[b.Label] = b
		totalCount += b.Count
	}
	if totalCount != len(items) {
		t.Fatalf("bucket counts must sum to item count: %d != %d", totalCount, len(items))
	}

	overdue := byLabel["Overdue"]
	if overdue.Count != 1 || len(overdue.TotalNotional) != 1 {
		t.Fatalf("unexpected Overdue bucket: %+v", overdue)
	}
	if overdue.TotalNotional[0].CurrencyCode != "EUR" || overdue.TotalNotional[0].Amount != "50.00" {
		t.Fatalf("unexpected Overdue total: %+v", overdue.TotalNotional[0])
	}

	near := byLabel["1-30"]
	if near.Count != 2 || len(near.TotalNotional) != 2 {
		t.Fatalf("unexpected 1-30 bucket: %+v", near)
	}
	// totals sorted by currency code
	if near.TotalNotional[0].CurrencyCode != "EUR" || near.TotalNotional[0].Amount != "100.00" {
		t.Fatalf("unexpected EUR total: %+v", near.TotalNotional[0])
	}
	if near.TotalNotional[1].CurrencyCode != "USD" || near.TotalNotional[1].Amount != "12.35" {
		t.Fatalf("unexpected USD total: %+v", near.TotalNotional[1])
	}

	empty := byLabel["91-180"]
	if empty.Count != 0 || len(empty.TotalNotional) != 0 {
		t.Fatalf("empty ranges must still be reported with count 0: %+v", empty)
	}
}

func TestAggregateBuckets_MissingCurrency(t *testing.T) {
	defs := buildBucketDefs([]int{0, 30}, false)
	items := []ExpiryItem{
		{ID: 1, CurrencyCode: "", NotionalAmount: decimal.NewFromInt(7), Bucket: "1-30"},
	}
	buckets := aggregateBuckets(items, defs)
	for _, b := range buckets {
		if b.Label != "1-30" {
			continue
		}
		if len(b.TotalNotional) != 1 || b.TotalNotional[0].CurrencyCode != missingCurrencyLabel {
			t.Fatalf("missing currency must aggregate under %q: %+v", missingCurrencyLabel, b.TotalNotional)
		}
		return
	}
	t.Fatal("1-30 bucket not found")
}

func TestAggregateBuckets_OutsideWindowAppended(t *testing.T) {
	defs := buildBucketDefs([]int{0, 30}, false)
	items := []ExpiryItem{
		{ID: 1, CurrencyCode: "EUR", NotionalAmount: decimal.NewFromInt(1), Bucket: outsideWindowLabel},
	}
	buckets := aggregateBuckets(items, defs)
	last := buckets[len(buckets)-1]
	if last.Label != outsideWindowLabel || last.Count != 1 {
		t.Fatalf("outside-window items must land in a trailing bucket: %+v", last)
	}
	if last.FromDays != nil || last.ToDays != nil {
		t.Fatalf("outside-window bucket has no range: %+v", last)
	}
}

func TestExpiryParams_NormalizeSwapsInvertedWindow(t *testing.T) {
	start := NewDate(2026, 6, 1)
	end := NewDate(2026, 1, 1)
	p := ExpiryParams{PovId: 1, WindowStart: &start, WindowEnd: &end}
	p.Normalize()
	if !p.WindowStart.Before(*p.WindowEnd) {
		t.Fatalf("window not swapped: start=%s end=%s", p.WindowStart, p.WindowEnd)
	}
	if p.Measure != "none" || p.ExposuresMode != ExposuresModeLatest {
		t.Fatalf("defaults not applied: %+v", p)
	}
	if p.IncludeOverdue == nil || !*p.IncludeOverdue {
		t.Fatal("include_overdue must default to true")
	}
}

func TestExpiryParams_Validate(t *testing.T) {
	cases := []struct {
		name   string
		params ExpiryParams
		ok     bool
	}{
		{"valid", ExpiryParams{PovId: 1, Measure: "none", ExposuresMode: "latest"}, true},
		{"missing pov", ExpiryParams{Measure: "none", ExposuresMode: "latest"}, false},
		{"bad measure", ExpiryParams{PovId: 1, Measure: "evil", ExposuresMode: "latest"}, false},
		{"last_n not allowed", ExpiryParams{PovId: 1, Measure: "none", ExposuresMode: "last_n"}, false},
	}
	for _, tc := range cases {
		hint := tc.params.Validate()
		if tc.ok && hint != "" {
			t.Fatalf("%s: unexpected hint %q", tc.name, hint)
		}
		if !tc.ok && hint == "" {
			t.Fatalf("%s: expected a validation hint", tc.name)
		}
	}
}
