package models

import "testing"

func TestCollectBundleRefs_DedupAndEdges(t *testing.T) {
	ils := []*Interlinkage{
		{ID: 10, ProjectId: 1, SponsorId: 5, CounterpartyId: 5, BookingEntityId: 6, FacilityId: 2, InstrumentId: 3, CurrencyId: 4},
		{ID: 11, ProjectId: 1, SponsorId: 5, CounterpartyId: 7},
	}
	sets, edges := collectBundleRefs(PovKindProject, 1, ils)

	if len(sets.projects) != 1 {
		t.Fatalf("project ids not deduplicated: %v", sets.projects)
	}
	// sponsor and counterparty of il 10 are the same entity, counted once
	if len(sets.entities) != 3 {
		t.Fatalf("expected 3 distinct entities, got %v", sets.entities)
	}
	if !sets.facilities[2] || !sets.instruments[3] || !sets.currencies[4] {
		t.Fatalf("related ids missing: %+v", sets)
	}

	// il 10 emits sponsor+counterparty+booking+project, il 11 emits
	// sponsor+counterparty+project
	if len(edges) != 7 {
		t.Fatalf("expected 7 edges, got %d", len(edges))
	}
	roles := map[string]int{}
	for _, e := range edges {
		if e.Type == "entity-interlinkage" {
			roles[e.Role]++
		}
	}
	if roles["sponsor"] != 2 || roles["counterparty"] != 2 || roles["booking"] != 1 {
		t.Fatalf("unexpected role distribution: %v", roles)
	}
}

func TestCollectBundleRefs_FocusRowWithoutInterlinkages(t *testing.T) {
	sets, edges := collectBundleRefs(PovKindEntity, 42, nil)
	if !sets.entities[42] {
		t.Fatal("focus entity must be part of the bundle even with zero interlinkages")
	}
	if len(edges) != 0 {
		t.Fatalf("expected no edges, got %d", len(edges))
	}

	sets, _ = collectBundleRefs(PovKindProject, 9, nil)
	if !sets.projects[9] {
		t.Fatal("focus project must be part of the bundle even with zero interlinkages")
	}
}

func TestSortedIds(t *testing.T) {
	ids := sortedIds(map[int]bool{3: true, 1: true, 2: true})
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 2 || ids[2] != 3 {
		t.Fatalf("ids not sorted: %v", ids)
	}
	if got := sortedIds(nil); len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}

func TestOverlaySizeHint(t *testing.T) {
	if got := overlaySizeHint(1); got != 46 {
		t.Fatalf("expected 46, got %d", got)
	}
	if got := overlaySizeHint(100); got != 120 {
		t.Fatalf("size hint must cap at 120, got %d", got)
	}
}
