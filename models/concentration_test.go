package models

import "testing"

func dep(il int, identifier string, depType InterdependenceType, level InterdependenceLevel) *Interdependence {
	return &Interdependence{
		InterlinkageId:            il,
		InterdependenceIdentifier: identifier,
		Type:                      depType,
		Level:                     level,
	}
}

func TestClusterKey(t *testing.T) {
	d := dep(1, "VENDOR-X", InterdependenceTypeContractual, InterdependenceLevelHigh)

	cases := []struct {
		groupBy  string
		expected string
	}{
		{GroupByIdentifier, "VENDOR-X"},
		{GroupByType, "contractual"},
		{GroupByIdType, "VENDOR-X | contractual"},
		{GroupByTypeLevel, "contractual | high"},
	}
	for _, tc := range cases {
		if got := clusterKey(d, tc.groupBy); got != tc.expected {
			t.Fatalf("clusterKey(%s) expected %q, got %q", tc.groupBy, tc.expected, got)
		}
	}
}

func TestClusterInterdeps_SharedDependencyRetained(t *testing.T) {
	deps := []*Interdependence{
		dep(1, "VENDOR-X", InterdependenceTypeContractual, InterdependenceLevelHigh),
		dep(2, "VENDOR-X", InterdependenceTypeContractual, InterdependenceLevelLow),
		dep(3, "SOLO", InterdependenceTypeCredit, InterdependenceLevelMedium),
	}
	clusters := clusterInterdeps(deps, GroupByIdentifier, 2)

	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(clusters))
	}
	c := clusters[0]
	if c.key != "VENDOR-X" {
		t.Fatalf("unexpected key %q", c.key)
	}
	if len(c.ilSeen) != 2 || len(c.edges) != 2 {
		t.Fatalf("expected il_count=2 dep_count=2, got %d/%d", len(c.ilSeen), len(c.edges))
	}
	if !c.levels["high"] || !c.levels["low"] {
		t.Fatalf("levels not collected: %v", c.levels)
	}
}

func TestClusterInterdeps_DistinctIlCount(t *testing.T) {
	// two edges on the same interlinkage count once toward the threshold
	deps := []*Interdependence{
		dep(1, "VENDOR-X", InterdependenceTypeContractual, InterdependenceLevelHigh),
		dep(1, "VENDOR-X", InterdependenceTypeGuarantee, InterdependenceLevelHigh),
	}
	clusters := clusterInterdeps(deps, GroupByIdentifier, 2)
	if len(clusters) != 0 {
		t.Fatalf("single-interlinkage bucket must be dropped, got %d clusters", len(clusters))
	}
}

func TestClusterInterdeps_SortOrder(t *testing.T) {
	deps := []*Interdependence{
		dep(1, "SMALL", InterdependenceTypeCredit, InterdependenceLevelLow),
		dep(2, "SMALL", InterdependenceTypeCredit, InterdependenceLevelLow),
		dep(1, "BIG", InterdependenceTypeFunding, InterdependenceLevelHigh),
		dep(2, "BIG", InterdependenceTypeFunding, InterdependenceLevelHigh),
		dep(3, "BIG", InterdependenceTypeFunding, InterdependenceLevelHigh),
		dep(4, "WIDE", InterdependenceTypeEquity, InterdependenceLevelMedium),
		dep(5, "WIDE", InterdependenceTypeEquity, InterdependenceLevelMedium),
		dep(5, "WIDE", InterdependenceTypeEquity, InterdependenceLevelMedium),
	}
	clusters := clusterInterdeps(deps, GroupByIdentifier, 2)

	if len(clusters) != 3 {
		t.Fatalf("expected 3 clusters, got %d", len(clusters))
	}
	if clusters[0].key != "BIG" {
		t.Fatalf("largest il_count first, got %q", clusters[0].key)
	}
	// SMALL and WIDE both span 2 interlinkages; WIDE has more edges
	if clusters[1].key != "WIDE" || clusters[2].key != "SMALL" {
		t.Fatalf("dep_count tiebreak failed: %q then %q", clusters[1].key, clusters[2].key)
	}

	for i := 1; i < len(clusters); i++ {
		if len(clusters[i].ilSeen) > len(clusters[i-1].ilSeen) {
			t.Fatal("clusters not ordered by descending il_count")
		}
	}
}

func TestClusterInterdeps_GroupByTypeMergesIdentifiers(t *testing.T) {
	deps := []*Interdependence{
		dep(1, "A", InterdependenceTypeGuarantee, InterdependenceLevelLow),
		dep(2, "B", InterdependenceTypeGuarantee, InterdependenceLevelHigh),
	}
	clusters := clusterInterdeps(deps, GroupByType, 2)
	if len(clusters) != 1 || clusters[0].key != "guarantee" {
		t.Fatalf("expected one guarantee cluster, got %+v", clusters)
	}
}

func TestConcentrationParams_NormalizeClampsMinCluster(t *testing.T) {
	p := ConcentrationParams{PovKind: PovKindProject, PovId: 1, MinCluster: 1}
	p.Normalize()
	if p.MinCluster != 2 {
		t.Fatalf("min_cluster must clamp to 2, got %d", p.MinCluster)
	}
	if p.GroupBy != GroupByIdentifier || p.Measure != "none" || p.ExposuresMode != ExposuresModeLatest {
		t.Fatalf("defaults not applied: %+v", p)
	}
}

func TestConcentrationParams_Validate(t *testing.T) {
	cases := []struct {
		name   string
		params ConcentrationParams
		ok     bool
	}{
		{"valid", ConcentrationParams{PovKind: "project", PovId: 1, GroupBy: "identifier", MinCluster: 2, Measure: "none", ExposuresMode: "latest"}, true},
		{"bad kind", ConcentrationParams{PovKind: "universe", PovId: 1, GroupBy: "identifier", MinCluster: 2, Measure: "none", ExposuresMode: "latest"}, false},
		{"bad group_by", ConcentrationParams{PovKind: "project", PovId: 1, GroupBy: "color", MinCluster: 2, Measure: "none", ExposuresMode: "latest"}, false},
		{"last_n not allowed", ConcentrationParams{PovKind: "project", PovId: 1, GroupBy: "identifier", MinCluster: 2, Measure: "none", ExposuresMode: "last_n"}, false},
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
