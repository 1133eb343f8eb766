package models

import (
	"context"
	"sort"

	"github.com/cibdesk/interlinkages_backend/config"
	"github.com/cibdesk/interlinkages_backend/utils"
	"github.com/shopspring/decimal"
)

const (
	GroupByIdentifier = "identifier"
	GroupByType       = "type"
	GroupByIdType     = "id_type"
	GroupByTypeLevel  = "type_level"
)

func ValidGroupBy(groupBy string) bool {
	switch groupBy {
	case GroupByIdentifier, GroupByType, GroupByIdType, GroupByTypeLevel:
		return true
	}
	return false
}

func ValidMeasure(measure string) bool {
	switch measure {
	case "none", "ead", "rwa", "mtm", "pnl":
		return true
	}
	return false
}

type ConcentrationParams struct {
	PovKind       string   `json:"pov_kind"`
	PovId         int      `json:"pov_id"`
	GroupBy       string   `json:"group_by"`
	MinCluster    int      `json:"min_cluster"`
	Levels        []string `json:"levels,omitempty"`
	Measure       string   `json:"measure"`
	ExposuresMode string   `json:"exposures_mode"`
}

// Normalize applies the documented defaults and clamps min_cluster to
// its floor of 2.
func (p *ConcentrationParams) Normalize() {
	if p.GroupBy == "" {
		p.GroupBy = GroupByIdentifier
	}
	if p.MinCluster < 2 {
		p.MinCluster = 2
	}
	if p.Measure == "" {
		p.Measure = "none"
	}
	if p.ExposuresMode == "" {
		p.ExposuresMode = ExposuresModeLatest
	}
}

// Validate returns a hint describing the first invalid parameter, or ""
// when the params are well formed. Runs before any query.
func (p *ConcentrationParams) Validate() string {
	if !ValidPovKind(p.PovKind) {
		return "pov_kind must be one of project, entity, interlinkage"
	}
	if p.PovId <= 0 {
		return "pov_id is required"
	}
	if !ValidGroupBy(p.GroupBy) {
		return "group_by must be one of identifier, type, id_type, type_level"
	}
	if !ValidMeasure(p.Measure) {
		return "measure must be one of none, ead, rwa, mtm, pnl"
	}
	if p.ExposuresMode != ExposuresModeLatest && p.ExposuresMode != ExposuresModeNone {
		return "exposures_mode must be latest or none"
	}
	return ""
}

type AnalysisScope struct {
	PovKind         string `json:"pov_kind"`
	PovId           int    `json:"pov_id"`
	InterlinkageIds []int  `json:"interlinkage_ids"`
}

type ClusterInterlinkage struct {
	ID               int              `json:"id"`
	ProjectId        int              `json:"project_id"`
	SponsorId        int              `json:"sponsor_id"`
	SponsorName      string           `json:"sponsor_name"`
	CounterpartyId   int              `json:"counterparty_id"`
	CounterpartyName string           `json:"counterparty_name"`
	NotionalAmount   decimal.Decimal  `json:"notional_amount"`
	CurrencyId       int              `json:"currency_id"`
	CurrencyCode     string           `json:"currency_code"`
	Measure          *decimal.Decimal `json:"measure"`
}

type Cluster struct {
	Key           string                `json:"key"`
	Label         string                `json:"label"`
	By            string                `json:"by"`
	IlCount       int                   `json:"il_count"`
	DepCount      int                   `json:"dep_count"`
	Levels        []string              `json:"levels"`
	Types         []string              `json:"types"`
	Interlinkages []ClusterInterlinkage `json:"interlinkages"`
}

type ConcentrationResult struct {
	Scope    AnalysisScope       `json:"scope"`
	Params   ConcentrationParams `json:"params"`
	Clusters []Cluster           `json:"clusters"`
	Overlay  Overlay             `json:"overlay"`
}

// one bucket of interdependence edges sharing a grouping key
type depCluster struct {
	key     string
	ilSeen  map[int]bool
	ilOrder []int
	levels  map[string]bool
	types   map[string]bool
	edges   []*Interdependence
}

func clusterKey(dep *Interdependence, groupBy string) string {
	switch groupBy {
	case GroupByType:
		return string(dep.Type)
	case GroupByIdType:
		return dep.InterdependenceIdentifier + " | " + string(dep.Type)
	case GroupByTypeLevel:
		return string(dep.Type) + " | " + string(dep.Level)
	}
	return dep.InterdependenceIdentifier
}

// clusterInterdeps buckets edges by key, drops buckets spanning fewer
// than minCluster distinct interlinkages and sorts descending by
// (distinct interlinkage count, edge count), ties kept in discovery
// order.
func clusterInterdeps(deps []*Interdependence, groupBy string, minCluster int) []*depCluster {

	byKey := make(map[string]*depCluster)
	order := []*depCluster{}

	for _, dep := range deps {
		key := clusterKey(dep, groupBy)
		bucket, ok := byKey[key]
		if !ok {
			bucket = &depCluster{
				key:    key,
				ilSeen: map[int]bool{},
				levels: map[string]bool{},
				types:  map[string]bool{},
			}
			byKey[key] = bucket
			order = append(order, bucket)
		}
		if !bucket.ilSeen[dep.InterlinkageId] {
			bucket.ilSeen[dep.InterlinkageId] = true
			bucket.ilOrder = append(bucket.ilOrder, dep.InterlinkageId)
		}
		if dep.Level != "" {
			bucket.levels[string(dep.Level)] = true
		}
		if dep.Type != "" {
			bucket.types[string(dep.Type)] = true
		}
		bucket.edges = append(bucket.edges, dep)
	}

	retained := make([]*depCluster, 0, len(order))
	for _, bucket := range order {
		if len(bucket.ilSeen) >= minCluster {
			retained = append(retained, bucket)
		}
	}

	sort.SliceStable(retained, func(i, j int) bool {
		if len(retained[i].ilSeen) != len(retained[j].ilSeen) {
			return len(retained[i].ilSeen) > len(retained[j].ilSeen)
		}
		return len(retained[i].edges) > len(retained[j].edges)
	})
	return retained
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// AnalyzeSharedDependencies resolves the pov scope, clusters its
// interdependence edges by the configured key and reports every cluster
// shared by at least min_cluster interlinkages, enriched with display
// names, currency codes and optionally the latest exposure measure.
func AnalyzeSharedDependencies(ctx context.Context, params ConcentrationParams) (*ConcentrationResult, error) {

	ilIDs, err := ResolveScope(ctx, params.PovKind, params.PovId)
	if err != nil {
		return nil, err
	}

	result := &ConcentrationResult{
		Scope:    AnalysisScope{PovKind: params.PovKind, PovId: params.PovId, InterlinkageIds: ilIDs},
		Params:   params,
		Clusters: []Cluster{},
		Overlay:  NewOverlay(),
	}
	if result.Scope.InterlinkageIds == nil {
		result.Scope.InterlinkageIds = []int{}
	}
	if len(ilIDs) == 0 {
		return result, nil
	}

	db := config.GetDB()
	deps := []*Interdependence{}
	dbCtx := db.WithContext(ctx).
		Where("interlinkage_id IN ?", ilIDs).
		Where("is_deleted = ?", false)
	if len(params.Levels) > 0 {
		dbCtx = dbCtx.Where("level IN ?", params.Levels)
	}
	if err := dbCtx.Order("id").Find(&deps).Error; err != nil {
		return nil, err
	}

	clusters := clusterInterdeps(deps, params.GroupBy, params.MinCluster)
	if len(clusters) == 0 {
		return result, nil
	}

	// bulk enrichment of the member interlinkages
	memberSet := map[int]bool{}
	for _, cluster := range clusters {
		for _, id := range cluster.ilOrder {
			memberSet[id] = true
		}
	}
	memberIDs := sortedIds(memberSet)

	ils, err := utils.FetchLiveModelsByIds[Interlinkage](ctx, memberIDs)
	if err != nil {
		return nil, err
	}
	ilByID := make(map[int]*Interlinkage, len(ils))
	entitySet := map[int]bool{}
	currencySet := map[int]bool{}
	for _, il := range ils {
		ilByID[il.ID] = il
		if il.SponsorId > 0 {
			entitySet[il.SponsorId] = true
		}
		if il.CounterpartyId > 0 {
			entitySet[il.CounterpartyId] = true
		}
		if il.CurrencyId > 0 {
			currencySet[il.CurrencyId] = true
		}
	}

	entities, err := fetchLegalEntities(ctx, sortedIds(entitySet))
	if err != nil {
		return nil, err
	}
	entityName := make(map[int]string, len(entities))
	for _, e := range entities {
		entityName[e.ID] = e.Name
	}

	currencies, err := fetchCurrencies(ctx, sortedIds(currencySet))
	if err != nil {
		return nil, err
	}
	currencyCode := make(map[int]string, len(currencies))
	for _, c := range currencies {
		currencyCode[c.ID] = c.Code
	}

	var latest map[int]*ExposureSnapshot
	if params.Measure != "none" && params.ExposuresMode == ExposuresModeLatest {
		latest, err = LatestExposureByInterlinkage(ctx, memberIDs)
		if err != nil {
			return nil, err
		}
	}

	for _, cluster := range clusters {
		out := Cluster{
			Key:           cluster.key,
			Label:         cluster.key,
			By:            params.GroupBy,
			IlCount:       len(cluster.ilSeen),
			DepCount:      len(cluster.edges),
			Levels:        sortedKeys(cluster.levels),
			Types:         sortedKeys(cluster.types),
			Interlinkages: []ClusterInterlinkage{},
		}
		for _, ilID := range cluster.ilOrder {
			il, ok := ilByID[ilID]
			if !ok {
				continue
			}
			member := ClusterInterlinkage{
				ID:               il.ID,
				ProjectId:        il.ProjectId,
				SponsorId:        il.SponsorId,
				SponsorName:      entityName[il.SponsorId],
				CounterpartyId:   il.CounterpartyId,
				CounterpartyName: entityName[il.CounterpartyId],
				NotionalAmount:   il.NotionalAmount,
				CurrencyId:       il.CurrencyId,
				CurrencyCode:     currencyCode[il.CurrencyId],
			}
			if latest != nil {
				if snap, ok := latest[il.ID]; ok {
					value := snap.Measure(params.Measure)
					member.Measure = &value
				}
			}
			out.Interlinkages = append(out.Interlinkages, member)

			result.Overlay.Links = append(result.Overlay.Links, OverlayLink{
				Source: ilNodeID(il.ID),
				Target: "cluster:" + cluster.key,
				Type:   "member",
			})
		}
		result.Clusters = append(result.Clusters, out)

		result.Overlay.Nodes = append(result.Overlay.Nodes, OverlayNode{
			ID:       "cluster:" + cluster.key,
			Label:    cluster.key,
			Kind:     "cluster",
			SizeHint: overlaySizeHint(len(cluster.ilSeen)),
		})
	}

	return result, nil
}
