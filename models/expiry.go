package models

import (
	"context"
	"sort"
	"strconv"

	"github.com/cibdesk/interlinkages_backend/utils"
	"github.com/shopspring/decimal"
)

const outsideWindowLabel = "Outside window"

// label for items without a currency
const missingCurrencyLabel = "—"

var defaultBucketEdges = []int{0, 30, 90, 180, 365}

type ExpiryParams struct {
	PovId          int    `json:"pov_id"`
	WindowStart    *Date  `json:"window_start,omitempty"`
	WindowEnd      *Date  `json:"window_end,omitempty"`
	BucketsDays    []int  `json:"buckets_days,omitempty"`
	IncludeOverdue *bool  `json:"include_overdue,omitempty"`
	Measure        string `json:"measure"`
	ExposuresMode  string `json:"exposures_mode"`
}

// Normalize applies defaults and swaps an inverted window. The window
// is advisory only, echoed back without filtering.
func (p *ExpiryParams) Normalize() {
	if p.IncludeOverdue == nil {
		p.IncludeOverdue = utils.NewTrue()
	}
	if p.Measure == "" {
		p.Measure = "none"
	}
	if p.ExposuresMode == "" {
		p.ExposuresMode = ExposuresModeLatest
	}
	if p.WindowStart != nil && p.WindowEnd != nil && p.WindowEnd.Before(*p.WindowStart) {
		p.WindowStart, p.WindowEnd = p.WindowEnd, p.WindowStart
	}
}

func (p *ExpiryParams) Validate() string {
	if p.PovId <= 0 {
		return "pov_id is required"
	}
	if !ValidMeasure(p.Measure) {
		return "measure must be one of none, ead, rwa, mtm, pnl"
	}
	if p.ExposuresMode != ExposuresModeLatest && p.ExposuresMode != ExposuresModeNone {
		return "exposures_mode must be latest or none"
	}
	return ""
}

// a day-offset range; nil bounds are open ends
type bucketDef struct {
	Label    string `json:"label"`
	FromDays *int   `json:"from_days"`
	ToDays   *int   `json:"to_days"`
}

func (b bucketDef) contains(days int) bool {
	if b.FromDays != nil && days < *b.FromDays {
		return false
	}
	if b.ToDays != nil && days > *b.ToDays {
		return false
	}
	return true
}

func intPtr(v int) *int {
	return &v
}

// buildBucketDefs derives the bucket ranges from the day edges. Edges
// are deduplicated and sorted first. For edges e0<e1<...<ek the buckets
// are the boundary range [e0,e0], then [e[i-1]+1, e[i]] per pair, then
// the open tail >ek, preceded by Overdue (days < 0) when requested.
func buildBucketDefs(edges []int, includeOverdue bool) []bucketDef {

	edges = utils.UniqueSlice(edges)
	sort.Ints(edges)

	defs := []bucketDef{}
	if includeOverdue {
		defs = append(defs, bucketDef{Label: "Overdue", ToDays: intPtr(-1)})
	}
	if len(edges) == 0 {
		return defs
	}

	first := edges[0]
	defs = append(defs, bucketDef{
		Label:    strconv.Itoa(first) + "-" + strconv.Itoa(first),
		FromDays: intPtr(first),
		ToDays:   intPtr(first),
	})
	for i := 1; i < len(edges); i++ {
		from := edges[i-1] + 1
		to := edges[i]
		defs = append(defs, bucketDef{
			Label:    strconv.Itoa(from) + "-" + strconv.Itoa(to),
			FromDays: intPtr(from),
			ToDays:   intPtr(to),
		})
	}
	last := edges[len(edges)-1]
	defs = append(defs, bucketDef{
		Label:    ">" + strconv.Itoa(last),
		FromDays: intPtr(last + 1),
	})
	return defs
}

func assignBucket(days int, defs []bucketDef) string {
	for _, def := range defs {
		if def.contains(days) {
			return def.Label
		}
	}
	return outsideWindowLabel
}

type BucketTotal struct {
	CurrencyCode string `json:"currency_code"`
	Amount       string `json:"amount"`
}

type ExpiryBucket struct {
	Label         string        `json:"label"`
	FromDays      *int          `json:"from_days"`
	ToDays        *int          `json:"to_days"`
	Count         int           `json:"count"`
	TotalNotional []BucketTotal `json:"total_notional"`
}

type ExpiryItem struct {
	ID               int              `json:"id"`
	ProjectId        int              `json:"project_id"`
	SponsorId        int              `json:"sponsor_id"`
	SponsorName      string           `json:"sponsor_name"`
	CounterpartyId   int              `json:"counterparty_id"`
	CounterpartyName string           `json:"counterparty_name"`
	CurrencyId       int              `json:"currency_id"`
	CurrencyCode     string           `json:"currency_code"`
	NotionalAmount   decimal.Decimal  `json:"notional_amount"`
	MaturityDate     Date             `json:"maturity_date"`
	DaysToMaturity   int              `json:"days_to_maturity"`
	Bucket           string           `json:"bucket"`
	Measure          *decimal.Decimal `json:"measure"`
}

type ExpiryResult struct {
	Scope   AnalysisScope  `json:"scope"`
	Params  ExpiryParams   `json:"params"`
	Items   []ExpiryItem   `json:"items"`
	Buckets []ExpiryBucket `json:"buckets"`
	Overlay Overlay        `json:"overlay"`
}

// aggregateBuckets folds the bucketed items into per-bucket counts and
// per-currency notional totals, two decimal places each. Every defined
// range appears in the output; the outside-window bucket appears only
// when an item fell through.
func aggregateBuckets(items []ExpiryItem, defs []bucketDef) []ExpiryBucket {

	type accumulator struct {
		count  int
		totals map[string]decimal.Decimal
		codes  []string
	}
	acc := make(map[string]*accumulator, len(defs)+1)
	labels := make([]string, 0, len(defs)+1)
	for _, def := range defs {
		acc[def.Label] = &accumulator{totals: map[string]decimal.Decimal{}}
		labels = append(labels, def.Label)
	}

	for _, item := range items {
		bucket, ok := acc[item.Bucket]
		if !ok {
			bucket = &accumulator{totals: map[string]decimal.Decimal{}}
			acc[item.Bucket] = bucket
			labels = append(labels, item.Bucket)
		}
		bucket.count++
		code := item.CurrencyCode
		if code == "" {
			code = missingCurrencyLabel
		}
		if _, seen := bucket.totals[code]; !seen {
			bucket.codes = append(bucket.codes, code)
		}
		bucket.totals[code] = bucket.totals[code].Add(item.NotionalAmount)
	}

	defByLabel := make(map[string]bucketDef, len(defs))
	for _, def := range defs {
		defByLabel[def.Label] = def
	}

	buckets := make([]ExpiryBucket, 0, len(labels))
	for _, label := range labels {
		a := acc[label]
		out := ExpiryBucket{
			Label:         label,
			Count:         a.count,
			TotalNotional: []BucketTotal{},
		}
		if def, ok := defByLabel[label]; ok {
			out.FromDays = def.FromDays
			out.ToDays = def.ToDays
		}
		sort.Strings(a.codes)
		for _, code := range a.codes {
			out.TotalNotional = append(out.TotalNotional, BucketTotal{
				CurrencyCode: code,
				Amount:       a.totals[code].StringFixed(2),
			})
		}
		buckets = append(buckets, out)
	}
	return buckets
}

// MonitorExpiry buckets a project's interlinkages by calendar days to
// maturity relative to today. Interlinkages without a maturity date are
// excluded from items and aggregation.
func MonitorExpiry(ctx context.Context, params ExpiryParams) (*ExpiryResult, error) {

	ilIDs, err := ResolveScope(ctx, PovKindProject, params.PovId)
	if err != nil {
		return nil, err
	}

	result := &ExpiryResult{
		Scope:   AnalysisScope{PovKind: PovKindProject, PovId: params.PovId, InterlinkageIds: ilIDs},
		Params:  params,
		Items:   []ExpiryItem{},
		Buckets: []ExpiryBucket{},
		Overlay: NewOverlay(),
	}
	if result.Scope.InterlinkageIds == nil {
		result.Scope.InterlinkageIds = []int{}
	}

	edges := params.BucketsDays
	if len(edges) == 0 {
		edges = defaultBucketEdges
	}
	defs := buildBucketDefs(edges, params.IncludeOverdue == nil || *params.IncludeOverdue)

	if len(ilIDs) == 0 {
		result.Buckets = aggregateBuckets(nil, defs)
		return result, nil
	}

	ils, err := utils.FetchLiveModelsByIds[Interlinkage](ctx, ilIDs)
	if err != nil {
		return nil, err
	}

	entitySet := map[int]bool{}
	currencySet := map[int]bool{}
	withMaturity := []*Interlinkage{}
	for _, il := range ils {
		if il.MaturityDate == nil {
			continue
		}
		withMaturity = append(withMaturity, il)
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
		maturedIDs := make([]int, 0, len(withMaturity))
		for _, il := range withMaturity {
			maturedIDs = append(maturedIDs, il.ID)
		}
		latest, err = LatestExposureByInterlinkage(ctx, maturedIDs)
		if err != nil {
			return nil, err
		}
	}

	today := Today()
	for _, il := range withMaturity {
		days := il.MaturityDate.DaysFrom(today)
		item := ExpiryItem{
			ID:               il.ID,
			ProjectId:        il.ProjectId,
			SponsorId:        il.SponsorId,
			SponsorName:      entityName[il.SponsorId],
			CounterpartyId:   il.CounterpartyId,
			CounterpartyName: entityName[il.CounterpartyId],
			CurrencyId:       il.CurrencyId,
			CurrencyCode:     currencyCode[il.CurrencyId],
			NotionalAmount:   il.NotionalAmount,
			MaturityDate:     *il.MaturityDate,
			DaysToMaturity:   days,
			Bucket:           assignBucket(days, defs),
		}
		if latest != nil {
			if snap, ok := latest[il.ID]; ok {
				value := snap.Measure(params.Measure)
				item.Measure = &value
			}
		}
		result.Items = append(result.Items, item)
	}

	result.Buckets = aggregateBuckets(result.Items, defs)

	// overlay: one node per non-empty bucket, items outside the window
	// excluded
	nonEmpty := map[string]bool{}
	for _, item := range result.Items {
		if item.Bucket == outsideWindowLabel {
			continue
		}
		if !nonEmpty[item.Bucket] {
			nonEmpty[item.Bucket] = true
		}
		result.Overlay.Links = append(result.Overlay.Links, OverlayLink{
			Source: ilNodeID(item.ID),
			Target: "bucket:" + item.Bucket,
			Type:   "member",
		})
	}
	for _, bucket := range result.Buckets {
		if bucket.Label == outsideWindowLabel || bucket.Count == 0 || !nonEmpty[bucket.Label] {
			continue
		}
		result.Overlay.Nodes = append(result.Overlay.Nodes, OverlayNode{
			ID:       "bucket:" + bucket.Label,
			Label:    bucket.Label,
			Kind:     "bucket",
			SizeHint: overlaySizeHint(bucket.Count),
		})
	}

	return result, nil
}
