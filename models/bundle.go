package models

import (
	"context"
	"sort"

	"github.com/cibdesk/interlinkages_backend/appctx"
	"github.com/cibdesk/interlinkages_backend/config"
	"github.com/cibdesk/interlinkages_backend/utils"
)

// RefLoader batches reference-row lookups. The loader middleware puts
// an implementation in the request context; outside a request the
// bundle falls back to direct bulk queries.
type RefLoader interface {
	LoadCountries(ctx context.Context, ids []int) ([]*Country, error)
	LoadSectors(ctx context.Context, ids []int) ([]*Sector, error)
	LoadPraActivities(ctx context.Context, ids []int) ([]*PraActivity, error)
	LoadCounterpartyTypes(ctx context.Context, ids []int) ([]*CounterpartyType, error)
	LoadInstrumentTypes(ctx context.Context, ids []int) ([]*InstrumentType, error)
	LoadFacilityTypes(ctx context.Context, ids []int) ([]*FacilityType, error)
	LoadCurrencies(ctx context.Context, ids []int) ([]*Currency, error)
	LoadLegalEntities(ctx context.Context, ids []int) ([]*LegalEntity, error)
	LoadProjects(ctx context.Context, ids []int) ([]*Project, error)
}

func refLoaderFrom(ctx context.Context) (RefLoader, bool) {
	loader, ok := ctx.Value(appctx.ContextKeyLoaders).(RefLoader)
	return loader, ok
}

type BundleOptions struct {
	Kind string
	ID   int

	IncludeInterdeps   bool
	IncludeNotes       bool
	IncludeAttachments bool
	IncludeWorkflow    bool
	IncludeAnalysis    bool

	ExposuresMode string
	ExposuresN    int
}

type BundleFocus struct {
	Kind string `json:"kind"`
	ID   int    `json:"id"`
}

type BundleEdge struct {
	Type           string `json:"type"`
	Role           string `json:"role,omitempty"`
	EntityId       int    `json:"entity_id,omitempty"`
	InterlinkageId int    `json:"interlinkage_id,omitempty"`
	ProjectId      int    `json:"project_id,omitempty"`
	InterdepId     int    `json:"interdep_id,omitempty"`
}

type BundleRef struct {
	Countries         []*Country          `json:"countries"`
	Sectors           []*Sector           `json:"sectors"`
	PraActivities     []*PraActivity      `json:"pra_activities"`
	CounterpartyTypes []*CounterpartyType `json:"counterparty_types"`
	InstrumentTypes   []*InstrumentType   `json:"instrument_types"`
	FacilityTypes     []*FacilityType     `json:"facility_types"`
}

type FocusBundle struct {
	Focus BundleFocus `json:"focus"`

	Projects          []*Project          `json:"projects"`
	LegalEntities     []*LegalEntity      `json:"legal_entities"`
	EntityIdentifiers []*EntityIdentifier `json:"entity_identifiers"`
	Interlinkages     []*Interlinkage     `json:"interlinkages"`
	Interdependences  []*Interdependence  `json:"interdependences"`

	Facilities  []*Facility   `json:"facilities"`
	Instruments []*Instrument `json:"instruments"`
	Currencies  []*Currency   `json:"currencies"`

	Exposures      []*ExposureSnapshot       `json:"exposures"`
	Attachments    []*InterlinkageAttachment `json:"attachments"`
	Notes          []*InterlinkageNote       `json:"notes"`
	WorkflowEvents []*WorkflowEvent          `json:"workflow_events"`
	Analyses       []*InterlinkageAnalysis   `json:"analyses"`

	Ref BundleRef `json:"ref"`

	Edges []BundleEdge `json:"edges"`
}

// id accumulators for one bundle request
type bundleIdSets struct {
	projects    map[int]bool
	entities    map[int]bool
	facilities  map[int]bool
	instruments map[int]bool
	currencies  map[int]bool
}

func newBundleIdSets() bundleIdSets {
	return bundleIdSets{
		projects:    map[int]bool{},
		entities:    map[int]bool{},
		facilities:  map[int]bool{},
		instruments: map[int]bool{},
		currencies:  map[int]bool{},
	}
}

func sortedIds(set map[int]bool) []int {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// collectBundleRefs walks the scoped interlinkages once, accumulating
// related ids (deduplicated) and the flat edge list. The focus row
// itself is part of the result even when it has zero interlinkages.
func collectBundleRefs(kind string, focusID int, ils []*Interlinkage) (bundleIdSets, []BundleEdge) {

	sets := newBundleIdSets()
	edges := []BundleEdge{}

	switch kind {
	case PovKindProject:
		sets.projects[focusID] = true
	case PovKindEntity:
		sets.entities[focusID] = true
	}

	for _, il := range ils {
		if il.ProjectId > 0 {
			sets.projects[il.ProjectId] = true
		}
		if il.SponsorId > 0 {
			sets.entities[il.SponsorId] = true
		}
		if il.CounterpartyId > 0 {
			sets.entities[il.CounterpartyId] = true
		}
		if il.BookingEntityId > 0 {
			sets.entities[il.BookingEntityId] = true
		}
		if il.FacilityId > 0 {
			sets.facilities[il.FacilityId] = true
		}
		if il.InstrumentId > 0 {
			sets.instruments[il.InstrumentId] = true
		}
		if il.CurrencyId > 0 {
			sets.currencies[il.CurrencyId] = true
		}

		if il.SponsorId > 0 {
			edges = append(edges, BundleEdge{Type: "entity-interlinkage", Role: "sponsor", EntityId: il.SponsorId, InterlinkageId: il.ID})
		}
		if il.CounterpartyId > 0 {
			edges = append(edges, BundleEdge{Type: "entity-interlinkage", Role: "counterparty", EntityId: il.CounterpartyId, InterlinkageId: il.ID})
		}
		if il.BookingEntityId > 0 {
			edges = append(edges, BundleEdge{Type: "entity-interlinkage", Role: "booking", EntityId: il.BookingEntityId, InterlinkageId: il.ID})
		}
		if il.ProjectId > 0 {
			edges = append(edges, BundleEdge{Type: "interlinkage-project", InterlinkageId: il.ID, ProjectId: il.ProjectId})
		}
	}
	return sets, edges
}

/* second-pass reference fetch, only the ids actually used */

// cachedRefRows serves dictionary rows outside a request, where no
// per-request loader exists. The dictionaries are small and change
// rarely, so the whole table is cached in redis and filtered in memory.
func cachedRefRows[T Identifier](ctx context.Context, ids []int) ([]*T, error) {
	if len(ids) == 0 {
		return []*T{}, nil
	}
	rows, err := utils.RetrieveRedisList[T]()
	if err != nil || rows == nil {
		if rows, err = utils.FetchAllModels[T](ctx); err != nil {
			return nil, err
		}
		_ = utils.StoreRedisList[T](rows)
	}
	wanted := map[int]bool{}
	for _, id := range ids {
		wanted[id] = true
	}
	out := []*T{}
	for _, row := range rows {
		if row != nil && wanted[(*row).GetId()] {
			out = append(out, row)
		}
	}
	return out, nil
}

func fetchCountries(ctx context.Context, ids []int) ([]*Country, error) {
	if loader, ok := refLoaderFrom(ctx); ok {
		return loader.LoadCountries(ctx, ids)
	}
	return cachedRefRows[Country](ctx, ids)
}

func fetchSectors(ctx context.Context, ids []int) ([]*Sector, error) {
	if loader, ok := refLoaderFrom(ctx); ok {
		return loader.LoadSectors(ctx, ids)
	}
	return cachedRefRows[Sector](ctx, ids)
}

func fetchPraActivities(ctx context.Context, ids []int) ([]*PraActivity, error) {
	if loader, ok := refLoaderFrom(ctx); ok {
		return loader.LoadPraActivities(ctx, ids)
	}
	return cachedRefRows[PraActivity](ctx, ids)
}

func fetchCounterpartyTypes(ctx context.Context, ids []int) ([]*CounterpartyType, error) {
	if loader, ok := refLoaderFrom(ctx); ok {
		return loader.LoadCounterpartyTypes(ctx, ids)
	}
	return cachedRefRows[CounterpartyType](ctx, ids)
}

func fetchInstrumentTypes(ctx context.Context, ids []int) ([]*InstrumentType, error) {
	if loader, ok := refLoaderFrom(ctx); ok {
		return loader.LoadInstrumentTypes(ctx, ids)
	}
	return cachedRefRows[InstrumentType](ctx, ids)
}

func fetchFacilityTypes(ctx context.Context, ids []int) ([]*FacilityType, error) {
	if loader, ok := refLoaderFrom(ctx); ok {
		return loader.LoadFacilityTypes(ctx, ids)
	}
	return cachedRefRows[FacilityType](ctx, ids)
}

func fetchCurrencies(ctx context.Context, ids []int) ([]*Currency, error) {
	if loader, ok := refLoaderFrom(ctx); ok {
		return loader.LoadCurrencies(ctx, ids)
	}
	return cachedRefRows[Currency](ctx, ids)
}

func fetchLegalEntities(ctx context.Context, ids []int) ([]*LegalEntity, error) {
	if loader, ok := refLoaderFrom(ctx); ok {
		return loader.LoadLegalEntities(ctx, ids)
	}
	return utils.FetchLiveModelsByIds[LegalEntity](ctx, ids)
}

func fetchProjects(ctx context.Context, ids []int) ([]*Project, error) {
	if loader, ok := refLoaderFrom(ctx); ok {
		return loader.LoadProjects(ctx, ids)
	}
	return utils.FetchLiveModelsByIds[Project](ctx, ids)
}

// BuildFocusBundle resolves the pov scope and materializes everything
// reachable from it in one payload: one IN query per table, no per-row
// round trips, reference tables filtered to the ids actually used.
func BuildFocusBundle(ctx context.Context, opts BundleOptions) (*FocusBundle, error) {

	ilIDs, err := ResolveScope(ctx, opts.Kind, opts.ID)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()

	ils := []*Interlinkage{}
	if len(ilIDs) > 0 {
		err = db.WithContext(ctx).
			Where("id IN ?", ilIDs).
			Where("is_deleted = ?", false).
			Order("id").
			Find(&ils).Error
		if err != nil {
			return nil, err
		}
	}

	sets, edges := collectBundleRefs(opts.Kind, opts.ID, ils)

	bundle := &FocusBundle{
		Focus: BundleFocus{Kind: opts.Kind, ID: opts.ID},

		Projects:          []*Project{},
		LegalEntities:     []*LegalEntity{},
		EntityIdentifiers: []*EntityIdentifier{},
		Interlinkages:     ils,
		Interdependences:  []*Interdependence{},
		Facilities:        []*Facility{},
		Instruments:       []*Instrument{},
		Currencies:        []*Currency{},
		Exposures:         []*ExposureSnapshot{},
		Attachments:       []*InterlinkageAttachment{},
		Notes:             []*InterlinkageNote{},
		WorkflowEvents:    []*WorkflowEvent{},
		Analyses:          []*InterlinkageAnalysis{},
		Ref: BundleRef{
			Countries:         []*Country{},
			Sectors:           []*Sector{},
			PraActivities:     []*PraActivity{},
			CounterpartyTypes: []*CounterpartyType{},
			InstrumentTypes:   []*InstrumentType{},
			FacilityTypes:     []*FacilityType{},
		},
		Edges: edges,
	}

	if bundle.Projects, err = fetchProjects(ctx, sortedIds(sets.projects)); err != nil {
		return nil, err
	}
	if bundle.LegalEntities, err = fetchLegalEntities(ctx, sortedIds(sets.entities)); err != nil {
		return nil, err
	}
	if bundle.Facilities, err = utils.FetchLiveModelsByIds[Facility](ctx, sortedIds(sets.facilities)); err != nil {
		return nil, err
	}
	if bundle.Instruments, err = utils.FetchLiveModelsByIds[Instrument](ctx, sortedIds(sets.instruments)); err != nil {
		return nil, err
	}
	if bundle.Currencies, err = fetchCurrencies(ctx, sortedIds(sets.currencies)); err != nil {
		return nil, err
	}

	// sub-collections, one IN query each
	if opts.IncludeInterdeps && len(ilIDs) > 0 {
		err = db.WithContext(ctx).
			Where("interlinkage_id IN ?", ilIDs).
			Where("is_deleted = ?", false).
			Order("id").
			Find(&bundle.Interdependences).Error
		if err != nil {
			return nil, err
		}
	}
	if opts.IncludeAttachments && len(ilIDs) > 0 {
		err = db.WithContext(ctx).
			Where("interlinkage_id IN ?", ilIDs).
			Where("is_deleted = ?", false).
			Order("id").
			Find(&bundle.Attachments).Error
		if err != nil {
			return nil, err
		}
	}
	if opts.IncludeNotes && len(ilIDs) > 0 {
		err = db.WithContext(ctx).
			Where("interlinkage_id IN ?", ilIDs).
			Where("is_deleted = ?", false).
			Order("id").
			Find(&bundle.Notes).Error
		if err != nil {
			return nil, err
		}
	}
	if opts.IncludeWorkflow && len(ilIDs) > 0 {
		err = db.WithContext(ctx).
			Where("interlinkage_id IN ?", ilIDs).
			Order("id").
			Find(&bundle.WorkflowEvents).Error
		if err != nil {
			return nil, err
		}
	}
	if opts.IncludeAnalysis && len(ilIDs) > 0 {
		err = db.WithContext(ctx).
			Where("interlinkage_id IN ?", ilIDs).
			Where("is_deleted = ?", false).
			Order("id").
			Find(&bundle.Analyses).Error
		if err != nil {
			return nil, err
		}
	}

	for _, dep := range bundle.Interdependences {
		bundle.Edges = append(bundle.Edges, BundleEdge{Type: "interdep-of", InterdepId: dep.ID, InterlinkageId: dep.InterlinkageId})
	}

	if bundle.Exposures, err = ResolveExposures(ctx, ilIDs, opts.ExposuresMode, opts.ExposuresN); err != nil {
		return nil, err
	}

	// identifiers of the returned entities
	if len(sets.entities) > 0 {
		err = db.WithContext(ctx).
			Where("entity_id IN ?", sortedIds(sets.entities)).
			Order("id").
			Find(&bundle.EntityIdentifiers).Error
		if err != nil {
			return nil, err
		}
	}

	// second pass: reference ids actually used by the fetched rows
	countryIds := map[int]bool{}
	sectorIds := map[int]bool{}
	for _, p := range bundle.Projects {
		if p.CountryId > 0 {
			countryIds[p.CountryId] = true
		}
		if p.SectorId > 0 {
			sectorIds[p.SectorId] = true
		}
	}
	for _, e := range bundle.LegalEntities {
		if e.CountryId > 0 {
			countryIds[e.CountryId] = true
		}
		if e.SectorId > 0 {
			sectorIds[e.SectorId] = true
		}
	}
	praIds := map[int]bool{}
	cptyTypeIds := map[int]bool{}
	for _, il := range ils {
		if il.PraActivityId > 0 {
			praIds[il.PraActivityId] = true
		}
		if il.CounterpartyTypeId > 0 {
			cptyTypeIds[il.CounterpartyTypeId] = true
		}
	}
	instTypeIds := map[int]bool{}
	for _, inst := range bundle.Instruments {
		if inst.InstrumentTypeId > 0 {
			instTypeIds[inst.InstrumentTypeId] = true
		}
	}
	facTypeIds := map[int]bool{}
	for _, fac := range bundle.Facilities {
		if fac.FacilityTypeId > 0 {
			facTypeIds[fac.FacilityTypeId] = true
		}
	}

	if bundle.Ref.Countries, err = fetchCountries(ctx, sortedIds(countryIds)); err != nil {
		return nil, err
	}
	if bundle.Ref.Sectors, err = fetchSectors(ctx, sortedIds(sectorIds)); err != nil {
		return nil, err
	}
	if bundle.Ref.PraActivities, err = fetchPraActivities(ctx, sortedIds(praIds)); err != nil {
		return nil, err
	}
	if bundle.Ref.CounterpartyTypes, err = fetchCounterpartyTypes(ctx, sortedIds(cptyTypeIds)); err != nil {
		return nil, err
	}
	if bundle.Ref.InstrumentTypes, err = fetchInstrumentTypes(ctx, sortedIds(instTypeIds)); err != nil {
		return nil, err
	}
	if bundle.Ref.FacilityTypes, err = fetchFacilityTypes(ctx, sortedIds(facTypeIds)); err != nil {
		return nil, err
	}

	return bundle, nil
}
