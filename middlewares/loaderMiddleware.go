package middlewares

import (
	"context"
	"time"

	"github.com/cibdesk/interlinkages_backend/appctx"
	"github.com/cibdesk/interlinkages_backend/config"
	"github.com/cibdesk/interlinkages_backend/models"
	"github.com/gin-gonic/gin"
	"github.com/graph-gophers/dataloader/v7"
	"gorm.io/gorm"
)

// Loaders wrap the per-request batch loaders for reference rows. The
// focus-bundle second pass and the analysis enrichment go through these
// so that parallel lookups within one request collapse into single IN
// queries.
type Loaders struct {
	CountryLoader          *dataloader.Loader[int, *models.Country]
	SectorLoader           *dataloader.Loader[int, *models.Sector]
	PraActivityLoader      *dataloader.Loader[int, *models.PraActivity]
	CounterpartyTypeLoader *dataloader.Loader[int, *models.CounterpartyType]
	InstrumentTypeLoader   *dataloader.Loader[int, *models.InstrumentType]
	FacilityTypeLoader     *dataloader.Loader[int, *models.FacilityType]
	CurrencyLoader         *dataloader.Loader[int, *models.Currency]
	LegalEntityLoader      *dataloader.Loader[int, *models.LegalEntity]
	ProjectLoader          *dataloader.Loader[int, *models.Project]
}

// NewLoaders instantiates data loaders for the middleware
func NewLoaders(conn *gorm.DB) *Loaders {
	countryReader := &countryReader{db: conn}
	sectorReader := &sectorReader{db: conn}
	praActivityReader := &praActivityReader{db: conn}
	counterpartyTypeReader := &counterpartyTypeReader{db: conn}
	instrumentTypeReader := &instrumentTypeReader{db: conn}
	facilityTypeReader := &facilityTypeReader{db: conn}
	currencyReader := &currencyReader{db: conn}
	legalEntityReader := &legalEntityReader{db: conn}
	projectReader := &projectReader{db: conn}

	return &Loaders{
		CountryLoader:          dataloader.NewBatchedLoader(countryReader.getCountries, dataloader.WithWait[int, *models.Country](time.Millisecond)),
		SectorLoader:           dataloader.NewBatchedLoader(sectorReader.getSectors, dataloader.WithWait[int, *models.Sector](time.Millisecond)),
		PraActivityLoader:      dataloader.NewBatchedLoader(praActivityReader.getPraActivities, dataloader.WithWait[int, *models.PraActivity](time.Millisecond)),
		CounterpartyTypeLoader: dataloader.NewBatchedLoader(counterpartyTypeReader.getCounterpartyTypes, dataloader.WithWait[int, *models.CounterpartyType](time.Millisecond)),
		InstrumentTypeLoader:   dataloader.NewBatchedLoader(instrumentTypeReader.getInstrumentTypes, dataloader.WithWait[int, *models.InstrumentType](time.Millisecond)),
		FacilityTypeLoader:     dataloader.NewBatchedLoader(facilityTypeReader.getFacilityTypes, dataloader.WithWait[int, *models.FacilityType](time.Millisecond)),
		CurrencyLoader:         dataloader.NewBatchedLoader(currencyReader.getCurrencies, dataloader.WithWait[int, *models.Currency](time.Millisecond)),
		LegalEntityLoader:      dataloader.NewBatchedLoader(legalEntityReader.getLegalEntities, dataloader.WithWait[int, *models.LegalEntity](time.Millisecond)),
		ProjectLoader:          dataloader.NewBatchedLoader(projectReader.getProjects, dataloader.WithWait[int, *models.Project](time.Millisecond)),
	}
}

func LoaderMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		loader := NewLoaders(config.GetDB())
		ctx := context.WithValue(c.Request.Context(), appctx.ContextKeyLoaders, loader)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// handleError creates array of result with the same error repeated for as many items requested
func handleError[T any](itemsLength int, err error) []*dataloader.Result[T] {
	result := make([]*dataloader.Result[T], itemsLength)
	for i := 0; i < itemsLength; i++ {
		result[i] = &dataloader.Result[T]{Error: err}
	}
	return result
}

// turns results from db into dataloader results, nil for missing ids
// (T must be a struct)
func generateLoaderResults[T models.Identifier](results []T, ids []int) []*dataloader.Result[*T] {
	resultMap := make(map[int]*T, len(results))
	for i := range results {
		result := results[i]
		resultMap[result.GetId()] = &result
	}

	loaderResults := make([]*dataloader.Result[*T], 0, len(ids))
	for _, id := range ids {
		loaderResults = append(loaderResults, &dataloader.Result[*T]{Data: resultMap[id]})
	}
	return loaderResults
}

// batch-load many ids through a loader, dropping missing rows
func loadMany[T any](ctx context.Context, loader *dataloader.Loader[int, *T], ids []int) ([]*T, error) {
	rows := make([]*T, 0, len(ids))
	if len(ids) == 0 {
		return rows, nil
	}
	results, errs := loader.LoadMany(ctx, ids)()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	for _, row := range results {
		if row != nil {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

/* models.RefLoader implementation */

func (l *Loaders) LoadCountries(ctx context.Context, ids []int) ([]*models.Country, error) {
	return loadMany(ctx, l.CountryLoader, ids)
}

func (l *Loaders) LoadSectors(ctx context.Context, ids []int) ([]*models.Sector, error) {
	return loadMany(ctx, l.SectorLoader, ids)
}

func (l *Loaders) LoadPraActivities(ctx context.Context, ids []int) ([]*models.PraActivity, error) {
	return loadMany(ctx, l.PraActivityLoader, ids)
}

func (l *Loaders) LoadCounterpartyTypes(ctx context.Context, ids []int) ([]*models.CounterpartyType, error) {
	return loadMany(ctx, l.CounterpartyTypeLoader, ids)
}

func (l *Loaders) LoadInstrumentTypes(ctx context.Context, ids []int) ([]*models.InstrumentType, error) {
	return loadMany(ctx, l.InstrumentTypeLoader, ids)
}

func (l *Loaders) LoadFacilityTypes(ctx context.Context, ids []int) ([]*models.FacilityType, error) {
	return loadMany(ctx, l.FacilityTypeLoader, ids)
}

func (l *Loaders) LoadCurrencies(ctx context.Context, ids []int) ([]*models.Currency, error) {
	return loadMany(ctx, l.CurrencyLoader, ids)
}

func (l *Loaders) LoadLegalEntities(ctx context.Context, ids []int) ([]*models.LegalEntity, error) {
	return loadMany(ctx, l.LegalEntityLoader, ids)
}

func (l *Loaders) LoadProjects(ctx context.Context, ids []int) ([]*models.Project, error) {
	return loadMany(ctx, l.ProjectLoader, ids)
}
