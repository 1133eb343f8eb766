package middlewares

import (
	"context"

	"github.com/cibdesk/interlinkages_backend/models"
	"github.com/graph-gophers/dataloader/v7"
	"gorm.io/gorm"
)

// Readers for the reference dictionaries. Reference tables carry no
// soft-delete flag, so the batch fetch is a plain IN query.

type countryReader struct {
	db *gorm.DB
}

func (r *countryReader) getCountries(ctx context.Context, ids []int) []*dataloader.Result[*models.Country] {
	var results []models.Country
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).Find(&results).Error
	if err != nil {
		return handleError[*models.Country](len(ids), err)
	}
	return generateLoaderResults(results, ids)
}

type sectorReader struct {
	db *gorm.DB
}

func (r *sectorReader) getSectors(ctx context.Context, ids []int) []*dataloader.Result[*models.Sector] {
	var results []models.Sector
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).Find(&results).Error
	if err != nil {
		return handleError[*models.Sector](len(ids), err)
	}
	return generateLoaderResults(results, ids)
}

type praActivityReader struct {
	db *gorm.DB
}

func (r *praActivityReader) getPraActivities(ctx context.Context, ids []int) []*dataloader.Result[*models.PraActivity] {
	var results []models.PraActivity
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).Find(&results).Error
	if err != nil {
		return handleError[*models.PraActivity](len(ids), err)
	}
	return generateLoaderResults(results, ids)
}

type counterpartyTypeReader struct {
	db *gorm.DB
}

func (r *counterpartyTypeReader) getCounterpartyTypes(ctx context.Context, ids []int) []*dataloader.Result[*models.CounterpartyType] {
	var results []models.CounterpartyType
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).Find(&results).Error
	if err != nil {
		return handleError[*models.CounterpartyType](len(ids), err)
	}
	return generateLoaderResults(results, ids)
}

type instrumentTypeReader struct {
	db *gorm.DB
}

func (r *instrumentTypeReader) getInstrumentTypes(ctx context.Context, ids []int) []*dataloader.Result[*models.InstrumentType] {
	var results []models.InstrumentType
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).Find(&results).Error
	if err != nil {
		return handleError[*models.InstrumentType](len(ids), err)
	}
	return generateLoaderResults(results, ids)
}

type facilityTypeReader struct {
	db *gorm.DB
}

func (r *facilityTypeReader) getFacilityTypes(ctx context.Context, ids []int) []*dataloader.Result[*models.FacilityType] {
	var results []models.FacilityType
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).Find(&results).Error
	if err != nil {
		return handleError[*models.FacilityType](len(ids), err)
	}
	return generateLoaderResults(results, ids)
}

type currencyReader struct {
	db *gorm.DB
}

func (r *currencyReader) getCurrencies(ctx context.Context, ids []int) []*dataloader.Result[*models.Currency] {
	var results []models.Currency
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).Find(&results).Error
	if err != nil {
		return handleError[*models.Currency](len(ids), err)
	}
	return generateLoaderResults(results, ids)
}
