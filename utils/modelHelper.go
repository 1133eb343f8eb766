package utils

import (
	"context"

	"github.com/cibdesk/interlinkages_backend/config"
)

// SoftDeletable marks models carrying the is_deleted flag. Query helpers
// add the non-deleted filter for these models at compile time instead of
// probing attributes at runtime.
type SoftDeletable interface {
	SoftDeleted() bool
}

/* DB fetching */

// fetch model from db by primary id
// (may return RecordNotFound)
func FetchModel[T any](ctx context.Context, id int, associations ...string) (*T, error) {

	db := config.GetDB()
	dbCtx := db.WithContext(ctx)
	// preloading
	for _, field := range associations {
		dbCtx = dbCtx.Preload(field)
	}
	var result T
	err := dbCtx.First(&result, id).Error
	if err != nil {
		return nil, ErrorRecordNotFound
	}
	return &result, nil
}

// fetch a live (non-deleted) model from db by primary id
// (may return RecordNotFound)
func FetchLiveModel[T SoftDeletable](ctx context.Context, id int, associations ...string) (*T, error) {

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Where("is_deleted = ?", false)
	for _, field := range associations {
		dbCtx = dbCtx.Preload(field)
	}
	var result T
	err := dbCtx.First(&result, id).Error
	if err != nil {
		return nil, ErrorRecordNotFound
	}
	return &result, nil
}

// fetch all models from db
func FetchAllModels[T any](ctx context.Context, associations ...string) ([]*T, error) {

	db := config.GetDB()
	dbCtx := db.WithContext(ctx)
	for _, field := range associations {
		dbCtx = dbCtx.Preload(field)
	}
	var results []*T
	err := dbCtx.Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// fetch models whose primary id is in the given set, one IN query.
// Soft-deleted rows are filtered out for SoftDeletable models via
// FetchLiveModelsByIds; this variant has no deletion concept.
func FetchModelsByIds[T any](ctx context.Context, ids []int) ([]*T, error) {
	if len(ids) == 0 {
		return []*T{}, nil
	}
	db := config.GetDB()
	var results []*T
	err := db.WithContext(ctx).Where("id IN ?", ids).Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func FetchLiveModelsByIds[T SoftDeletable](ctx context.Context, ids []int) ([]*T, error) {
	if len(ids) == 0 {
		return []*T{}, nil
	}
	db := config.GetDB()
	var results []*T
	err := db.WithContext(ctx).
		Where("id IN ?", ids).
		Where("is_deleted = ?", false).
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
