package middlewares

import (
	"context"

	"github.com/cibdesk/interlinkages_backend/models"
	"github.com/graph-gophers/dataloader/v7"
	"gorm.io/gorm"
)

type legalEntityReader struct {
	db *gorm.DB
}

// soft-deleted entities are invisible to the bundle
func (r *legalEntityReader) getLegalEntities(ctx context.Context, ids []int) []*dataloader.Result[*models.LegalEntity] {
	var results []models.LegalEntity
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Where("is_deleted = ?", false).
		Find(&results).Error
	if err != nil {
		return handleError[*models.LegalEntity](len(ids), err)
	}
	return generateLoaderResults(results, ids)
}
