package middlewares

import (
	"context"

	"github.com/cibdesk/interlinkages_backend/models"
	"github.com/graph-gophers/dataloader/v7"
	"gorm.io/gorm"
)

type projectReader struct {
	db *gorm.DB
}

func (r *projectReader) getProjects(ctx context.Context, ids []int) []*dataloader.Result[*models.Project] {
	var results []models.Project
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Where("is_deleted = ?", false).
		Find(&results).Error
	if err != nil {
		return handleError[*models.Project](len(ids), err)
	}
	return generateLoaderResults(results, ids)
}
