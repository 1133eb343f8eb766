package models

import (
	"context"
	"errors"

	"github.com/cibdesk/interlinkages_backend/config"
	"github.com/cibdesk/interlinkages_backend/utils"
)

const (
	PovKindProject      = "project"
	PovKindEntity       = "entity"
	PovKindInterlinkage = "interlinkage"
)

var ErrorInvalidPovKind = errors.New("invalid pov kind")

// ValidPovKind reports whether the kind is one of project, entity,
// interlinkage.
func ValidPovKind(kind string) bool {
	switch kind {
	case PovKindProject, PovKindEntity, PovKindInterlinkage:
		return true
	}
	return false
}

// PovEntityName maps a pov kind to the entity name reported in
// not-found responses.
func PovEntityName(kind string) string {
	switch kind {
	case PovKindProject:
		return "project"
	case PovKindEntity:
		return "legal_entity"
	case PovKindInterlinkage:
		return "interlinkage"
	}
	return kind
}

// ResolveScope resolves a point of view into the ids of the non-deleted
// interlinkages reachable from it. A missing pov row is RecordNotFound;
// an existing pov with zero interlinkages is an empty scope, not an
// error.
func ResolveScope(ctx context.Context, povKind string, povID int) ([]int, error) {

	db := config.GetDB()

	switch povKind {
	case PovKindProject:
		var count int64
		err := db.WithContext(ctx).Model(&Project{}).
			Where("id = ? AND is_deleted = ?", povID, false).
			Count(&count).Error
		if err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, utils.ErrorRecordNotFound
		}

		var ids []int
		err = db.WithContext(ctx).Model(&Interlinkage{}).
			Where("project_id = ? AND is_deleted = ?", povID, false).
			Order("id").
			Pluck("id", &ids).Error
		if err != nil {
			return nil, err
		}
		return ids, nil

	case PovKindEntity:
		var count int64
		err := db.WithContext(ctx).Model(&LegalEntity{}).
			Where("id = ? AND is_deleted = ?", povID, false).
			Count(&count).Error
		if err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, utils.ErrorRecordNotFound
		}

		var ids []int
		err = db.WithContext(ctx).Model(&Interlinkage{}).
			Where("sponsor_id = ? OR counterparty_id = ? OR booking_entity_id = ?", povID, povID, povID).
			Where("is_deleted = ?", false).
			Order("id").
			Pluck("id", &ids).Error
		if err != nil {
			return nil, err
		}
		return ids, nil

	case PovKindInterlinkage:
		var count int64
		err := db.WithContext(ctx).Model(&Interlinkage{}).
			Where("id = ? AND is_deleted = ?", povID, false).
			Count(&count).Error
		if err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, utils.ErrorRecordNotFound
		}
		return []int{povID}, nil
	}

	return nil, ErrorInvalidPovKind
}
