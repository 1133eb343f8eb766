package main

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cibdesk/interlinkages_backend/config"
	"github.com/cibdesk/interlinkages_backend/models"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/cibdesk/interlinkages_backend/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Generic CRUD plumbing: one declarative descriptor per resource, one
// handler implementation for all of them.

var crudReservedParams = map[string]bool{
	"page":            true,
	"page_size":       true,
	"sort":            true,
	"include_deleted": true,
	"soft":            true,
}

// columns not settable through update payloads
var crudProtectedColumns = map[string]bool{
	"id":         true,
	"created_at": true,
	"created_by": true,
	"updated_at": true,
	"updated_by": true,
	"is_deleted": true,
	"deleted_at": true,
	"deleted_by": true,
}

type crudModelInfo struct {
	columns    map[string]bool
	stringCols map[string]bool
	soft       bool
}

func crudInfo[T any]() (*crudModelInfo, error) {
	var model T
	s, err := schema.Parse(&model, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		return nil, err
	}
	info := &crudModelInfo{
		columns:    map[string]bool{},
		stringCols: map[string]bool{},
	}
	for _, field := range s.Fields {
		if field.DBName == "" {
			continue
		}
		info.columns[field.DBName] = true
		if field.DataType == schema.String {
			info.stringCols[field.DBName] = true
		}
		if field.DBName == "is_deleted" {
			info.soft = true
		}
	}
	return info, nil
}

func isIntegrityError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	// mysql duplicate entry / fk errors that gorm does not translate
	msg := err.Error()
	return strings.Contains(msg, "Error 1062") || strings.Contains(msg, "Error 1451") || strings.Contains(msg, "Error 1452")
}

// registerResource wires the five routes of one resource:
// GET /name, POST /name, GET /name/:id, POST /name/:id/update,
// POST /name/:id/delete.
func registerResource[T any](api *gin.RouterGroup, name string) {
	info, err := crudInfo[T]()
	if err != nil {
		log.Fatal(err)
	}
	api.GET("/"+name, listResources[T](info))
	api.POST("/"+name, createResource[T]())
	api.GET("/"+name+"/:id", getResource[T](info))
	api.POST("/"+name+"/:id/update", updateResource[T](info))
	api.POST("/"+name+"/:id/delete", deleteResource[T](info))
}

func registerCrudRoutes(api *gin.RouterGroup) {
	registerResource[models.Currency](api, "currencies")
	registerResource[models.Country](api, "countries")
	registerResource[models.Sector](api, "sectors")
	registerResource[models.PraActivity](api, "pra-activities")
	registerResource[models.CounterpartyType](api, "counterparty-types")
	registerResource[models.InstrumentType](api, "instrument-types")
	registerResource[models.FacilityType](api, "facility-types")
	registerResource[models.LegalEntity](api, "legal-entities")
	registerResource[models.EntityIdentifier](api, "entity-identifiers")
	registerResource[models.Project](api, "projects")
	registerResource[models.Facility](api, "facilities")
	registerResource[models.Instrument](api, "instruments")
	registerResource[models.Interlinkage](api, "interlinkages")
	registerResource[models.Interdependence](api, "interdependences")
	registerResource[models.ExposureSnapshot](api, "exposures")
	registerResource[models.InterlinkageAnalysis](api, "interlinkage-analyses")
	registerResource[models.InterlinkageAttachment](api, "interlinkage-attachments")
	registerResource[models.InterlinkageNote](api, "interlinkage-notes")
	registerResource[models.WorkflowEvent](api, "workflow-events")
}

// list with pagination, sorting "field:asc,other:desc", fuzzy LIKE for
// string columns and exact match for the rest
func listResources[T any](info *crudModelInfo) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		db := config.GetDB()

		page := queryInt(c, "page", 1)
		if page < 1 {
			page = 1
		}
		pageSize := queryInt(c, "page_size", 25)
		if pageSize < 1 {
			pageSize = 25
		}
		includeDeleted := queryFlag(c, "include_deleted", false)

		var model T
		q := db.WithContext(ctx).Model(&model)

		for key, values := range c.Request.URL.Query() {
			if crudReservedParams[key] || len(values) == 0 || values[0] == "" {
				continue
			}
			if !info.columns[key] {
				continue
			}
			if info.stringCols[key] {
				q = q.Where(key+" LIKE ?", "%"+values[0]+"%")
			} else {
				q = q.Where(key+" = ?", values[0])
			}
		}
		if info.soft && !includeDeleted {
			q = q.Where("is_deleted = ?", false)
		}

		var total int64
		if err := q.Count(&total).Error; err != nil {
			respondServerError(c, "crud", "listResources", err)
			return
		}

		ordered := false
		if sortArg := c.Query("sort"); sortArg != "" {
			for _, part := range strings.Split(sortArg, ",") {
				field, direction, _ := strings.Cut(strings.TrimSpace(part), ":")
				if !info.columns[field] {
					continue
				}
				if strings.ToLower(direction) == "desc" {
					q = q.Order(field + " DESC")
				} else {
					q = q.Order(field)
				}
				ordered = true
			}
		}
		if !ordered {
			q = q.Order("id")
		}

		items := []*T{}
		err := q.Offset((page - 1) * pageSize).Limit(pageSize).Find(&items).Error
		if err != nil {
			respondServerError(c, "crud", "listResources", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"items":     items,
			"total":     total,
			"page":      page,
			"page_size": pageSize,
		})
	}
}

func getResource[T any](info *crudModelInfo) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			respondInvalidArgs(c, "id must be an integer")
			return
		}

		db := config.GetDB()
		q := db.WithContext(ctx).Where("id = ?", id)
		if info.soft && !queryFlag(c, "include_deleted", false) {
			q = q.Where("is_deleted = ?", false)
		}
		var item T
		if err := q.First(&item).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func createResource[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var item T
		if err := c.ShouldBindJSON(&item); err != nil {
			var validationErrors validator.ValidationErrors
			if errors.As(err, &validationErrors) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_args", "fields": utils.ProcessValidationErrors(err)})
				return
			}
			respondInvalidArgs(c, "malformed request body")
			return
		}

		db := config.GetDB()
		if err := db.WithContext(ctx).Create(&item).Error; err != nil {
			if isIntegrityError(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "integrity_error", "message": err.Error()})
				return
			}
			respondServerError(c, "crud", "createResource", err)
			return
		}
		// cached dictionary lists go stale on writes
		_ = utils.RemoveRedisList[T]()
		c.JSON(http.StatusCreated, item)
	}
}

// partial update: unknown and protected columns in the payload are
// ignored, an empty body is a no-op
func updateResource[T any](info *crudModelInfo) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			respondInvalidArgs(c, "id must be an integer")
			return
		}

		db := config.GetDB()
		var item T
		if err := db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
			return
		}

		payload := map[string]interface{}{}
		if err := c.ShouldBindJSON(&payload); err != nil && c.Request.ContentLength > 0 {
			respondInvalidArgs(c, "malformed request body")
			return
		}
		updates := map[string]interface{}{}
		for key, value := range payload {
			if !info.columns[key] || crudProtectedColumns[key] {
				continue
			}
			updates[key] = value
		}
		if len(updates) > 0 {
			err := db.WithContext(ctx).Model(&item).Where("id = ?", id).Updates(updates).Error
			if err != nil {
				if isIntegrityError(err) {
					c.JSON(http.StatusConflict, gin.H{"error": "integrity_error", "message": err.Error()})
					return
				}
				respondServerError(c, "crud", "updateResource", err)
				return
			}
			if err := db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
				respondServerError(c, "crud", "updateResource", err)
				return
			}
			_ = utils.RemoveRedisList[T]()
		}
		c.JSON(http.StatusOK, item)
	}
}

// soft delete by default for models carrying the flag; ?soft=0 forces a
// hard delete
func deleteResource[T any](info *crudModelInfo) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			respondInvalidArgs(c, "id must be an integer")
			return
		}

		if err := utils.ValidateResourceId[T](ctx, id); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
			return
		}

		soft := c.DefaultQuery("soft", "1") != "0"
		// hard deleting a soft-capable row is admin-only, everyone else
		// falls back to the flag
		if !soft && info.soft {
			if isAdmin, ok := utils.GetIsAdminFromContext(ctx); !ok || !isAdmin {
				soft = true
			}
		}

		db := config.GetDB()
		var item T
		if soft && info.soft {
			username, _ := utils.GetUsernameFromContext(ctx)
			err = db.WithContext(ctx).Model(&item).Where("id = ?", id).Updates(map[string]interface{}{
				"is_deleted": true,
				"deleted_at": time.Now(),
				"deleted_by": username,
			}).Error
		} else {
			err = db.WithContext(ctx).Delete(&item, id).Error
		}
		if err != nil {
			if isIntegrityError(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "integrity_error", "message": err.Error()})
				return
			}
			respondServerError(c, "crud", "deleteResource", err)
			return
		}
		_ = utils.RemoveRedisList[T]()
		c.Status(http.StatusNoContent)
	}
}
