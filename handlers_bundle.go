package main

import (
	"net/http"
	"strconv"

	"github.com/cibdesk/interlinkages_backend/models"
	"github.com/gin-gonic/gin"
)

// GET /api/focus-bundle
//
// Returns everything related to a selected focus in one payload: the
// scoped interlinkages, their related rows fetched once per table, the
// reference rows actually used, and a flat edge list for graph
// rendering.
func focusBundleHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		kind := c.Query("kind")
		id, err := strconv.Atoi(c.Query("id"))
		if !models.ValidPovKind(kind) || err != nil || id <= 0 {
			respondInvalidArgs(c, "kind must be one of project, entity, interlinkage and id is required")
			return
		}

		exposuresMode := queryString(c, "exposures_mode", models.ExposuresModeLatest)
		if !models.ValidExposuresMode(exposuresMode) {
			respondInvalidArgs(c, "exposures_mode must be one of none, latest, last_n")
			return
		}

		opts := models.BundleOptions{
			Kind: kind,
			ID:   id,

			IncludeInterdeps:   queryFlag(c, "include_interdeps", true),
			IncludeNotes:       queryFlag(c, "include_notes", true),
			IncludeAttachments: queryFlag(c, "include_attachments", true),
			IncludeWorkflow:    queryFlag(c, "include_workflow", true),
			IncludeAnalysis:    queryFlag(c, "include_analysis", true),

			ExposuresMode: exposuresMode,
			ExposuresN:    queryInt(c, "exposures_n", 12),
		}

		bundle, err := models.BuildFocusBundle(c.Request.Context(), opts)
		if err != nil {
			respondScopeError(c, kind, "bundle", "focusBundleHandler", err)
			return
		}
		c.JSON(http.StatusOK, bundle)
	}
}
