package main

import (
	"net/http"

	"github.com/cibdesk/interlinkages_backend/models"
	"github.com/gin-gonic/gin"
)

// POST /api/analysis/concentration/shared-dependencies
//
// Clusters the scope's interdependence edges by the configured key and
// reports the clusters shared by at least min_cluster interlinkages.
func sharedDependenciesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var params models.ConcentrationParams
		if err := c.ShouldBindJSON(&params); err != nil {
			respondInvalidArgs(c, "malformed request body")
			return
		}
		params.Normalize()
		if hint := params.Validate(); hint != "" {
			respondInvalidArgs(c, hint)
			return
		}

		result, err := models.AnalyzeSharedDependencies(c.Request.Context(), params)
		if err != nil {
			respondScopeError(c, params.PovKind, "analysis", "sharedDependenciesHandler", err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// POST /api/analysis/expiry-monitoring
//
// Buckets a project's interlinkages by calendar days to maturity and
// aggregates count plus per-currency notional totals per bucket.
func expiryMonitoringHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var params models.ExpiryParams
		if err := c.ShouldBindJSON(&params); err != nil {
			respondInvalidArgs(c, "malformed request body")
			return
		}
		params.Normalize()
		if hint := params.Validate(); hint != "" {
			respondInvalidArgs(c, hint)
			return
		}

		result, err := models.MonitorExpiry(c.Request.Context(), params)
		if err != nil {
			respondScopeError(c, models.PovKindProject, "analysis", "expiryMonitoringHandler", err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
