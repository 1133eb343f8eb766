package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cibdesk/interlinkages_backend/config"
	"github.com/cibdesk/interlinkages_backend/models"
	"github.com/cibdesk/interlinkages_backend/utils"
	"github.com/gin-gonic/gin"
)

/* response helpers, one error taxonomy for all endpoints */

func respondInvalidArgs(c *gin.Context, hint string) {
	body := gin.H{"error": "invalid_args"}
	if hint != "" {
		body["hint"] = hint
	}
	c.JSON(http.StatusBadRequest, body)
}

func respondNotFound(c *gin.Context, entity string) {
	c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "entity": entity})
}

func respondServerError(c *gin.Context, moduleName string, funcName string, err error) {
	cid, _ := utils.GetCorrelationIdFromContext(c.Request.Context())
	config.LogError(config.GetLogger(), moduleName, funcName, cid, nil, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error", "message": err.Error()})
}

// map a store error from a pov lookup to the response taxonomy
func respondScopeError(c *gin.Context, povKind string, moduleName string, funcName string, err error) {
	if errors.Is(err, utils.ErrorRecordNotFound) {
		respondNotFound(c, models.PovEntityName(povKind))
		return
	}
	respondServerError(c, moduleName, funcName, err)
}

/* query param helpers */

func queryFlag(c *gin.Context, name string, def bool) bool {
	value, ok := c.GetQuery(name)
	if !ok || value == "" {
		return def
	}
	return utils.ParseFlag(value)
}

func queryInt(c *gin.Context, name string, def int) int {
	value, ok := c.GetQuery(name)
	if !ok || value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

func queryString(c *gin.Context, name string, def string) string {
	value, ok := c.GetQuery(name)
	if !ok || value == "" {
		return def
	}
	return value
}
