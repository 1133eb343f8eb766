package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/cibdesk/interlinkages_backend/config"
	"github.com/cibdesk/interlinkages_backend/models"
	"github.com/cibdesk/interlinkages_backend/utils"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/login
func loginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondInvalidArgs(c, "username and password are required")
			return
		}

		user, err := models.AuthenticateUser(ctx, req.Username, req.Password)
		if err != nil {
			if errors.Is(err, utils.ErrorRecordNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized", "message": "invalid credentials"})
				return
			}
			respondServerError(c, "auth", "loginHandler", err)
			return
		}

		token, err := utils.JwtGenerate(user.ID, user.Role)
		if err != nil {
			respondServerError(c, "auth", "loginHandler", err)
			return
		}

		// best effort, login works without redis
		_ = config.SetRedisValue("Token:"+token, user.Username, 24*time.Hour)

		c.JSON(http.StatusOK, gin.H{
			"token": token,
			"user":  user,
		})
	}
}

// GET /api/me
func meHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		userID, ok := utils.GetUserIdFromContext(ctx)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized", "message": "login required"})
			return
		}
		user, err := utils.FetchModel[models.User](ctx, userID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized", "message": "unknown user"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// POST /api/logout
//
// Drops the redis session row. The JWT itself stays valid until it
// expires.
func logoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token, ok := utils.GetTokenFromContext(ctx)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized", "message": "login required"})
			return
		}
		if err := config.RemoveRedisKey("Token:" + token); err != nil {
			respondServerError(c, "auth", "logoutHandler", err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
