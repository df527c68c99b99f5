package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"beautycrave/config"
	"beautycrave/utils"
)

const ownerSubject = "owner"

// OwnerLoginHandler authenticates the studio owner and issues a session
// token. There is exactly one operator account, configured out of band.
func OwnerLoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	cfg := config.AppConfig
	if !strings.EqualFold(req.Email, cfg.OwnerEmail) ||
		bcrypt.CompareHashAndPassword([]byte(cfg.OwnerPasswordHash), []byte(req.Password)) != nil {
		logger.Warn("Owner login failed", zap.String("email", req.Email))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := utils.GenerateToken(ownerSubject, cfg.OwnerEmail, 24*time.Hour)
	if err != nil {
		logger.Error("Failed to sign session token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	// Store the token hash so logout can revoke the session.
	authCache := utils.GetAuthCacheClient()
	if authCache != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := authCache.Set(ctx, utils.AuthCachePrefix+ownerSubject, utils.HashToken(token), 24*time.Hour).Err(); err != nil {
			logger.Warn("Failed to cache owner session", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token, "expires_in": int((24 * time.Hour).Seconds())})
}

// OwnerLogoutHandler revokes the current owner session.
func OwnerLogoutHandler(c *gin.Context) {
	logger := getLogger(c)

	authCache := utils.GetAuthCacheClient()
	if authCache != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := authCache.Del(ctx, utils.AuthCachePrefix+ownerSubject).Err(); err != nil {
			logger.Warn("Failed to delete owner session", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
