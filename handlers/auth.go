package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"shutterdesk/config"
	"shutterdesk/utils"
)

const operatorTokenPrefix = "operatorToken:"
const operatorTokenTTL = 12 * time.Hour

// LoginOperatorHandler authenticates the studio operator and issues a JWT.
// The token's hash is stored in the auth cache; logout and expiry both
// revoke by removing the hash.
func LoginOperatorHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	cfg := config.AppConfig
	if cfg.OperatorEmail == "" || cfg.OperatorPasswordHash == "" {
		utils.JSONError(c, http.StatusServiceUnavailable, "operator login is not configured", "")
		return
	}
	if !strings.EqualFold(input.Email, cfg.OperatorEmail) {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cfg.OperatorPasswordHash), []byte(input.Password)); err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
		return
	}

	token, err := utils.GenerateToken(cfg.OperatorEmail, cfg.OperatorEmail, operatorTokenTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}

	cacheKey := operatorTokenPrefix + utils.HashToken(token)
	if err := utils.GetAuthCacheClient().Set(c.Request.Context(), cacheKey, cfg.OperatorEmail, operatorTokenTTL).Err(); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to store auth token", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "expiresIn": int(operatorTokenTTL.Seconds())})
}

// LogoutOperatorHandler revokes the presented token.
func LogoutOperatorHandler(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" || tokenString == authHeader {
		utils.JSONError(c, http.StatusBadRequest, "missing bearer token", "")
		return
	}
	cacheKey := operatorTokenPrefix + utils.HashToken(tokenString)
	if err := utils.GetAuthCacheClient().Del(c.Request.Context(), cacheKey).Err(); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to revoke token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"revoked": true})
}
