package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shutterdesk/utils"
)

const operatorTokenPrefix = "operatorToken:"

// JWTAuthOperatorMiddleware guards operator endpoints. A request must carry
// a valid bearer token whose hash is still present in the auth cache;
// revoked or expired tokens are rejected even when their signature checks
// out.
func JWTAuthOperatorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		cacheKey := operatorTokenPrefix + utils.HashToken(tokenString)
		email, err := utils.GetAuthCacheClient().Get(c.Request.Context(), cacheKey).Result()
		if err != nil || email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked or expired"})
			return
		}

		c.Set("operatorEmail", email)
		c.Next()
	}
}
