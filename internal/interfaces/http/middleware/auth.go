// internal/interfaces/http/middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/coupledelight/shop-api/internal/pkg/auth"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextUserID is the gin context key holding the caller's uuid.UUID
const ContextUserID = "user_id"

// AuthMiddleware rejects requests without a valid access token
func AuthMiddleware(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header required",
			})
			return
		}

		tokenString := auth.ExtractTokenFromHeader(authHeader)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization header format",
			})
			return
		}

		claims, err := jwtManager.ValidateAccessToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the caller's identity when a valid token is
// present and otherwise lets the request through as a guest
func OptionalAuthMiddleware(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := auth.ExtractTokenFromHeader(c.GetHeader("Authorization")); tokenString != "" {
			if claims, err := jwtManager.ValidateAccessToken(tokenString); err == nil {
				setClaims(c, claims)
			}
		}
		c.Next()
	}
}

func setClaims(c *gin.Context, claims *auth.Claims) {
	c.Set(ContextUserID, claims.UserID)
}

// GetUserIDFromContext extracts the authenticated user id
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok && id != uuid.Nil
}
