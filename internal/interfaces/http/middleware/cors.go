// internal/interfaces/http/middleware/cors.go
package middleware

import (
	"time"

	"github.com/coupledelight/shop-api/internal/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS returns the cross-origin policy for the storefront. Credentials are
// allowed so the cart session cookie travels with API calls.
func CORS(cfg *config.Config) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     cfg.Security.CORSAllowedOrigins,
		AllowMethods:     cfg.Security.CORSAllowedMethods,
		AllowHeaders:     cfg.Security.CORSAllowedHeaders,
		ExposeHeaders:    []string{RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		AllowWildcard:    true,
		MaxAge:           24 * time.Hour,
	})
}
