// internal/interfaces/http/handlers/response.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/coupledelight/shop-api/internal/domain/order"
	"github.com/coupledelight/shop-api/internal/interfaces/http/middleware"
	"github.com/coupledelight/shop-api/internal/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// respondError writes err as {"error": ...}. Server-side failures are attached
// to the gin context so the request log carries the cause.
func respondError(c *gin.Context, err error) {
	status := apperror.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}

	body := gin.H{"error": apperror.PublicMessage(err)}
	var appErr *apperror.Error
	if errors.As(err, &appErr) && len(appErr.Fields) > 0 {
		body["details"] = appErr.Fields
	}
	c.JSON(status, body)
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Invalid request data",
		"details": err.Error(),
	})
}

// requester turns the optional bearer identity into an order.Requester
func requester(c *gin.Context) order.Requester {
	if userID, ok := middleware.GetUserIDFromContext(c); ok {
		return order.Authenticated(userID)
	}
	return order.Guest()
}
