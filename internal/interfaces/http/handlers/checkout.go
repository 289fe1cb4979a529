// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"net/http"

	"github.com/coupledelight/shop-api/internal/domain/checkout"
	"github.com/gin-gonic/gin"
)

// CheckoutHandler prices and places the session cart
type CheckoutHandler struct {
	checkout *checkout.Service
	sessions *CartSessions
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(svc *checkout.Service, sessions *CartSessions) *CheckoutHandler {
	return &CheckoutHandler{checkout: svc, sessions: sessions}
}

// GetQuote handles GET /checkout/quote
func (h *CheckoutHandler) GetQuote(c *gin.Context) {
	store := h.sessions.open(c)
	snapshot := store.Snapshot()

	c.JSON(http.StatusOK, gin.H{
		"items":   snapshot,
		"pricing": checkout.Quote(snapshot),
	})
}

// PlaceOrder handles POST /checkout
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var details checkout.Details
	if err := c.ShouldBindJSON(&details); err != nil {
		respondBindError(c, err)
		return
	}

	store := h.sessions.open(c)
	receipt, err := h.checkout.PlaceOrder(c.Request.Context(), requester(c), store, details)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Order placed successfully",
		"order":   receipt,
	})
}
