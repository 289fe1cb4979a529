// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/coupledelight/shop-api/internal/domain/cart"
	"github.com/coupledelight/shop-api/internal/domain/product"
	"github.com/coupledelight/shop-api/internal/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// CartHandler handles session cart endpoints
type CartHandler struct {
	products *product.Service
	sessions *CartSessions
}

// NewCartHandler creates a new cart handler
func NewCartHandler(products *product.Service, sessions *CartSessions) *CartHandler {
	return &CartHandler{products: products, sessions: sessions}
}

// AddToCartRequest is the body of POST /cart/items
type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// UpdateCartItemRequest is the body of PUT /cart/items/:productId
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func cartView(store *cart.Store) gin.H {
	snapshot := store.Snapshot()
	return gin.H{
		"items":    snapshot,
		"subtotal": snapshot.Subtotal(),
		"count":    snapshot.ItemCount(),
		"is_open":  store.IsOpen(),
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	store := h.sessions.open(c)
	c.JSON(http.StatusOK, gin.H{"cart": cartView(store)})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	p, err := h.products.GetByID(c.Request.Context(), req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !p.IsInStock() {
		respondError(c, apperror.Conflict("Product is out of stock"))
		return
	}

	store := h.sessions.open(c)
	store.AddItem(c.Request.Context(), p.CartCandidate())

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart",
		"cart":    cartView(store),
	})
}

// UpdateCartItem handles PUT /cart/items/:productId
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	store := h.sessions.open(c)
	store.SetQuantity(c.Request.Context(), c.Param("productId"), *req.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated",
		"cart":    cartView(store),
	})
}

// RemoveFromCart handles DELETE /cart/items/:productId
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	store := h.sessions.open(c)
	store.RemoveItem(c.Request.Context(), c.Param("productId"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart",
		"cart":    cartView(store),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	store := h.sessions.open(c)
	store.Clear(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared",
		"cart":    cartView(store),
	})
}
