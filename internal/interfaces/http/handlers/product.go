// internal/interfaces/http/handlers/product.go
package handlers

import (
	"net/http"

	"github.com/coupledelight/shop-api/internal/domain/product"
	"github.com/gin-gonic/gin"
)

// ProductHandler handles catalog endpoints
type ProductHandler struct {
	products *product.Service
}

// NewProductHandler creates a new product handler
func NewProductHandler(products *product.Service) *ProductHandler {
	return &ProductHandler{products: products}
}

// GetProducts handles GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	filter := product.FilterFromQuery(
		c.Query("category"),
		c.Query("search"),
		c.Query("featured"),
		c.Query("limit"),
		c.Query("sort"),
	)

	products, err := h.products.Query(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	p, err := h.products.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": p})
}
