// internal/interfaces/http/handlers/order.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/coupledelight/shop-api/internal/domain/order"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ReceiptGenerator renders an order receipt document
type ReceiptGenerator interface {
	GenerateReceipt(o *order.Order) ([]byte, error)
}

// OrderHandler handles order endpoints
type OrderHandler struct {
	orders   *order.Service
	receipts ReceiptGenerator
	logger   logrus.FieldLogger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orders *order.Service, receipts ReceiptGenerator, logger logrus.FieldLogger) *OrderHandler {
	return &OrderHandler{orders: orders, receipts: receipts, logger: logger}
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req order.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	receipt, err := h.orders.Create(c.Request.Context(), requester(c), &req)
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

// GetOrders handles GET /orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context(), requester(c), c.Query("email"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"count":  len(orders),
	})
}

// GetOrder handles GET /orders/:orderNumber
func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, err := h.orders.Get(c.Request.Context(), requester(c), c.Param("orderNumber"), c.Query("email"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": o})
}

// GetReceipt handles GET /orders/:orderNumber/receipt
func (h *OrderHandler) GetReceipt(c *gin.Context) {
	o, err := h.orders.Get(c.Request.Context(), requester(c), c.Param("orderNumber"), c.Query("email"))
	if err != nil {
		respondError(c, err)
		return
	}

	pdf, err := h.receipts.GenerateReceipt(o)
	if err != nil {
		h.logger.WithError(err).WithField("order_number", o.OrderNumber).Error("Failed to generate receipt")
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate receipt",
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", o.OrderNumber))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
