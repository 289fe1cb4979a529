// internal/pkg/pdf/service_test.go
package pdf

import (
	"testing"
	"time"

	"github.com/coupledelight/shop-api/internal/config"
	"github.com/coupledelight/shop-api/internal/domain/order"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder() *order.Order {
	return &order.Order{
		OrderNumber: "ORD-LOYW3V28-0AZ0",
		Items: []order.OrderItem{
			{ProductID: "p1", Name: "Silk Glide <Lube>", Price: decimal.NewFromInt(399), Quantity: 2},
		},
		ShippingAddress: order.ShippingAddress{
			FullName: "Asha Rao", Email: "asha@example.com", Phone: "9999999999",
			Address: "12 MG Road", City: "Bengaluru", State: "KA", Pincode: "560001",
		},
		PaymentMethod: order.PaymentMethodCOD,
		PaymentStatus: order.PaymentStatusPending,
		OrderStatus:   order.OrderStatusPending,
		Subtotal:      decimal.NewFromInt(798),
		Tax:           decimal.NewFromInt(144),
		ShippingCost:  decimal.NewFromInt(50),
		Total:         decimal.NewFromInt(992),
		CreatedAt:     time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}
}

func TestRenderHTML(t *testing.T) {
	svc := NewService(&config.Config{Company: config.CompanyConfig{Name: "CoupleDelight", GSTIN: "29ABCDE1234F1Z5"}})
	svc.now = func() time.Time { return time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC) }

	html, err := svc.RenderHTML(testOrder())
	require.NoError(t, err)
	out := string(html)

	assert.Contains(t, out, "RCPT-ORD-LOYW3V28-0AZ0")
	assert.Contains(t, out, "March 14, 2026")
	assert.Contains(t, out, "GSTIN: 29ABCDE1234F1Z5")
	assert.Contains(t, out, "₹399.00")
	assert.Contains(t, out, "₹798.00")
	assert.Contains(t, out, "₹992.00")
	assert.Contains(t, out, "COD")
	assert.Contains(t, out, "Silk Glide &lt;Lube&gt;")
	assert.NotContains(t, out, "FREE")
}

func TestRenderHTML_FreeShipping(t *testing.T) {
	o := testOrder()
	o.ShippingCost = decimal.Zero

	html, err := NewService(&config.Config{}).RenderHTML(o)
	require.NoError(t, err)
	assert.Contains(t, string(html), "FREE")
	assert.NotContains(t, string(html), "GSTIN")
}
