// internal/domain/cart/entity.go
package cart

import (
	"github.com/shopspring/decimal"
)

// LineItem is one product in the cart with its chosen quantity.
// Name, UnitPrice, Image and StockLimit are captured when the product is first added.
type LineItem struct {
	ProductID  string          `json:"product_id"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Image      string          `json:"image,omitempty"`
	Quantity   int             `json:"quantity"`
	StockLimit int             `json:"stock_limit"`
}

// LineTotal returns UnitPrice * Quantity
func (i LineItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Candidate describes a product about to be added to the cart
type Candidate struct {
	ProductID  string
	Name       string
	UnitPrice  decimal.Decimal
	Image      string
	StockLimit int
}

// Snapshot is a read-only copy of the cart contents in insertion order
type Snapshot []LineItem

// Subtotal sums the line totals
func (s Snapshot) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s {
		total = total.Add(item.LineTotal())
	}
	return total
}

// ItemCount sums the quantities
func (s Snapshot) ItemCount() int {
	count := 0
	for _, item := range s {
		count += item.Quantity
	}
	return count
}

// IsEmpty reports whether the snapshot has no lines
func (s Snapshot) IsEmpty() bool {
	return len(s) == 0
}
