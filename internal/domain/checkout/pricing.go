// internal/domain/checkout/pricing.go
package checkout

import (
	"github.com/coupledelight/shop-api/internal/domain/cart"
	"github.com/shopspring/decimal"
)

var (
	// TaxRate is the flat GST applied to the subtotal
	TaxRate = decimal.RequireFromString("0.18")
	// FreeShippingThreshold: subtotals strictly above this ship free
	FreeShippingThreshold = decimal.NewFromInt(1000)
	// ShippingFee charged at or below the threshold
	ShippingFee = decimal.NewFromInt(50)
)

// Pricing is the price breakdown of a cart
type Pricing struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	Tax          decimal.Decimal `json:"tax"`
	ShippingCost decimal.Decimal `json:"shipping_cost"`
	Total        decimal.Decimal `json:"total"`
}

// Quote prices a cart snapshot. Tax is rounded to whole currency units, half
// away from zero.
//
// TODO: use Product.Taxable and Product.TaxRate per line once cart lines carry
// them; today every line is taxed at the flat rate.
func Quote(snapshot cart.Snapshot) Pricing {
	subtotal := snapshot.Subtotal()
	tax := subtotal.Mul(TaxRate).Round(0)

	shipping := ShippingFee
	if subtotal.GreaterThan(FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	return Pricing{
		Subtotal:     subtotal,
		Tax:          tax,
		ShippingCost: shipping,
		Total:        subtotal.Add(tax).Add(shipping),
	}
}
