// internal/domain/checkout/features_test.go
package checkout_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/coupledelight/shop-api/internal/domain/cart"
	"github.com/coupledelight/shop-api/internal/domain/checkout"
	"github.com/coupledelight/shop-api/internal/domain/order"
	"github.com/coupledelight/shop-api/internal/pkg/apperror"
	"github.com/coupledelight/shop-api/internal/pkg/logger"
	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"
)

type memoryCartStorage map[string][]byte

func (m memoryCartStorage) Load(_ context.Context, key string) ([]byte, error) { return m[key], nil }

func (m memoryCartStorage) Save(_ context.Context, key string, data []byte) error {
	m[key] = data
	return nil
}

type recordingCreator struct {
	placed []*order.CreateRequest
}

func (r *recordingCreator) Create(_ context.Context, _ order.Requester, req *order.CreateRequest) (*order.Receipt, error) {
	if err := order.Validate(req); err != nil {
		return nil, err
	}
	r.placed = append(r.placed, req)
	return &order.Receipt{OrderNumber: fmt.Sprintf("ORD-FEAT-%04d", len(r.placed)), Total: req.Total, OrderStatus: order.OrderStatusPending}, nil
}

type checkoutTestContext struct {
	ctx      context.Context
	products map[string]cart.Candidate
	store    *cart.Store
	creator  *recordingCreator
	service  *checkout.Service
	pricing  checkout.Pricing
	receipt  *order.Receipt
	err      error
}

func (c *checkoutTestContext) reset() {
	c.ctx = context.Background()
	c.products = map[string]cart.Candidate{}
	c.store = nil
	c.creator = &recordingCreator{}
	c.service = checkout.NewService(c.creator, logger.Discard())
	c.pricing = checkout.Pricing{}
	c.receipt = nil
	c.err = nil
}

func (c *checkoutTestContext) anEmptyCart() error {
	c.store = cart.NewStore(c.ctx, memoryCartStorage{}, cart.SessionKey("feature"), logger.Discard())
	return nil
}

func (c *checkoutTestContext) aProductPricedWithInStock(id string, price, stock int) error {
	c.products[id] = cart.Candidate{
		ProductID:  id,
		Name:       id,
		UnitPrice:  decimal.NewFromInt(int64(price)),
		StockLimit: stock,
	}
	return nil
}

func (c *checkoutTestContext) iAddToTheCartTimes(id string, times int) error {
	candidate, ok := c.products[id]
	if !ok {
		return fmt.Errorf("unknown product %q", id)
	}
	for i := 0; i < times; i++ {
		c.store.AddItem(c.ctx, candidate)
	}
	return nil
}

func (c *checkoutTestContext) iSetTheQuantityOfTo(id string, quantity int) error {
	c.store.SetQuantity(c.ctx, id, quantity)
	return nil
}

func (c *checkoutTestContext) theCartContainsOf(quantity int, id string) error {
	for _, line := range c.store.Snapshot() {
		if line.ProductID == id {
			if line.Quantity != quantity {
				return fmt.Errorf("expected %d of %s, got %d", quantity, id, line.Quantity)
			}
			return nil
		}
	}
	return fmt.Errorf("cart does not contain %s", id)
}

func (c *checkoutTestContext) theCartIsEmpty() error {
	if n := len(c.store.Snapshot()); n != 0 {
		return fmt.Errorf("expected empty cart, got %d lines", n)
	}
	return nil
}

func (c *checkoutTestContext) iRequestAQuote() error {
	c.pricing = checkout.Quote(c.store.Snapshot())
	return nil
}

func expectAmount(name string, got decimal.Decimal, want int) error {
	if !got.Equal(decimal.NewFromInt(int64(want))) {
		return fmt.Errorf("expected %s %d, got %s", name, want, got)
	}
	return nil
}

func (c *checkoutTestContext) theSubtotalIs(v int) error {
	return expectAmount("subtotal", c.pricing.Subtotal, v)
}

func (c *checkoutTestContext) theTaxIs(v int) error {
	return expectAmount("tax", c.pricing.Tax, v)
}

func (c *checkoutTestContext) theShippingCostIs(v int) error {
	return expectAmount("shipping cost", c.pricing.ShippingCost, v)
}

func (c *checkoutTestContext) theTotalIs(v int) error {
	return expectAmount("total", c.pricing.Total, v)
}

func details(method string) checkout.Details {
	return checkout.Details{
		ShippingAddress: order.ShippingAddress{
			FullName: "Asha Rao",
			Email:    "asha@example.com",
			Phone:    "9876543210",
			Address:  "12 MG Road",
			City:     "Bengaluru",
			State:    "Karnataka",
			Pincode:  "560001",
		},
		PaymentMethod: order.PaymentMethod(method),
	}
}

func (c *checkoutTestContext) iCheckOutPayingBy(method string) error {
	c.receipt, c.err = c.service.PlaceOrder(c.ctx, order.Guest(), c.store, details(method))
	return nil
}

func (c *checkoutTestContext) iCheckOutWithABlankPayingBy(field, method string) error {
	d := details(method)
	switch field {
	case "full_name":
		d.ShippingAddress.FullName = " "
	case "email":
		d.ShippingAddress.Email = " "
	case "phone":
		d.ShippingAddress.Phone = " "
	case "address":
		d.ShippingAddress.Address = " "
	case "city":
		d.ShippingAddress.City = " "
	case "state":
		d.ShippingAddress.State = " "
	case "pincode":
		d.ShippingAddress.Pincode = " "
	default:
		return fmt.Errorf("unknown address field %q", field)
	}
	c.receipt, c.err = c.service.PlaceOrder(c.ctx, order.Guest(), c.store, d)
	return nil
}

func (c *checkoutTestContext) theCheckoutIsRejectedAsInvalid() error {
	if !apperror.IsKind(c.err, apperror.KindValidation) {
		return fmt.Errorf("expected validation error, got %v", c.err)
	}
	return nil
}

func (c *checkoutTestContext) noOrderIsPlaced() error {
	if len(c.creator.placed) != 0 {
		return fmt.Errorf("expected no orders, got %d", len(c.creator.placed))
	}
	return nil
}

func (c *checkoutTestContext) anOrderIsPlacedWithTotal(total int) error {
	if c.err != nil {
		return fmt.Errorf("expected order but got error: %v", c.err)
	}
	if len(c.creator.placed) != 1 {
		return fmt.Errorf("expected 1 order, got %d", len(c.creator.placed))
	}
	return expectAmount("order total", c.receipt.Total, total)
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &checkoutTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^an empty cart$`, tc.anEmptyCart)
	ctx.Step(`^a product "([^"]*)" priced (\d+) with (\d+) in stock$`, tc.aProductPricedWithInStock)

	// When steps
	ctx.Step(`^I add "([^"]*)" to the cart (\d+) times$`, tc.iAddToTheCartTimes)
	ctx.Step(`^I set the quantity of "([^"]*)" to (-?\d+)$`, tc.iSetTheQuantityOfTo)
	ctx.Step(`^I request a quote$`, tc.iRequestAQuote)
	ctx.Step(`^I check out paying by "([^"]*)"$`, tc.iCheckOutPayingBy)
	ctx.Step(`^I check out with a blank "([^"]*)" paying by "([^"]*)"$`, tc.iCheckOutWithABlankPayingBy)

	// Then steps
	ctx.Step(`^the cart contains (\d+) of "([^"]*)"$`, tc.theCartContainsOf)
	ctx.Step(`^the cart is empty$`, tc.theCartIsEmpty)
	ctx.Step(`^the subtotal is (\d+)$`, tc.theSubtotalIs)
	ctx.Step(`^the tax is (\d+)$`, tc.theTaxIs)
	ctx.Step(`^the shipping cost is (\d+)$`, tc.theShippingCostIs)
	ctx.Step(`^the total is (\d+)$`, tc.theTotalIs)
	ctx.Step(`^the checkout is rejected as invalid$`, tc.theCheckoutIsRejectedAsInvalid)
	ctx.Step(`^no order is placed$`, tc.noOrderIsPlaced)
	ctx.Step(`^an order is placed with total (\d+)$`, tc.anOrderIsPlacedWithTotal)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../../../features/checkout.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
