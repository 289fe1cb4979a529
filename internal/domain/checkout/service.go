// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"

	"github.com/coupledelight/shop-api/internal/domain/cart"
	"github.com/coupledelight/shop-api/internal/domain/order"
	"github.com/coupledelight/shop-api/internal/pkg/apperror"
	"github.com/sirupsen/logrus"
)

// MaxSubmitAttempts bounds retries after order number collisions
const MaxSubmitAttempts = 3

// Details is what the shopper enters on the checkout form
type Details struct {
	ShippingAddress order.ShippingAddress `json:"shipping_address"`
	PaymentMethod   order.PaymentMethod   `json:"payment_method"`
	Notes           string                `json:"notes"`
}

// Prepare turns a cart and checkout details into a priced order request.
// Nothing is returned unless every check passes.
func Prepare(snapshot cart.Snapshot, details Details) (*order.CreateRequest, error) {
	if snapshot.IsEmpty() {
		return nil, apperror.Validation("Your cart is empty")
	}

	pricing := Quote(snapshot)
	req := &order.CreateRequest{
		Items:           make([]order.ItemInput, 0, len(snapshot)),
		ShippingAddress: details.ShippingAddress,
		PaymentMethod:   details.PaymentMethod,
		Subtotal:        pricing.Subtotal,
		Tax:             pricing.Tax,
		ShippingCost:    pricing.ShippingCost,
		Total:           pricing.Total,
		Notes:           details.Notes,
	}
	for _, line := range snapshot {
		req.Items = append(req.Items, order.ItemInput{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.UnitPrice,
			Quantity:  line.Quantity,
			Image:     line.Image,
		})
	}

	if err := order.Validate(req); err != nil {
		return nil, err
	}
	return req, nil
}

// OrderCreator records orders
type OrderCreator interface {
	Create(ctx context.Context, requester order.Requester, req *order.CreateRequest) (*order.Receipt, error)
}

// Service runs checkout on the server side
type Service struct {
	orders OrderCreator
	logger logrus.FieldLogger
}

// NewService creates a new checkout service
func NewService(orders OrderCreator, logger logrus.FieldLogger) *Service {
	return &Service{
		orders: orders,
		logger: logger.WithField("component", "checkout"),
	}
}

// Submit creates the order, retrying with a fresh order number when the
// generated one is already taken. Running out of attempts is a storage error.
func (s *Service) Submit(ctx context.Context, requester order.Requester, req *order.CreateRequest) (*order.Receipt, error) {
	var err error
	for attempt := 1; attempt <= MaxSubmitAttempts; attempt++ {
		var receipt *order.Receipt
		receipt, err = s.orders.Create(ctx, requester, req)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, apperror.ErrDuplicateOrderNumber) {
			return nil, err
		}
		s.logger.WithField("attempt", attempt).Warn("Retrying order with a new order number")
	}
	return nil, apperror.Storage("create order", err)
}

// PlaceOrder checks out the given cart. The cart is cleared only after the
// order has been recorded.
func (s *Service) PlaceOrder(ctx context.Context, requester order.Requester, store *cart.Store, details Details) (*order.Receipt, error) {
	req, err := Prepare(store.Snapshot(), details)
	if err != nil {
		return nil, err
	}

	receipt, err := s.Submit(ctx, requester, req)
	if err != nil {
		return nil, err
	}

	store.Clear(ctx)
	store.Close()
	return receipt, nil
}
