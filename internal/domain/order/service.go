// internal/domain/order/service.go
package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/coupledelight/shop-api/internal/pkg/apperror"
	"github.com/coupledelight/shop-api/internal/pkg/validation"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Service records orders and answers order lookups
type Service struct {
	repo    Repository
	numbers NumberSource
	logger  logrus.FieldLogger
}

// NewService creates a new order intake service
func NewService(repo Repository, numbers NumberSource, logger logrus.FieldLogger) *Service {
	return &Service{
		repo:    repo,
		numbers: numbers,
		logger:  logger.WithField("component", "orders"),
	}
}

// Validate checks a creation request without touching storage. The shipping
// address is normalized in place.
func Validate(req *CreateRequest) error {
	if len(req.Items) == 0 {
		return apperror.Validation("Order must contain at least one item")
	}
	for i, item := range req.Items {
		if err := validation.Struct(item); err != nil {
			return apperror.Validation(fmt.Sprintf("Item %d: %s", i+1, err.Error()))
		}
		if item.Price.IsNegative() {
			return apperror.Validation(fmt.Sprintf("Item %d: price must not be negative", i+1))
		}
	}

	req.ShippingAddress = req.ShippingAddress.Normalize()
	if err := validation.Struct(req.ShippingAddress); err != nil {
		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			return apperror.ValidationFields("Complete shipping address is required", appErr.Fields)
		}
		return apperror.Validation("Complete shipping address is required")
	}

	if !req.PaymentMethod.IsValid() {
		return apperror.Validation("Valid payment method is required")
	}

	amounts := []struct {
		name  string
		value decimal.Decimal
	}{
		{"subtotal", req.Subtotal},
		{"tax", req.Tax},
		{"shipping_cost", req.ShippingCost},
		{"total", req.Total},
	}
	for _, amount := range amounts {
		if amount.value.IsNegative() {
			return apperror.Validation(amount.name + " must not be negative")
		}
	}

	return nil
}

// Create validates and records a new order. A colliding order number is
// reported as apperror.ErrDuplicateOrderNumber; callers decide whether to retry.
func (s *Service) Create(ctx context.Context, requester Requester, req *CreateRequest) (*Receipt, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	order := &Order{
		OrderNumber:     s.numbers.Next(),
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   req.PaymentMethod.InitialPaymentStatus(),
		OrderStatus:     OrderStatusPending,
		Subtotal:        req.Subtotal,
		Tax:             req.Tax,
		ShippingCost:    req.ShippingCost,
		Total:           req.Total,
		Notes:           strings.TrimSpace(req.Notes),
		Items:           make([]OrderItem, 0, len(req.Items)),
	}
	if userID, ok := requester.UserID(); ok {
		owner := userID
		order.OwnerID = &owner
	}
	for _, item := range req.Items {
		order.Items = append(order.Items, OrderItem{
			ProductID: strings.TrimSpace(item.ProductID),
			Name:      strings.TrimSpace(item.Name),
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
		})
	}

	if err := s.repo.Create(ctx, order); err != nil {
		if errors.Is(err, apperror.ErrDuplicateOrderNumber) {
			s.logger.WithField("order_number", order.OrderNumber).Warn("Order number collision")
			return nil, err
		}
		s.logger.WithError(err).WithField("order_number", order.OrderNumber).Error("Failed to create order")
		return nil, apperror.Storage("create order", err)
	}

	s.logger.WithFields(logrus.Fields{
		"order_number":   order.OrderNumber,
		"payment_method": order.PaymentMethod,
		"total":          order.Total.String(),
		"guest":          order.OwnerID == nil,
	}).Info("Order created")

	return &Receipt{
		OrderNumber: order.OrderNumber,
		Total:       order.Total,
		OrderStatus: order.OrderStatus,
	}, nil
}

// List returns the signed-in user's orders, or the orders shipped to email for
// guests. Guests without an email are rejected.
func (s *Service) List(ctx context.Context, requester Requester, email string) ([]Order, error) {
	var (
		orders []Order
		err    error
	)

	email = strings.ToLower(strings.TrimSpace(email))
	if userID, ok := requester.UserID(); ok {
		orders, err = s.repo.ListByOwner(ctx, userID)
	} else if email != "" {
		orders, err = s.repo.ListByEmail(ctx, email)
	} else {
		return nil, apperror.Unauthorized("Unauthorized. Please login or provide email.")
	}

	if err != nil {
		s.logger.WithError(err).Error("Failed to fetch orders")
		return nil, apperror.Storage("fetch orders", err)
	}
	if orders == nil {
		orders = []Order{}
	}
	return orders, nil
}

// Get returns one order if the requester owns it or knows its shipping email.
// Every other case is reported as not found.
func (s *Service) Get(ctx context.Context, requester Requester, orderNumber, email string) (*Order, error) {
	order, err := s.repo.FindByNumber(ctx, strings.TrimSpace(orderNumber))
	if errors.Is(err, ErrNotFound) {
		return nil, apperror.NotFound("Order")
	}
	if err != nil {
		s.logger.WithError(err).WithField("order_number", orderNumber).Error("Failed to fetch order")
		return nil, apperror.Storage("fetch order", err)
	}

	if userID, ok := requester.UserID(); ok && order.IsOwnedBy(userID) {
		return order, nil
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email != "" && order.ShippingAddress.Email == email {
		return order, nil
	}

	return nil, apperror.NotFound("Order")
}
