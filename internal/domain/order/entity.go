// internal/domain/order/entity.go
package order

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the fulfilment status
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// PaymentStatus represents payment status
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// PaymentMethod chosen at checkout
type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodUPI  PaymentMethod = "upi"
	PaymentMethodCOD  PaymentMethod = "cod"
)

// IsValid reports whether m is an accepted payment method
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodUPI, PaymentMethodCOD:
		return true
	}
	return false
}

// InitialPaymentStatus is pending for cash on delivery and paid otherwise.
// No gateway confirmation happens before the order is recorded.
func (m PaymentMethod) InitialPaymentStatus() PaymentStatus {
	if m == PaymentMethodCOD {
		return PaymentStatusPending
	}
	return PaymentStatusPaid
}

// ShippingAddress is where an order is delivered
type ShippingAddress struct {
	FullName string `gorm:"size:255;not null" json:"full_name" validate:"notblank"`
	Email    string `gorm:"size:255;not null;index" json:"email" validate:"notblank"`
	Phone    string `gorm:"size:30;not null" json:"phone" validate:"notblank"`
	Address  string `gorm:"type:text;not null" json:"address" validate:"notblank"`
	City     string `gorm:"size:100;not null" json:"city" validate:"notblank"`
	State    string `gorm:"size:100;not null" json:"state" validate:"notblank"`
	Pincode  string `gorm:"size:10;not null" json:"pincode" validate:"notblank"`
}

// Normalize trims every field and lower-cases the email
func (a ShippingAddress) Normalize() ShippingAddress {
	return ShippingAddress{
		FullName: strings.TrimSpace(a.FullName),
		Email:    strings.ToLower(strings.TrimSpace(a.Email)),
		Phone:    strings.TrimSpace(a.Phone),
		Address:  strings.TrimSpace(a.Address),
		City:     strings.TrimSpace(a.City),
		State:    strings.TrimSpace(a.State),
		Pincode:  strings.TrimSpace(a.Pincode),
	}
}

// Order represents a placed order
type Order struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	OrderNumber string     `gorm:"uniqueIndex;not null;size:50" json:"order_number"`
	OwnerID     *uuid.UUID `gorm:"type:uuid;index" json:"owner_id,omitempty"` // nil for guest orders

	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`

	PaymentMethod PaymentMethod `gorm:"not null;size:10" json:"payment_method"`
	PaymentStatus PaymentStatus `gorm:"not null;size:20;default:'pending';index" json:"payment_status"`
	OrderStatus   OrderStatus   `gorm:"not null;size:20;default:'pending';index" json:"order_status"`

	Subtotal     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"subtotal"`
	Tax          decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"tax"`
	ShippingCost decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"shipping_cost"`
	Total        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`

	Notes          string `gorm:"type:text" json:"notes,omitempty"`
	TrackingNumber string `gorm:"size:100" json:"tracking_number,omitempty"`
	CancelReason   string `gorm:"type:text" json:"cancel_reason,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderItem is a copy of a cart line taken when the order was placed
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"-"`
	OrderID   uint            `gorm:"not null;index" json:"-"`
	ProductID string          `gorm:"not null;size:64;index" json:"product_id"`
	Name      string          `gorm:"not null;size:255" json:"name"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Image     string          `gorm:"size:500" json:"image,omitempty"`
}

// LineTotal returns Price * Quantity
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// IsOwnedBy reports whether the order belongs to the given user
func (o *Order) IsOwnedBy(userID uuid.UUID) bool {
	return o.OwnerID != nil && *o.OwnerID == userID
}

// ItemInput is one line of an order creation request
type ItemInput struct {
	ProductID string          `json:"product_id" validate:"notblank"`
	Name      string          `json:"name" validate:"notblank"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity" validate:"gte=1"`
	Image     string          `json:"image"`
}

// CreateRequest carries a fully priced order. Totals are trusted as given.
type CreateRequest struct {
	Items           []ItemInput     `json:"items"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Tax             decimal.Decimal `json:"tax"`
	ShippingCost    decimal.Decimal `json:"shipping_cost"`
	Total           decimal.Decimal `json:"total"`
	Notes           string          `json:"notes"`
}

// Receipt is returned to the shopper after an order is recorded
type Receipt struct {
	OrderNumber string          `json:"order_number"`
	Total       decimal.Decimal `json:"total"`
	OrderStatus OrderStatus     `json:"order_status"`
}
