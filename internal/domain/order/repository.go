// internal/domain/order/repository.go
package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/coupledelight/shop-api/internal/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned by repositories when no order matches
var ErrNotFound = errors.New("order not found")

// Repository persists orders.
// Create must report a taken order number as apperror.ErrDuplicateOrderNumber.
type Repository interface {
	Create(ctx context.Context, order *Order) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Order, error)
	ListByEmail(ctx context.Context, email string) ([]Order, error)
	FindByNumber(ctx context.Context, orderNumber string) (*Order, error)
}

// GormRepository stores orders in PostgreSQL. The *gorm.DB must be opened
// with TranslateError so unique violations surface as gorm.ErrDuplicatedKey.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a gorm backed order repository
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Create inserts the order and its items in one transaction
func (r *GormRepository) Create(ctx context.Context, order *Order) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("order %s: %w", order.OrderNumber, apperror.ErrDuplicateOrderNumber)
	}
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// ListByOwner returns a user's orders, newest first
func (r *GormRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Order, error) {
	return r.list(ctx, "owner_id = ?", ownerID)
}

// ListByEmail returns orders shipped to email, newest first
func (r *GormRepository) ListByEmail(ctx context.Context, email string) ([]Order, error) {
	return r.list(ctx, "shipping_email = ?", email)
}

func (r *GormRepository) list(ctx context.Context, where string, arg any) ([]Order, error) {
	var orders []Order
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Where(where, arg).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}
	return orders, nil
}

// FindByNumber returns the order with the given number, or ErrNotFound
func (r *GormRepository) FindByNumber(ctx context.Context, orderNumber string) (*Order, error) {
	var order Order
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Where("order_number = ?", orderNumber).
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve order: %w", err)
	}
	return &order, nil
}
