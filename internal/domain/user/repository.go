// internal/domain/user/repository.go
package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no user matches
	ErrNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when the email is already registered
	ErrEmailTaken = errors.New("email already registered")
)

// Repository persists users
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	Save(ctx context.Context, u *User) error
}

// GormRepository stores users in PostgreSQL
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a gorm backed user repository
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Create inserts a user
func (r *GormRepository) Create(ctx context.Context, u *User) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByEmail looks a user up by normalized email
func (r *GormRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.first(ctx, "email = ?", NormalizeEmail(email))
}

// FindByID looks a user up by id
func (r *GormRepository) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *GormRepository) first(ctx context.Context, where string, arg any) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).Where(where, arg).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return &u, nil
}

// Save updates every column of u
func (r *GormRepository) Save(ctx context.Context, u *User) error {
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}
