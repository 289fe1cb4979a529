// internal/domain/product/repository.go
package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned by repositories when no row matches
var ErrNotFound = errors.New("product not found")

// searchCondition matches the term against each tag element, not the
// serialized JSON array, so it agrees with Criteria.Matches.
const searchCondition = "name ILIKE ? OR description ILIKE ? OR brand ILIKE ? OR " +
	"EXISTS (SELECT 1 FROM jsonb_array_elements_text(tags) AS tag WHERE tag ILIKE ?)"

// Repository reads products from storage
type Repository interface {
	Find(ctx context.Context, c Criteria) ([]Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
}

// GormRepository is the PostgreSQL product repository
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a gorm backed repository
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Find returns products matching c in the requested order
func (r *GormRepository) Find(ctx context.Context, c Criteria) ([]Product, error) {
	query := r.db.WithContext(ctx).Model(&Product{}).Where("status = ?", c.Status)

	if c.Category != "" {
		query = query.Where("category = ?", c.Category)
	}
	if c.FeaturedOnly {
		query = query.Where("featured = ?", true)
	}
	if c.Search != "" {
		pattern := likePattern(c.Search)
		query = query.Where(searchCondition, pattern, pattern, pattern, pattern)
	}

	query = query.Order(c.OrderClause())
	if limit := c.StorageLimit(); limit > 0 {
		query = query.Limit(limit)
	}

	var products []Product
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	return products, nil
}

// FindByID returns the product with id, or ErrNotFound
func (r *GormRepository) FindByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	var product Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}
	return &product, nil
}
