// internal/domain/product/service.go
package product

import (
	"context"
	"errors"

	"github.com/coupledelight/shop-api/internal/pkg/apperror"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Service answers storefront catalog queries. Only active products are ever
// returned.
type Service struct {
	repo   Repository
	logger logrus.FieldLogger
}

// NewService creates a new catalog service
func NewService(repo Repository, logger logrus.FieldLogger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.WithField("component", "catalog"),
	}
}

// Query returns the active products matching f
func (s *Service) Query(ctx context.Context, f Filter) ([]Product, error) {
	criteria := f.Normalize()

	found, err := s.repo.Find(ctx, criteria)
	if err != nil {
		s.logger.WithError(err).WithField("criteria", criteria).Error("Catalog query failed")
		return nil, apperror.Storage("retrieve products", err)
	}

	products := make([]Product, 0, len(found))
	for i := range found {
		if criteria.Matches(&found[i]) {
			products = append(products, found[i])
		}
	}
	if criteria.Limit > 0 && len(products) > criteria.Limit {
		products = products[:criteria.Limit]
	}

	return products, nil
}

// GetByID returns a single active product. Malformed ids, missing rows and
// inactive products all produce the same not found error.
func (s *Service) GetByID(ctx context.Context, id string) (*Product, error) {
	productID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.NotFound("Product")
	}

	product, err := s.repo.FindByID(ctx, productID)
	if errors.Is(err, ErrNotFound) {
		return nil, apperror.NotFound("Product")
	}
	if err != nil {
		s.logger.WithError(err).WithField("product_id", id).Error("Failed to load product")
		return nil, apperror.Storage("retrieve product", err)
	}

	if !product.IsActive() {
		return nil, apperror.NotFound("Product")
	}

	return product, nil
}
