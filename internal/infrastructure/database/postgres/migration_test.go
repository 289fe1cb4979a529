// internal/infrastructure/database/postgres/migration_test.go
package postgres

import (
	"testing"

	"github.com/coupledelight/shop-api/internal/domain/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedProducts(t *testing.T) {
	seeds := SeedProducts()
	require.NotEmpty(t, seeds)

	skus := make(map[string]bool)
	statuses := make(map[product.Status]int)
	featured := 0
	for i := range seeds {
		p := &seeds[i]
		assert.NoError(t, p.Validate(), p.SKU)
		assert.False(t, skus[p.SKU], "duplicate sku %s", p.SKU)
		skus[p.SKU] = true
		statuses[p.Status]++
		if p.Featured {
			featured++
		}
		assert.True(t, p.SellingPrice.LessThanOrEqual(p.MRP), p.SKU)
	}

	assert.Positive(t, statuses[product.StatusActive])
	assert.Positive(t, statuses[product.StatusInactive])
	assert.Positive(t, statuses[product.StatusOutOfStock])
	assert.Positive(t, featured)
}

func TestModels(t *testing.T) {
	assert.Len(t, Models(), 4)
}
