// internal/domain/product/filter_test.go
package product

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFilterNormalize(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   Criteria
	}{
		{
			name:   "defaults",
			filter: Filter{},
			want:   Criteria{Status: StatusActive, SortKey: DefaultSortKey},
		},
		{
			name:   "unknown_sort_falls_back",
			filter: Filter{SortKey: "price; DROP TABLE products"},
			want:   Criteria{Status: StatusActive, SortKey: DefaultSortKey},
		},
		{
			name:   "negative_limit_ignored",
			filter: Filter{Limit: -4, Category: " lingerie ", SearchText: "  lace ", SortKey: "sellingPrice"},
			want:   Criteria{Status: StatusActive, Category: CategoryLingerie, Search: "lace", SortKey: "sellingPrice"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Normalize())
		})
	}
}

func TestFilterFromQuery(t *testing.T) {
	f := FilterFromQuery("bdsm", "rope", "true", "12", "-sellingPrice")
	assert.Equal(t, Filter{Category: "bdsm", SearchText: "rope", FeaturedOnly: true, Limit: 12, SortKey: "-sellingPrice"}, f)

	f = FilterFromQuery("", "", "yes", "abc", "")
	assert.False(t, f.FeaturedOnly)
	assert.Zero(t, f.Limit)
}

func TestOrderClause(t *testing.T) {
	assert.Equal(t, "created_at DESC", Criteria{}.OrderClause())
	assert.Equal(t, "selling_price ASC", Criteria{SortKey: "sellingPrice"}.OrderClause())
	assert.Equal(t, "name DESC", Criteria{SortKey: "-name"}.OrderClause())
}

func TestStorageLimit(t *testing.T) {
	assert.Equal(t, 5, Criteria{Limit: 5}.StorageLimit())
	assert.Zero(t, Criteria{Limit: 5, Search: ","}.StorageLimit())
	assert.Contains(t, searchCondition, "jsonb_array_elements_text(tags)")
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, `%100\% silk%`, likePattern("100% silk"))
	assert.Equal(t, `%a\_b%`, likePattern("a_b"))
}

func TestProductHelpers(t *testing.T) {
	p := &Product{
		ID:                uuid.New(),
		Name:              "Wand",
		SellingPrice:      decimal.NewFromInt(2499),
		Stock:             3,
		LowStockThreshold: 10,
		Images:            []string{"/a.jpg", "/b.jpg"},
		Status:            StatusActive,
	}

	assert.True(t, p.IsActive())
	assert.True(t, p.IsInStock())
	assert.True(t, p.IsLowStock())
	assert.Equal(t, "/a.jpg", p.PrimaryImage())

	c := p.CartCandidate()
	assert.Equal(t, p.ID.String(), c.ProductID)
	assert.Equal(t, 3, c.StockLimit)
	assert.True(t, c.UnitPrice.Equal(decimal.NewFromInt(2499)))

	assert.True(t, CategoryBDSM.IsValid())
	assert.False(t, Category("toys").IsValid())
}

func TestProductValidate(t *testing.T) {
	p := &Product{
		Name:        "Lube",
		Description: "Water based",
		SKU:         "lube-1",
		Category:    CategoryLubricants,
		Status:      StatusActive,
		Discount:    10,
	}
	assert.NoError(t, p.Validate())

	p.Discount = 120
	assert.Error(t, p.Validate())

	p.Discount = 0
	p.Category = "toys"
	assert.Error(t, p.Validate())

	p.Category = CategoryLubricants
	p.Images = make([]string, MaxImages+1)
	assert.Error(t, p.Validate())
}
