// internal/domain/product/filter.go
package product

import (
	"strconv"
	"strings"
)

// Filter is a shopper's catalog query as received from the storefront
type Filter struct {
	Category     string
	SearchText   string
	FeaturedOnly bool
	Limit        int
	SortKey      string
}

// FilterFromQuery builds a Filter from raw query string values.
// Unparseable values are ignored.
func FilterFromQuery(category, search, featured, limit, sort string) Filter {
	f := Filter{
		Category:     category,
		SearchText:   search,
		FeaturedOnly: featured == "true",
		SortKey:      sort,
	}
	if n, err := strconv.Atoi(limit); err == nil {
		f.Limit = n
	}
	return f
}

// DefaultSortKey orders newest first
const DefaultSortKey = "-createdAt"

var sortClauses = map[string]string{
	"-createdAt":    "created_at DESC",
	"createdAt":     "created_at ASC",
	"-sellingPrice": "selling_price DESC",
	"sellingPrice":  "selling_price ASC",
	"-name":         "name DESC",
	"name":          "name ASC",
}

// Criteria is a normalized Filter. Status is always active.
type Criteria struct {
	Status       Status
	Category     Category
	Search       string
	FeaturedOnly bool
	Limit        int
	SortKey      string
}

// Normalize resolves a Filter into Criteria
func (f Filter) Normalize() Criteria {
	c := Criteria{
		Status:       StatusActive,
		Search:       strings.TrimSpace(f.SearchText),
		FeaturedOnly: f.FeaturedOnly,
		SortKey:      DefaultSortKey,
	}

	if cat := strings.TrimSpace(f.Category); cat != "" && cat != "all" {
		c.Category = Category(cat)
	}
	if f.Limit > 0 {
		c.Limit = f.Limit
	}
	if _, ok := sortClauses[f.SortKey]; ok {
		c.SortKey = f.SortKey
	}

	return c
}

// OrderClause returns the SQL ORDER BY for the sort key
func (c Criteria) OrderClause() string {
	if clause, ok := sortClauses[c.SortKey]; ok {
		return clause
	}
	return sortClauses[DefaultSortKey]
}

// StorageLimit is the row limit safe to push down to storage. Text searches
// are re-checked in memory, so they are fetched unlimited and capped after.
func (c Criteria) StorageLimit() int {
	if c.Search != "" {
		return 0
	}
	return c.Limit
}

// Matches reports whether p satisfies every criterion
func (c Criteria) Matches(p *Product) bool {
	if p.Status != c.Status {
		return false
	}
	if c.Category != "" && p.Category != c.Category {
		return false
	}
	if c.FeaturedOnly && !p.Featured {
		return false
	}
	if c.Search == "" {
		return true
	}

	needle := strings.ToLower(c.Search)
	if containsFold(p.Name, needle) || containsFold(p.Description, needle) || containsFold(p.Brand, needle) {
		return true
	}
	for _, tag := range p.Tags {
		if containsFold(tag, needle) {
			return true
		}
	}
	return false
}

func containsFold(haystack, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), lowerNeedle)
}

// likePattern escapes LIKE wildcards and wraps the term for substring matching
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}
