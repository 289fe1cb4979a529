// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Store is a single shopper's cart. It is hydrated from Storage once on
// creation and written back in full after every mutation. Storage problems
// never reach the caller: the cart keeps working from memory and the failure
// is logged.
type Store struct {
	mu      sync.Mutex
	key     string
	storage Storage
	logger  logrus.FieldLogger
	items   []LineItem
	open    bool
}

// NewStore creates a cart bound to key and hydrates it from storage
func NewStore(ctx context.Context, storage Storage, key string, logger logrus.FieldLogger) *Store {
	s := &Store{
		key:     key,
		storage: storage,
		logger:  logger.WithField("cart_key", key),
	}
	s.hydrate(ctx)
	return s
}

func (s *Store) hydrate(ctx context.Context) {
	data, err := s.storage.Load(ctx, s.key)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to load cart, starting empty")
		return
	}
	if len(data) == 0 {
		return
	}

	var stored []LineItem
	if err := json.Unmarshal(data, &stored); err != nil {
		s.logger.WithError(err).Warn("Stored cart is corrupt, starting empty")
		return
	}

	items := make([]LineItem, 0, len(stored))
	seen := make(map[string]bool, len(stored))
	for _, item := range stored {
		if item.ProductID == "" || item.Quantity < 1 || seen[item.ProductID] {
			s.logger.WithField("product_id", item.ProductID).Warn("Dropping invalid stored cart line")
			continue
		}
		seen[item.ProductID] = true
		item.Quantity = capQuantity(item.Quantity, item.StockLimit)
		items = append(items, item)
	}
	s.items = items
}

// flush writes the full item list. Must be called with mu held.
func (s *Store) flush(ctx context.Context) {
	items := s.items
	if items == nil {
		items = []LineItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		s.logger.WithError(err).Error("Failed to encode cart")
		return
	}
	if err := s.storage.Save(ctx, s.key, data); err != nil {
		s.logger.WithError(err).Error("Failed to persist cart")
	}
}

// capQuantity bounds quantity by the stock limit. A line never drops below one
// unit through capping: with a stock limit of zero the line holds at 1 rather
// than min(quantity, 0), since a zero-quantity line is not a valid cart line.
// Out-of-stock products are refused before they reach the store.
func capQuantity(quantity, stockLimit int) int {
	return min(quantity, max(stockLimit, 1))
}

func (s *Store) indexOf(productID string) int {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// AddItem increments the quantity of an existing line, capped at its stock
// limit, or appends a new line with quantity 1. The cart is marked open.
func (s *Store) AddItem(ctx context.Context, c Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(c.ProductID); i >= 0 {
		s.items[i].Quantity = capQuantity(s.items[i].Quantity+1, s.items[i].StockLimit)
	} else {
		// stock <= 0 is not rejected here, callers disable the add action instead
		s.items = append(s.items, LineItem{
			ProductID:  c.ProductID,
			Name:       c.Name,
			UnitPrice:  c.UnitPrice,
			Image:      c.Image,
			Quantity:   1,
			StockLimit: c.StockLimit,
		})
	}
	s.open = true
	s.flush(ctx)
}

// RemoveItem deletes the line for productID if present
func (s *Store) RemoveItem(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productID)
	if i < 0 {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.flush(ctx)
}

// SetQuantity sets a line's quantity, capped at its stock limit.
// A quantity of zero or less removes the line. Unknown products are ignored.
func (s *Store) SetQuantity(ctx context.Context, productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productID)
	if i < 0 {
		return
	}
	if quantity <= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
	} else {
		s.items[i].Quantity = capQuantity(quantity, s.items[i].StockLimit)
	}
	s.flush(ctx)
}

// Clear empties the cart
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.flush(ctx)
}

// Snapshot returns a copy of the current lines
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(Snapshot, len(s.items))
	copy(out, s.items)
	return out
}

// Total returns the cart subtotal
func (s *Store) Total() decimal.Decimal {
	return s.Snapshot().Subtotal()
}

// Count returns the number of units in the cart
func (s *Store) Count() int {
	return s.Snapshot().ItemCount()
}

// IsOpen reports whether the cart panel should be shown
func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Open shows the cart panel
func (s *Store) Open() {
	s.mu.Lock()
	s.open = true
	s.mu.Unlock()
}

// Close hides the cart panel
func (s *Store) Close() {
	s.mu.Lock()
	s.open = false
	s.mu.Unlock()
}
