package catalog

import (
	"errors"
	"sync"

	"github.com/calorico/maxcalorie/internal/food"
)

// ErrInvalidItem indicates a food item violates the catalog invariants.
var ErrInvalidItem = errors.New("food items must have a description and a positive weight")

// Catalog provides access to the food items used by the solvers.
type Catalog interface {
	Items() ([]food.Item, error)
	Replace(items []food.Item) error
}

// MemoryStore keeps the catalog in-memory and guards access with a RWMutex.
type MemoryStore struct {
	mu    sync.RWMutex
	items []food.Item
}

// NewMemoryStore initialises an empty catalog store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: []food.Item{}}
}

// Items returns a defensive copy of the current catalog in load order.
func (s *MemoryStore) Items() ([]food.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneItems(s.items), nil
}

// Replace validates and stores the provided items, replacing the current
// catalog atomically. Invalid input leaves the previous catalog intact.
func (s *MemoryStore) Replace(items []food.Item) error {
	for _, it := range items {
		if it.Description == "" || it.WeightOunces <= 0 {
			return ErrInvalidItem
		}
	}

	next := cloneItems(items)

	s.mu.Lock()
	s.items = next
	s.mu.Unlock()

	return nil
}

func cloneItems(src []food.Item) []food.Item {
	out := make([]food.Item, len(src))
	copy(out, src)
	return out
}
