// Package wishlist implements the shopper's working selection of catalog
// items. The store is an insertion-ordered set keyed by item id: adding an
// item twice keeps a single entry, and List preserves the order items were
// first added.
//
// The store is owned by the application root and mutated only from the UI
// goroutine, so it carries no locking.
package wishlist

import "github.com/arshopsy/arshopsy/internal/catalog"

type Store struct {
	items []catalog.Item
	ids   map[string]struct{}
}

func NewStore() *Store {
	return &Store{ids: make(map[string]struct{})}
}

// Add inserts the item unless an entry with the same id is already present.
func (s *Store) Add(item catalog.Item) {
	if _, ok := s.ids[item.ID]; ok {
		return
	}
	s.ids[item.ID] = struct{}{}
	s.items = append(s.items, item)
}

// Remove deletes the entry with the given id. Absent ids are a no-op.
func (s *Store) Remove(id string) {
	if _, ok := s.ids[id]; !ok {
		return
	}
	delete(s.ids, id)
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
}

// Contains reports whether an entry with the given id is present.
func (s *Store) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// List returns the selected items in insertion order. The caller must not
// mutate the returned slice.
func (s *Store) List() []catalog.Item {
	return s.items
}

// Len returns the number of selected items.
func (s *Store) Len() int {
	return len(s.items)
}

// Clear removes all entries. Used after a successful checkout.
func (s *Store) Clear() {
	s.items = nil
	s.ids = make(map[string]struct{})
}

// TotalINR is the cart total at the flat per-item price.
func (s *Store) TotalINR() int {
	total := 0
	for _, it := range s.items {
		total += it.PriceINR
	}
	return total
}
