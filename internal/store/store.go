// Package store holds the authoritative in-memory packing list.
//
// A ListStore has a single owner. Front ends read it through Items,
// SortedView and Stats, and change it only through Add, Delete,
// TogglePacked and Clear. No method fails: operations on unknown ids are
// no-ops.
package store

import (
	"math"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Makepad-fr/packlist/internal/model"
)

// ListStore owns an ordered sequence of items in insertion order.
type ListStore struct {
	items []model.Item
	coll  *collate.Collator
}

// Option configures a ListStore.
type Option func(*ListStore)

// WithLanguage sets the collation language used when sorting by description.
func WithLanguage(tag language.Tag) Option {
	return func(s *ListStore) { s.coll = collate.New(tag) }
}

// WithCollator sets the collator used when sorting by description.
func WithCollator(c *collate.Collator) Option {
	return func(s *ListStore) {
		if c != nil {
			s.coll = c
		}
	}
}

// New returns a store seeded with a copy of seed.
func New(seed []model.Item, opts ...Option) *ListStore {
	s := &ListStore{
		items: slices.Clone(seed),
		coll:  collate.New(language.English),
	}
	if s.items == nil {
		s.items = []model.Item{}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends item to the end of the list.
func (s *ListStore) Add(item model.Item) {
	s.items = append(s.items, item)
}

// Delete removes the item with the given id, if any.
func (s *ListStore) Delete(id string) {
	s.items = slices.DeleteFunc(s.items, func(it model.Item) bool { return it.ID == id })
}

// TogglePacked flips the packed flag of the item with the given id, if any.
func (s *ListStore) TogglePacked(id string) {
	if i := s.index(id); i >= 0 {
		s.items[i].Packed = !s.items[i].Packed
	}
}

// Clear drops every item.
func (s *ListStore) Clear() {
	s.items = []model.Item{}
}

// Len reports the number of stored items.
func (s *ListStore) Len() int { return len(s.items) }

// Get returns the item with the given id.
func (s *ListStore) Get(id string) (model.Item, bool) {
	if i := s.index(id); i >= 0 {
		return s.items[i], true
	}
	return model.Item{}, false
}

// Items returns a copy of the list in stored order.
func (s *ListStore) Items() []model.Item {
	return slices.Clone(s.items)
}

// SortedView returns a newly allocated, ordered copy of the list. The stored
// order is never changed. Unknown criteria fall back to stored order.
func (s *ListStore) SortedView(by model.SortCriterion) []model.Item {
	view := s.Items()
	switch by {
	case model.SortDescription:
		slices.SortStableFunc(view, func(a, b model.Item) int {
			return s.coll.CompareString(a.Description, b.Description)
		})
	case model.SortPacked:
		slices.SortStableFunc(view, func(a, b model.Item) int {
			return packedRank(a) - packedRank(b)
		})
	}
	return view
}

// Stats summarizes the list. The percentage is 0 for an empty list.
func (s *ListStore) Stats() model.Stats {
	st := model.Stats{Total: len(s.items)}
	for _, it := range s.items {
		if it.Packed {
			st.PackedCount++
		}
	}
	if st.Total > 0 {
		st.PackedPercentage = int(math.Round(float64(st.PackedCount) / float64(st.Total) * 100))
	}
	return st
}

func (s *ListStore) index(id string) int {
	return slices.IndexFunc(s.items, func(it model.Item) bool { return it.ID == id })
}

// unpacked sorts before packed
func packedRank(it model.Item) int {
	if it.Packed {
		return 1
	}
	return 0
}
