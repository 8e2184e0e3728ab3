package store

import (
	"time"

	"souq-catalog/internal/domain"
)

// CreateBrand assigns an id and creation timestamp, then inserts the brand
// into the primary collection and the slug index. A taken slug returns
// ErrDuplicateSlug before anything is mutated.
func (s *Store) CreateBrand(b domain.Brand) (*domain.Brand, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.brandSlugs[b.Slug]; taken {
		return nil, ErrDuplicateSlug
	}

	b.ID = s.ids.NewID()
	b.CreatedAt = time.Now()

	stored := b
	s.brands[stored.ID] = &stored
	s.brandOrder = append(s.brandOrder, stored.ID)
	s.brandSlugs[stored.Slug] = stored.ID

	out := stored
	return &out, nil
}

// BrandByID looks up a brand by id. Absence is a normal empty result, not
// an error.
func (s *Store) BrandByID(id string) (*domain.Brand, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.brands[id]
	if !ok {
		return nil, false
	}
	out := *b
	return &out, true
}

// BrandBySlug looks up a brand by its unique slug.
func (s *Store) BrandBySlug(slug string) (*domain.Brand, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.brandSlugs[slug]
	if !ok {
		return nil, false
	}
	out := *s.brands[id]
	return &out, true
}

// Brands returns all brands in insertion order.
func (s *Store) Brands() []*domain.Brand {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Brand, 0, len(s.brandOrder))
	for _, id := range s.brandOrder {
		b := *s.brands[id]
		out = append(out, &b)
	}
	return out
}
