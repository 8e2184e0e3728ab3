package store

import (
	"time"

	"souq-catalog/internal/domain"
)

// CreateGalleryItem assigns an id and creation timestamp and appends the
// item. Gallery items have no uniqueness constraints beyond the id.
func (s *Store) CreateGalleryItem(item domain.GalleryItem) *domain.GalleryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = s.ids.NewID()
	item.CreatedAt = time.Now()

	stored := item
	s.gallery[stored.ID] = &stored
	s.galleryOrder = append(s.galleryOrder, stored.ID)

	out := stored
	return &out
}

// GalleryItemByID looks up a gallery item by id.
func (s *Store) GalleryItemByID(id string) (*domain.GalleryItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.gallery[id]
	if !ok {
		return nil, false
	}
	out := *item
	return &out, true
}

// GalleryItems returns all gallery items in insertion order.
func (s *Store) GalleryItems() []*domain.GalleryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.GalleryItem, 0, len(s.galleryOrder))
	for _, id := range s.galleryOrder {
		item := *s.gallery[id]
		out = append(out, &item)
	}
	return out
}
