package store

import (
	"time"

	"souq-catalog/internal/domain"
)

// CreateContactMessage assigns an id and creation timestamp and appends the
// message. Messages carry no secondary indices and are never updated.
func (s *Store) CreateContactMessage(msg domain.ContactMessage) *domain.ContactMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg.ID = s.ids.NewID()
	msg.CreatedAt = time.Now()
	s.contacts = append(s.contacts, msg)

	out := msg
	return &out
}

// ContactMessages returns all contact messages in insertion order, for
// administrative listing.
func (s *Store) ContactMessages() []*domain.ContactMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.ContactMessage, 0, len(s.contacts))
	for i := range s.contacts {
		msg := s.contacts[i]
		out = append(out, &msg)
	}
	return out
}
