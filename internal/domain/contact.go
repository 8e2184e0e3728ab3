package domain

import "time"

// ContactMessage is a contact-form submission. Messages are append-only:
// they are never updated or deleted, only read back for administrative
// listing.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
