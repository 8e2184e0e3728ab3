package domain

import "time"

// GalleryItem represents one image in the storefront gallery.
type GalleryItem struct {
	ID          string        `json:"id"`
	Title       LocalizedText `json:"title"`
	ImageURL    string        `json:"image_url"`
	Description LocalizedText `json:"description,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}
