package domain

import "time"

// Brand represents a brand in the catalog. The slug is unique across all
// brands and is never reassigned after creation.
type Brand struct {
	ID          string        `json:"id"`
	Name        LocalizedText `json:"name"`
	Slug        string        `json:"slug"`
	Description LocalizedText `json:"description,omitempty"`
	LogoURL     string        `json:"logo_url,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}
