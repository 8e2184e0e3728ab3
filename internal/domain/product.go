package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a product in the catalog.
//
// BrandID is a weak reference: it is used for lookups only and may point at a
// brand that no longer exists. Stock is nil when inventory is untracked.
type Product struct {
	ID             string           `json:"id"`
	Name           LocalizedText    `json:"name"`
	Slug           string           `json:"slug"`
	Description    LocalizedText    `json:"description,omitempty"`
	Tagline        LocalizedText    `json:"tagline,omitempty"`
	Price          decimal.Decimal  `json:"price"`
	SalePrice      *decimal.Decimal `json:"sale_price,omitempty"`
	MainImageURL   string           `json:"main_image_url"`
	ImageURLs      []string         `json:"image_urls"`
	BrandID        string           `json:"brand_id,omitempty"`
	Category       string           `json:"category"`
	Subcategory    string           `json:"subcategory,omitempty"`
	Tags           []string         `json:"tags"`
	Sizes          []string         `json:"sizes"`
	Colors         []ColorOption    `json:"colors"`
	Material       LocalizedText    `json:"material,omitempty"`
	Featured       bool             `json:"featured"`
	New            bool             `json:"new"`
	Customizable   bool             `json:"customizable"`
	Stock          *int             `json:"stock"`
	SKU            string           `json:"sku,omitempty"`
	SEOTitle       string           `json:"seo_title,omitempty"`
	SEODescription string           `json:"seo_description,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// Clone returns a deep copy of the product so callers can hold the result
// without observing later store mutations.
func (p *Product) Clone() *Product {
	cp := *p
	cp.ImageURLs = append([]string(nil), p.ImageURLs...)
	cp.Tags = append([]string(nil), p.Tags...)
	cp.Sizes = append([]string(nil), p.Sizes...)
	cp.Colors = append([]ColorOption(nil), p.Colors...)
	if p.SalePrice != nil {
		sp := *p.SalePrice
		cp.SalePrice = &sp
	}
	if p.Stock != nil {
		st := *p.Stock
		cp.Stock = &st
	}
	return &cp
}
