package store

import (
	"time"

	"github.com/shopspring/decimal"

	"souq-catalog/internal/domain"
)

// ProductUpdate carries the fields of a partial product update. Nil fields
// are left untouched; nil slices mean "keep", empty slices mean "replace
// with empty".
type ProductUpdate struct {
	Name           *domain.LocalizedText
	Slug           *string
	Description    *domain.LocalizedText
	Tagline        *domain.LocalizedText
	Price          *decimal.Decimal
	SalePrice      *decimal.Decimal
	MainImageURL   *string
	ImageURLs      []string
	BrandID        *string
	Category       *string
	Subcategory    *string
	Tags           []string
	Sizes          []string
	Colors         []domain.ColorOption
	Material       *domain.LocalizedText
	Featured       *bool
	New            *bool
	Customizable   *bool
	Stock          *int
	SKU            *string
	SEOTitle       *string
	SEODescription *string
}

// CreateProduct assigns an id and timestamps, then inserts the product into
// the primary collection and updates the slug, SKU, category, brand and
// featured indices in the same locked step. Duplicate slug or SKU rejects
// the create before any state changes.
func (s *Store) CreateProduct(p domain.Product) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.productSlugs[p.Slug]; taken {
		return nil, ErrDuplicateSlug
	}
	if p.SKU != "" {
		if _, taken := s.productSKUs[p.SKU]; taken {
			return nil, ErrDuplicateSku
		}
	}

	p.ID = s.ids.NewID()
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	stored := p.Clone()
	s.products[stored.ID] = stored
	s.productOrder = append(s.productOrder, stored.ID)
	s.indexProduct(stored)

	return stored.Clone(), nil
}

// indexProduct adds a product to every secondary index it belongs to.
// Callers must hold the write lock.
func (s *Store) indexProduct(p *domain.Product) {
	s.productSlugs[p.Slug] = p.ID
	if p.SKU != "" {
		s.productSKUs[p.SKU] = p.ID
	}
	s.byCategory[p.Category] = append(s.byCategory[p.Category], p.ID)
	if p.BrandID != "" {
		s.byBrand[p.BrandID] = append(s.byBrand[p.BrandID], p.ID)
	}
	if p.Featured {
		s.featured = append(s.featured, p.ID)
	}
}

// unindexProduct removes a product from every secondary index. Callers must
// hold the write lock.
func (s *Store) unindexProduct(p *domain.Product) {
	delete(s.productSlugs, p.Slug)
	if p.SKU != "" {
		delete(s.productSKUs, p.SKU)
	}
	s.byCategory[p.Category] = removeID(s.byCategory[p.Category], p.ID)
	if len(s.byCategory[p.Category]) == 0 {
		delete(s.byCategory, p.Category)
	}
	if p.BrandID != "" {
		s.byBrand[p.BrandID] = removeID(s.byBrand[p.BrandID], p.ID)
		if len(s.byBrand[p.BrandID]) == 0 {
			delete(s.byBrand, p.BrandID)
		}
	}
	if p.Featured {
		s.featured = removeID(s.featured, p.ID)
	}
}

// UpdateProduct merges the provided fields into an existing product, bumps
// the update timestamp, and re-derives every secondary index the changed
// fields participate in. The record and all its indices change in one
// locked step, so readers never see a half-updated product.
func (s *Store) UpdateProduct(id string, upd ProductUpdate) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}

	// Uniqueness checks happen before any mutation so a rejected update
	// leaves the store untouched.
	if upd.Slug != nil && *upd.Slug != p.Slug {
		if _, taken := s.productSlugs[*upd.Slug]; taken {
			return nil, ErrDuplicateSlug
		}
	}
	if upd.SKU != nil && *upd.SKU != p.SKU && *upd.SKU != "" {
		if _, taken := s.productSKUs[*upd.SKU]; taken {
			return nil, ErrDuplicateSku
		}
	}

	s.unindexProduct(p)
	applyUpdate(p, upd)
	p.UpdatedAt = time.Now()
	s.indexProduct(p)

	return p.Clone(), nil
}

func applyUpdate(p *domain.Product, upd ProductUpdate) {
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Slug != nil {
		p.Slug = *upd.Slug
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Tagline != nil {
		p.Tagline = *upd.Tagline
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.SalePrice != nil {
		sp := *upd.SalePrice
		p.SalePrice = &sp
	}
	if upd.MainImageURL != nil {
		p.MainImageURL = *upd.MainImageURL
	}
	if upd.ImageURLs != nil {
		p.ImageURLs = append([]string(nil), upd.ImageURLs...)
	}
	if upd.BrandID != nil {
		p.BrandID = *upd.BrandID
	}
	if upd.Category != nil {
		p.Category = *upd.Category
	}
	if upd.Subcategory != nil {
		p.Subcategory = *upd.Subcategory
	}
	if upd.Tags != nil {
		p.Tags = append([]string(nil), upd.Tags...)
	}
	if upd.Sizes != nil {
		p.Sizes = append([]string(nil), upd.Sizes...)
	}
	if upd.Colors != nil {
		p.Colors = append([]domain.ColorOption(nil), upd.Colors...)
	}
	if upd.Material != nil {
		p.Material = *upd.Material
	}
	if upd.Featured != nil {
		p.Featured = *upd.Featured
	}
	if upd.New != nil {
		p.New = *upd.New
	}
	if upd.Customizable != nil {
		p.Customizable = *upd.Customizable
	}
	if upd.Stock != nil {
		st := *upd.Stock
		p.Stock = &st
	}
	if upd.SKU != nil {
		p.SKU = *upd.SKU
	}
	if upd.SEOTitle != nil {
		p.SEOTitle = *upd.SEOTitle
	}
	if upd.SEODescription != nil {
		p.SEODescription = *upd.SEODescription
	}
}

// ProductByID looks up a product by id.
func (s *Store) ProductByID(id string) (*domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, false
	}
	return p.Clone(), true
}

// ProductBySlug looks up a product by its unique slug.
func (s *Store) ProductBySlug(slug string) (*domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.productSlugs[slug]
	if !ok {
		return nil, false
	}
	return s.products[id].Clone(), true
}

// Products returns all products in insertion order.
func (s *Store) Products() []*domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cloneByIDs(s.productOrder)
}

// ProductsByCategory returns the products in one category via the category
// index, in insertion order. Unknown categories yield an empty result.
func (s *Store) ProductsByCategory(category string) []*domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cloneByIDs(s.byCategory[category])
}

// ProductsByBrand returns the products referencing one brand id. The brand
// itself need not exist; the reference is lookup-only.
func (s *Store) ProductsByBrand(brandID string) []*domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cloneByIDs(s.byBrand[brandID])
}

// FeaturedProducts returns the products with the featured flag set.
func (s *Store) FeaturedProducts() []*domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cloneByIDs(s.featured)
}

// cloneByIDs copies out the products for a list of ids. Callers must hold
// at least the read lock.
func (s *Store) cloneByIDs(ids []string) []*domain.Product {
	out := make([]*domain.Product, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.products[id].Clone())
	}
	return out
}
