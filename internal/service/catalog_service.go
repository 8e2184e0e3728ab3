package service

import (
	"strconv"

	"souq-catalog/internal/domain"
	"souq-catalog/internal/store"
	"souq-catalog/internal/validation"
)

// ProductFilter carries the raw, untyped filter parameters handed over by
// the HTTP layer. Values arrive as strings; translation into typed store
// lookups happens here and only here.
type ProductFilter struct {
	Category string
	Brand    string
	Featured string
}

// CatalogService is the single entry point the transport layer calls. Write
// operations validate input before it reaches the store; read operations
// translate filters into the most specific index lookup available.
type CatalogService interface {
	CreateBrand(in validation.BrandInput) (*domain.Brand, error)
	BrandByID(id string) (*domain.Brand, bool)
	BrandBySlug(slug string) (*domain.Brand, bool)
	Brands() []*domain.Brand

	CreateProduct(in validation.ProductInput) (*domain.Product, error)
	UpdateProduct(id string, in validation.ProductUpdateInput) (*domain.Product, error)
	Products(filter ProductFilter) []*domain.Product
	ProductByID(id string) (*domain.Product, bool)
	ProductBySlug(slug string) (*domain.Product, bool)

	CreateGalleryItem(in validation.GalleryItemInput) (*domain.GalleryItem, error)
	GalleryItemByID(id string) (*domain.GalleryItem, bool)
	GalleryItems() []*domain.GalleryItem

	SubmitContactMessage(in validation.ContactMessageInput) (*domain.ContactMessage, error)
	ContactMessages() []*domain.ContactMessage
}

type catalogService struct {
	store *store.Store
}

// NewCatalogService creates a new instance of CatalogService backed by the
// given store.
func NewCatalogService(s *store.Store) CatalogService {
	return &catalogService{store: s}
}

// CreateBrand validates the input and inserts the brand.
func (s *catalogService) CreateBrand(in validation.BrandInput) (*domain.Brand, error) {
	if verr := validation.Validate(in); verr != nil {
		return nil, verr
	}
	return s.store.CreateBrand(in.Record())
}

func (s *catalogService) BrandByID(id string) (*domain.Brand, bool) {
	return s.store.BrandByID(id)
}

func (s *catalogService) BrandBySlug(slug string) (*domain.Brand, bool) {
	return s.store.BrandBySlug(slug)
}

func (s *catalogService) Brands() []*domain.Brand {
	return s.store.Brands()
}

// CreateProduct validates the input, applies defaults, and inserts the
// product.
func (s *catalogService) CreateProduct(in validation.ProductInput) (*domain.Product, error) {
	if verr := validation.Validate(in); verr != nil {
		return nil, verr
	}
	return s.store.CreateProduct(in.Record())
}

// UpdateProduct validates the provided fields and merges them into the
// existing product.
func (s *catalogService) UpdateProduct(id string, in validation.ProductUpdateInput) (*domain.Product, error) {
	if verr := validation.Validate(in); verr != nil {
		return nil, verr
	}
	return s.store.UpdateProduct(id, toStoreUpdate(in))
}

// Products picks the most specific index lookup the filter allows: category
// first, then brand, then the featured flag, falling back to the full list.
// A malformed or false featured value is treated as filter-absent rather
// than a request error.
func (s *catalogService) Products(filter ProductFilter) []*domain.Product {
	switch {
	case filter.Category != "":
		return s.store.ProductsByCategory(filter.Category)
	case filter.Brand != "":
		return s.store.ProductsByBrand(filter.Brand)
	}
	if featured, err := strconv.ParseBool(filter.Featured); err == nil && featured {
		return s.store.FeaturedProducts()
	}
	return s.store.Products()
}

func (s *catalogService) ProductByID(id string) (*domain.Product, bool) {
	return s.store.ProductByID(id)
}

func (s *catalogService) ProductBySlug(slug string) (*domain.Product, bool) {
	return s.store.ProductBySlug(slug)
}

// CreateGalleryItem validates the input and appends the gallery item.
func (s *catalogService) CreateGalleryItem(in validation.GalleryItemInput) (*domain.GalleryItem, error) {
	if verr := validation.Validate(in); verr != nil {
		return nil, verr
	}
	return s.store.CreateGalleryItem(in.Record()), nil
}

func (s *catalogService) GalleryItemByID(id string) (*domain.GalleryItem, bool) {
	return s.store.GalleryItemByID(id)
}

func (s *catalogService) GalleryItems() []*domain.GalleryItem {
	return s.store.GalleryItems()
}

// SubmitContactMessage validates the form payload and appends the message.
func (s *catalogService) SubmitContactMessage(in validation.ContactMessageInput) (*domain.ContactMessage, error) {
	if verr := validation.Validate(in); verr != nil {
		return nil, verr
	}
	return s.store.CreateContactMessage(in.Record()), nil
}

func (s *catalogService) ContactMessages() []*domain.ContactMessage {
	return s.store.ContactMessages()
}

// toStoreUpdate maps the update payload onto the store's merge type.
// Required-nonempty fields (slug, category, main image) treat an explicit
// empty string the same as absent, mirroring how the storefront forms
// submit untouched fields.
func toStoreUpdate(in validation.ProductUpdateInput) store.ProductUpdate {
	upd := store.ProductUpdate{
		Price:          in.Price,
		SalePrice:      in.SalePrice,
		ImageURLs:      in.ImageURLs,
		Subcategory:    in.Subcategory,
		Tags:           in.Tags,
		Sizes:          in.Sizes,
		Featured:       in.Featured,
		New:            in.New,
		Customizable:   in.Customizable,
		Stock:          in.Stock,
		SKU:            in.SKU,
		SEOTitle:       in.SEOTitle,
		SEODescription: in.SEODescription,
	}
	if in.Name != nil {
		name := in.Name.Text()
		upd.Name = &name
	}
	if in.Slug != nil && *in.Slug != "" {
		upd.Slug = in.Slug
	}
	if in.Description != nil {
		upd.Description = in.Description
	}
	if in.Tagline != nil {
		upd.Tagline = in.Tagline
	}
	if in.MainImageURL != nil && *in.MainImageURL != "" {
		upd.MainImageURL = in.MainImageURL
	}
	if in.BrandID != nil {
		upd.BrandID = in.BrandID
	}
	if in.Category != nil && *in.Category != "" {
		upd.Category = in.Category
	}
	if in.Colors != nil {
		colors := make([]domain.ColorOption, 0, len(in.Colors))
		for _, c := range in.Colors {
			colors = append(colors, domain.ColorOption{Name: c.Name.Text(), Value: c.Value})
		}
		upd.Colors = colors
	}
	if in.Material != nil {
		upd.Material = in.Material
	}
	return upd
}
