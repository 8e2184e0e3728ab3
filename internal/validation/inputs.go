package validation

import (
	"github.com/shopspring/decimal"

	"souq-catalog/internal/domain"
)

// Localized is a bilingual text field where both languages are required.
// Optional bilingual fields use domain.LocalizedText directly.
type Localized struct {
	En string `json:"en" validate:"required"`
	Ar string `json:"ar" validate:"required"`
}

// Text converts to the domain representation.
func (l Localized) Text() domain.LocalizedText {
	return domain.LocalizedText{En: l.En, Ar: l.Ar}
}

// BrandInput is the untrusted payload for creating a brand.
type BrandInput struct {
	Name        Localized            `json:"name"`
	Slug        string               `json:"slug" validate:"required"`
	Description domain.LocalizedText `json:"description"`
	LogoURL     string               `json:"logo_url"`
}

// Record materializes the validated input as a brand. The id and
// timestamp are assigned by the store.
func (in BrandInput) Record() domain.Brand {
	return domain.Brand{
		Name:        in.Name.Text(),
		Slug:        in.Slug,
		Description: in.Description,
		LogoURL:     in.LogoURL,
	}
}

// ColorInput is one color descriptor inside a product payload.
type ColorInput struct {
	Name  Localized `json:"name"`
	Value string    `json:"value" validate:"required"`
}

// ProductInput is the untrusted payload for creating a product.
type ProductInput struct {
	Name           Localized            `json:"name"`
	Slug           string               `json:"slug" validate:"required"`
	Description    domain.LocalizedText `json:"description"`
	Tagline        domain.LocalizedText `json:"tagline"`
	Price          *decimal.Decimal     `json:"price" validate:"required,gte=0"`
	SalePrice      *decimal.Decimal     `json:"sale_price" validate:"omitempty,gte=0"`
	MainImageURL   string               `json:"main_image_url" validate:"required"`
	ImageURLs      []string             `json:"image_urls" validate:"omitempty,dive,required"`
	BrandID        string               `json:"brand_id"`
	Category       string               `json:"category" validate:"required"`
	Subcategory    string               `json:"subcategory"`
	Tags           []string             `json:"tags" validate:"omitempty,dive,required"`
	Sizes          []string             `json:"sizes" validate:"omitempty,dive,required"`
	Colors         []ColorInput         `json:"colors" validate:"omitempty,dive"`
	Material       domain.LocalizedText `json:"material"`
	Featured       *bool                `json:"featured"`
	New            *bool                `json:"new"`
	Customizable   *bool                `json:"customizable"`
	Stock          *int                 `json:"stock" validate:"omitempty,gte=0"`
	SKU            string               `json:"sku"`
	SEOTitle       string               `json:"seo_title"`
	SEODescription string               `json:"seo_description"`
}

// Record materializes the validated input as a product with defaults
// applied: absent arrays become empty, absent flags become false, absent
// stock becomes zero.
func (in ProductInput) Record() domain.Product {
	p := domain.Product{
		Name:           in.Name.Text(),
		Slug:           in.Slug,
		Description:    in.Description,
		Tagline:        in.Tagline,
		Price:          *in.Price,
		SalePrice:      in.SalePrice,
		MainImageURL:   in.MainImageURL,
		ImageURLs:      emptyIfNil(in.ImageURLs),
		BrandID:        in.BrandID,
		Category:       in.Category,
		Subcategory:    in.Subcategory,
		Tags:           emptyIfNil(in.Tags),
		Sizes:          emptyIfNil(in.Sizes),
		Colors:         make([]domain.ColorOption, 0, len(in.Colors)),
		Material:       in.Material,
		Featured:       boolOrFalse(in.Featured),
		New:            boolOrFalse(in.New),
		Customizable:   boolOrFalse(in.Customizable),
		SKU:            in.SKU,
		SEOTitle:       in.SEOTitle,
		SEODescription: in.SEODescription,
	}
	for _, c := range in.Colors {
		p.Colors = append(p.Colors, domain.ColorOption{Name: c.Name.Text(), Value: c.Value})
	}
	stock := 0
	if in.Stock != nil {
		stock = *in.Stock
	}
	p.Stock = &stock
	return p
}

// ProductUpdateInput is the untrusted payload for a partial product
// update. Nil fields are left untouched by the merge.
type ProductUpdateInput struct {
	Name           *Localized            `json:"name"`
	Slug           *string               `json:"slug"`
	Description    *domain.LocalizedText `json:"description"`
	Tagline        *domain.LocalizedText `json:"tagline"`
	Price          *decimal.Decimal      `json:"price" validate:"omitempty,gte=0"`
	SalePrice      *decimal.Decimal      `json:"sale_price" validate:"omitempty,gte=0"`
	MainImageURL   *string               `json:"main_image_url"`
	ImageURLs      []string              `json:"image_urls" validate:"omitempty,dive,required"`
	BrandID        *string               `json:"brand_id"`
	Category       *string               `json:"category"`
	Subcategory    *string               `json:"subcategory"`
	Tags           []string              `json:"tags" validate:"omitempty,dive,required"`
	Sizes          []string              `json:"sizes" validate:"omitempty,dive,required"`
	Colors         []ColorInput          `json:"colors" validate:"omitempty,dive"`
	Material       *domain.LocalizedText `json:"material"`
	Featured       *bool                 `json:"featured"`
	New            *bool                 `json:"new"`
	Customizable   *bool                 `json:"customizable"`
	Stock          *int                  `json:"stock" validate:"omitempty,gte=0"`
	SKU            *string               `json:"sku"`
	SEOTitle       *string               `json:"seo_title"`
	SEODescription *string               `json:"seo_description"`
}

// GalleryItemInput is the untrusted payload for creating a gallery item.
type GalleryItemInput struct {
	Title       Localized            `json:"title"`
	ImageURL    string               `json:"image_url" validate:"required"`
	Description domain.LocalizedText `json:"description"`
}

// Record materializes the validated input as a gallery item.
func (in GalleryItemInput) Record() domain.GalleryItem {
	return domain.GalleryItem{
		Title:       in.Title.Text(),
		ImageURL:    in.ImageURL,
		Description: in.Description,
	}
}

// ContactMessageInput is the untrusted payload from the contact form.
type ContactMessageInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Record materializes the validated input as a contact message.
func (in ContactMessageInput) Record() domain.ContactMessage {
	return domain.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Subject: in.Subject,
		Message: in.Message,
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func boolOrFalse(b *bool) bool {
	return b != nil && *b
}
