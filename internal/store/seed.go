package store

import (
	"fmt"

	"github.com/shopspring/decimal"

	"souq-catalog/internal/domain"
)

// Seed installs the fixed startup catalog: the store opens with a known set
// of brands, products and gallery items rather than empty shelves. It goes
// through the normal create path so every index is derived the same way as
// for runtime writes.
func Seed(s *Store) error {
	alSaqr, err := s.CreateBrand(domain.Brand{
		Name:        domain.LocalizedText{En: "Al-Saqr", Ar: "الصقر"},
		Slug:        "al-saqr",
		Description: domain.LocalizedText{En: "Traditional craftsmanship since 1978", Ar: "حرفية تقليدية منذ ١٩٧٨"},
		LogoURL:     "/images/brands/al-saqr.png",
	})
	if err != nil {
		return fmt.Errorf("seed brand al-saqr: %w", err)
	}

	darAlHareer, err := s.CreateBrand(domain.Brand{
		Name:    domain.LocalizedText{En: "Dar Al-Hareer", Ar: "دار الحرير"},
		Slug:    "dar-al-hareer",
		LogoURL: "/images/brands/dar-al-hareer.png",
	})
	if err != nil {
		return fmt.Errorf("seed brand dar-al-hareer: %w", err)
	}

	stock := func(n int) *int { return &n }
	sale := func(v string) *decimal.Decimal {
		d := decimal.RequireFromString(v)
		return &d
	}

	products := []domain.Product{
		{
			Name:         domain.LocalizedText{En: "Amber Misbaha", Ar: "مسبحة كهرمان"},
			Slug:         "amber-misbaha",
			Description:  domain.LocalizedText{En: "Hand-knotted 99-bead misbaha in pressed amber.", Ar: "مسبحة ٩٩ خرزة من الكهرمان المضغوط، معقودة يدوياً."},
			Tagline:      domain.LocalizedText{En: "A companion for quiet moments", Ar: "رفيق لحظات السكينة"},
			Price:        decimal.RequireFromString("180.00"),
			SalePrice:    sale("145.00"),
			MainImageURL: "/images/products/amber-misbaha.jpg",
			ImageURLs:    []string{"/images/products/amber-misbaha-2.jpg"},
			BrandID:      alSaqr.ID,
			Category:     "prayer-beads",
			Tags:         []string{"amber", "handmade"},
			Sizes:        []string{},
			Colors: []domain.ColorOption{
				{Name: domain.LocalizedText{En: "Honey", Ar: "عسلي"}, Value: "#c68e3f"},
			},
			Featured: true,
			New:      true,
			Stock:    stock(12),
			SKU:      "PB-AMB-001",
			SEOTitle: "Amber Misbaha — Al-Saqr",
		},
		{
			Name:         domain.LocalizedText{En: "Sadu Vest", Ar: "صديري سدو"},
			Slug:         "sadu-vest",
			Description:  domain.LocalizedText{En: "Wool vest woven with traditional Sadu patterns.", Ar: "صديري صوف منسوج بزخارف السدو التقليدية."},
			Price:        decimal.RequireFromString("320.00"),
			MainImageURL: "/images/products/sadu-vest.jpg",
			ImageURLs:    []string{},
			BrandID:      alSaqr.ID,
			Category:     "vests",
			Tags:         []string{"wool", "sadu"},
			Sizes:        []string{"S", "M", "L", "XL"},
			Colors: []domain.ColorOption{
				{Name: domain.LocalizedText{En: "Desert Red", Ar: "أحمر صحراوي"}, Value: "#8a2f1f"},
				{Name: domain.LocalizedText{En: "Black", Ar: "أسود"}, Value: "#1a1a1a"},
			},
			Material:     domain.LocalizedText{En: "100% wool", Ar: "صوف ١٠٠٪"},
			Customizable: true,
			Stock:        stock(8),
			SKU:          "VA-SDU-014",
		},
		{
			Name:         domain.LocalizedText{En: "Royal Bisht", Ar: "بشت ملكي"},
			Slug:         "royal-bisht",
			Description:  domain.LocalizedText{En: "Ceremonial cloak trimmed with gold zari.", Ar: "بشت للمناسبات مطرز بخيوط الزري الذهبية."},
			Tagline:      domain.LocalizedText{En: "Worn for the occasions that matter", Ar: "يُلبس في المناسبات المهمة"},
			Price:        decimal.RequireFromString("1450.00"),
			MainImageURL: "/images/products/royal-bisht.jpg",
			ImageURLs:    []string{"/images/products/royal-bisht-2.jpg", "/images/products/royal-bisht-3.jpg"},
			BrandID:      darAlHareer.ID,
			Category:     "cloaks",
			Subcategory:  "ceremonial",
			Tags:         []string{"bisht", "zari", "handmade"},
			Sizes:        []string{"M", "L", "XL"},
			Colors: []domain.ColorOption{
				{Name: domain.LocalizedText{En: "Camel", Ar: "جملي"}, Value: "#a9825b"},
			},
			Material: domain.LocalizedText{En: "Camel wool, gold zari", Ar: "وبر جمل وخيوط زري ذهبية"},
			Featured: true,
			Stock:    stock(3),
			SKU:      "CL-BSH-003",
		},
		{
			Name:         domain.LocalizedText{En: "Onyx Misbaha", Ar: "مسبحة عقيق أسود"},
			Slug:         "onyx-misbaha",
			Price:        decimal.RequireFromString("95.00"),
			MainImageURL: "/images/products/onyx-misbaha.jpg",
			ImageURLs:    []string{},
			BrandID:      darAlHareer.ID,
			Category:     "prayer-beads",
			Tags:         []string{"onyx"},
			Sizes:        []string{},
			Colors:       []domain.ColorOption{},
			New:          true,
			Stock:        stock(25),
		},
	}

	for _, p := range products {
		if _, err := s.CreateProduct(p); err != nil {
			return fmt.Errorf("seed product %s: %w", p.Slug, err)
		}
	}

	galleryItems := []domain.GalleryItem{
		{
			Title:       domain.LocalizedText{En: "The Workshop", Ar: "الورشة"},
			ImageURL:    "/images/gallery/workshop.jpg",
			Description: domain.LocalizedText{En: "Where every piece begins.", Ar: "حيث تبدأ كل قطعة."},
		},
		{
			Title:    domain.LocalizedText{En: "Sadu Loom", Ar: "نول السدو"},
			ImageURL: "/images/gallery/sadu-loom.jpg",
		},
	}
	for _, item := range galleryItems {
		s.CreateGalleryItem(item)
	}

	return nil
}
