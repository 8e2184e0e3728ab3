package service

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"souq-catalog/internal/identity"
	"souq-catalog/internal/store"
	"souq-catalog/internal/validation"
)

func newTestCatalog(t *testing.T) (CatalogService, *store.Store) {
	t.Helper()
	s := store.New(&identity.SequenceGenerator{})
	return NewCatalogService(s), s
}

func productInput(slug, category string, featured bool) validation.ProductInput {
	price := decimal.RequireFromString("100.00")
	f := featured
	return validation.ProductInput{
		Name:         validation.Localized{En: "Product " + slug, Ar: "منتج " + slug},
		Slug:         slug,
		Price:        &price,
		MainImageURL: "/images/" + slug + ".jpg",
		Category:     category,
		Featured:     &f,
	}
}

func TestProducts_FilterPrecedence(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	brand, err := catalog.CreateBrand(validation.BrandInput{
		Name: validation.Localized{En: "Al-Saqr", Ar: "الصقر"},
		Slug: "al-saqr",
	})
	if err != nil {
		t.Fatalf("CreateBrand failed: %v", err)
	}

	vests := productInput("vest-1", "vests", true)
	vests.BrandID = brand.ID
	if _, err := catalog.CreateProduct(vests); err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}
	if _, err := catalog.CreateProduct(productInput("cloak-1", "cloaks", false)); err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	// Category beats every other filter
	got := catalog.Products(ProductFilter{Category: "vests", Brand: brand.ID, Featured: "true"})
	if len(got) != 1 || got[0].Slug != "vest-1" {
		t.Errorf("category filter should win, got %d products", len(got))
	}

	// Brand beats featured
	got = catalog.Products(ProductFilter{Brand: brand.ID, Featured: "true"})
	if len(got) != 1 || got[0].Slug != "vest-1" {
		t.Errorf("brand filter should win over featured, got %d products", len(got))
	}

	// Featured alone selects the featured index
	got = catalog.Products(ProductFilter{Featured: "true"})
	if len(got) != 1 || got[0].Slug != "vest-1" {
		t.Errorf("featured filter should select featured products, got %d", len(got))
	}

	// No filter returns everything
	got = catalog.Products(ProductFilter{})
	if len(got) != 2 {
		t.Errorf("unfiltered list should return all products, got %d", len(got))
	}
}

func TestProducts_MalformedFeaturedTreatedAsAbsent(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	if _, err := catalog.CreateProduct(productInput("vest-1", "vests", true)); err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}
	if _, err := catalog.CreateProduct(productInput("cloak-1", "cloaks", false)); err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	for _, raw := range []string{"yes", "maybe", "TRUE-ish", ""} {
		got := catalog.Products(ProductFilter{Featured: raw})
		if len(got) != 2 {
			t.Errorf("featured=%q should fall back to the full list, got %d products", raw, len(got))
		}
	}

	// featured=false is a valid boolean but not a featured lookup
	got := catalog.Products(ProductFilter{Featured: "false"})
	if len(got) != 2 {
		t.Errorf("featured=false should fall back to the full list, got %d products", len(got))
	}
}

func TestCreateProduct_ValidationErrorsPropagate(t *testing.T) {
	catalog, s := newTestCatalog(t)

	_, err := catalog.CreateProduct(validation.ProductInput{Slug: "incomplete"})
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *validation.Error, got %v", err)
	}
	if len(verr.Fields) == 0 {
		t.Error("validation error should list the failing fields")
	}

	// Nothing reached the store
	if got := len(s.Products()); got != 0 {
		t.Errorf("invalid input must not reach the store, found %d products", got)
	}
}

func TestCreateProduct_DuplicateSlugPropagates(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	if _, err := catalog.CreateProduct(productInput("dup", "vests", false)); err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}
	_, err := catalog.CreateProduct(productInput("dup", "vests", false))
	if !errors.Is(err, store.ErrDuplicateSlug) {
		t.Fatalf("expected ErrDuplicateSlug, got %v", err)
	}
}

func TestUpdateProduct_EmptyStringsTreatedAsAbsent(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	created, err := catalog.CreateProduct(productInput("keeper", "vests", false))
	if err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	// Untouched form fields arrive as empty strings; they must not wipe
	// required fields
	empty := ""
	updated, err := catalog.UpdateProduct(created.ID, validation.ProductUpdateInput{
		Slug:         &empty,
		Category:     &empty,
		MainImageURL: &empty,
	})
	if err != nil {
		t.Fatalf("UpdateProduct failed: %v", err)
	}
	if updated.Slug != "keeper" || updated.Category != "vests" {
		t.Error("empty strings should be treated as absent fields")
	}
}

func TestUpdateProduct_MovesBetweenIndexes(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	created, err := catalog.CreateProduct(productInput("mover", "vests", false))
	if err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	category := "cloaks"
	featured := true
	if _, err := catalog.UpdateProduct(created.ID, validation.ProductUpdateInput{
		Category: &category,
		Featured: &featured,
	}); err != nil {
		t.Fatalf("UpdateProduct failed: %v", err)
	}

	if got := catalog.Products(ProductFilter{Category: "vests"}); len(got) != 0 {
		t.Errorf("product should have left the vests category, found %d", len(got))
	}
	if got := catalog.Products(ProductFilter{Category: "cloaks"}); len(got) != 1 {
		t.Errorf("product should appear under cloaks, found %d", len(got))
	}
	if got := catalog.Products(ProductFilter{Featured: "true"}); len(got) != 1 {
		t.Errorf("product should appear as featured, found %d", len(got))
	}
}

func TestSubmitContactMessage(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	_, err := catalog.SubmitContactMessage(validation.ContactMessageInput{
		Email:   "broken",
		Message: "hello",
	})
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *validation.Error, got %v", err)
	}

	msg, err := catalog.SubmitContactMessage(validation.ContactMessageInput{
		Name:    "Huda",
		Email:   "huda@example.com",
		Subject: "Sizing",
		Message: "Do you carry XL?",
	})
	if err != nil {
		t.Fatalf("SubmitContactMessage failed: %v", err)
	}
	if msg.ID == "" {
		t.Error("stored message should carry a generated id")
	}

	if got := len(catalog.ContactMessages()); got != 1 {
		t.Errorf("expected 1 stored message, got %d", got)
	}
}

func TestGallery_CreateAndLookup(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	item, err := catalog.CreateGalleryItem(validation.GalleryItemInput{
		Title:    validation.Localized{En: "The Workshop", Ar: "الورشة"},
		ImageURL: "/images/gallery/workshop.jpg",
	})
	if err != nil {
		t.Fatalf("CreateGalleryItem failed: %v", err)
	}

	got, ok := catalog.GalleryItemByID(item.ID)
	if !ok || got.ImageURL != item.ImageURL {
		t.Error("gallery item lookup should return the stored item")
	}
}
