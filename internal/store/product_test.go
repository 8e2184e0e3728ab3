package store

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
)

// checkIndexConsistency verifies the core invariant: every product appears
// in its category index, in its brand index when it references a brand, and
// in the featured index exactly when its flag is set.
func checkIndexConsistency(t *testing.T, s *Store) {
	t.Helper()

	featured := make(map[string]bool)
	for _, p := range s.FeaturedProducts() {
		featured[p.ID] = true
	}

	for _, p := range s.Products() {
		inCategory := false
		for _, cp := range s.ProductsByCategory(p.Category) {
			if cp.ID == p.ID {
				inCategory = true
			}
		}
		if !inCategory {
			t.Errorf("product %s missing from category index %q", p.Slug, p.Category)
		}

		if p.BrandID != "" {
			inBrand := false
			for _, bp := range s.ProductsByBrand(p.BrandID) {
				if bp.ID == p.ID {
					inBrand = true
				}
			}
			if !inBrand {
				t.Errorf("product %s missing from brand index %q", p.Slug, p.BrandID)
			}
		}

		if p.Featured != featured[p.ID] {
			t.Errorf("product %s: featured flag %v disagrees with featured index", p.Slug, p.Featured)
		}

		bySlug, ok := s.ProductBySlug(p.Slug)
		if !ok || bySlug.ID != p.ID {
			t.Errorf("product %s missing from slug index", p.Slug)
		}
	}
}

func TestCreateProduct_DuplicateSlug(t *testing.T) {
	s := newTestStore()

	if _, err := s.CreateProduct(testProduct("sadu-vest", "vests")); err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	other := testProduct("sadu-vest", "cloaks")
	if _, err := s.CreateProduct(other); !errors.Is(err, ErrDuplicateSlug) {
		t.Fatalf("expected ErrDuplicateSlug, got %v", err)
	}

	if got := len(s.Products()); got != 1 {
		t.Errorf("rejected create must not grow the collection, got %d products", got)
	}
	if got := len(s.ProductsByCategory("cloaks")); got != 0 {
		t.Errorf("rejected create must not touch the category index, got %d entries", got)
	}
	checkIndexConsistency(t, s)
}

func TestCreateProduct_DuplicateSKU(t *testing.T) {
	s := newTestStore()

	first := testProduct("first", "vests")
	first.SKU = "VA-001"
	if _, err := s.CreateProduct(first); err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	second := testProduct("second", "vests")
	second.SKU = "VA-001"
	if _, err := s.CreateProduct(second); !errors.Is(err, ErrDuplicateSku) {
		t.Fatalf("expected ErrDuplicateSku, got %v", err)
	}

	// Absent SKUs never collide
	third := testProduct("third", "vests")
	if _, err := s.CreateProduct(third); err != nil {
		t.Fatalf("product without sku should not collide: %v", err)
	}
	fourth := testProduct("fourth", "vests")
	if _, err := s.CreateProduct(fourth); err != nil {
		t.Fatalf("second product without sku should not collide: %v", err)
	}
}

func TestUpdateProduct_NotFound(t *testing.T) {
	s := newTestStore()

	featured := true
	_, err := s.UpdateProduct("missing", ProductUpdate{Featured: &featured})
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestUpdateProduct_MergesOnlyProvidedFields(t *testing.T) {
	s := newTestStore()

	created, err := s.CreateProduct(testProduct("royal-bisht", "cloaks"))
	if err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	price := decimal.RequireFromString("1450.00")
	updated, err := s.UpdateProduct(created.ID, ProductUpdate{Price: &price})
	if err != nil {
		t.Fatalf("UpdateProduct failed: %v", err)
	}

	if !updated.Price.Equal(price) {
		t.Errorf("expected price %s, got %s", price, updated.Price)
	}
	if updated.Slug != created.Slug || updated.Category != created.Category {
		t.Error("untouched fields must survive a partial update")
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) && !updated.UpdatedAt.Equal(created.UpdatedAt) {
		t.Error("update timestamp should be bumped")
	}
}

// Moving a product between categories and flipping its featured flag must
// re-derive all affected indices in the same observable step.
func TestUpdateProduct_ReindexesChangedFields(t *testing.T) {
	s := newTestStore()

	created, err := s.CreateProduct(testProduct("winter-vest", "vests"))
	if err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	category := "cloaks"
	featured := true
	if _, err := s.UpdateProduct(created.ID, ProductUpdate{
		Category: &category,
		Featured: &featured,
	}); err != nil {
		t.Fatalf("UpdateProduct failed: %v", err)
	}

	if got := len(s.ProductsByCategory("vests")); got != 0 {
		t.Errorf("product should have left the vests index, found %d entries", got)
	}
	cloaks := s.ProductsByCategory("cloaks")
	if len(cloaks) != 1 || cloaks[0].ID != created.ID {
		t.Error("product should have moved into the cloaks index")
	}
	featuredList := s.FeaturedProducts()
	if len(featuredList) != 1 || featuredList[0].ID != created.ID {
		t.Error("product should have entered the featured index")
	}
	checkIndexConsistency(t, s)
}

func TestUpdateProduct_SlugAndSKUChangesReindex(t *testing.T) {
	s := newTestStore()

	p := testProduct("old-slug", "vests")
	p.SKU = "OLD-SKU"
	created, err := s.CreateProduct(p)
	if err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	newSlug := "new-slug"
	newSKU := "NEW-SKU"
	if _, err := s.UpdateProduct(created.ID, ProductUpdate{Slug: &newSlug, SKU: &newSKU}); err != nil {
		t.Fatalf("UpdateProduct failed: %v", err)
	}

	if _, ok := s.ProductBySlug("old-slug"); ok {
		t.Error("old slug should no longer resolve")
	}
	if got, ok := s.ProductBySlug("new-slug"); !ok || got.ID != created.ID {
		t.Error("new slug should resolve to the product")
	}

	// The freed slug and sku are reusable
	reuse := testProduct("old-slug", "vests")
	reuse.SKU = "OLD-SKU"
	if _, err := s.CreateProduct(reuse); err != nil {
		t.Errorf("freed slug and sku should be reusable: %v", err)
	}
}

func TestUpdateProduct_DuplicateSlugRejectedWithoutMutation(t *testing.T) {
	s := newTestStore()

	if _, err := s.CreateProduct(testProduct("taken", "vests")); err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}
	created, err := s.CreateProduct(testProduct("mine", "vests"))
	if err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	taken := "taken"
	category := "cloaks"
	_, err = s.UpdateProduct(created.ID, ProductUpdate{Slug: &taken, Category: &category})
	if !errors.Is(err, ErrDuplicateSlug) {
		t.Fatalf("expected ErrDuplicateSlug, got %v", err)
	}

	// Nothing may have changed, not even the non-conflicting fields
	current, ok := s.ProductByID(created.ID)
	if !ok {
		t.Fatal("product disappeared")
	}
	if current.Slug != "mine" || current.Category != "vests" {
		t.Error("rejected update must leave the record untouched")
	}
	checkIndexConsistency(t, s)
}

func TestProduct_WeakBrandReferenceTolerated(t *testing.T) {
	s := newTestStore()

	p := testProduct("orphan", "vests")
	p.BrandID = "no-such-brand"
	if _, err := s.CreateProduct(p); err != nil {
		t.Fatalf("dangling brand reference must not be an error: %v", err)
	}

	byBrand := s.ProductsByBrand("no-such-brand")
	if len(byBrand) != 1 {
		t.Error("brand index works regardless of whether the brand exists")
	}
}

func TestProduct_ReturnedRecordsAreCopies(t *testing.T) {
	s := newTestStore()

	created, err := s.CreateProduct(testProduct("immutable", "vests"))
	if err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	created.Tags = append(created.Tags, "mutated")
	created.Category = "hacked"

	stored, _ := s.ProductByID(created.ID)
	if stored.Category != "vests" || len(stored.Tags) != 0 {
		t.Error("mutating a returned record must not affect the store")
	}
}

func TestCreateProduct_ConcurrentDistinctSlugs(t *testing.T) {
	s := newTestStore()
	const n = 64

	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := testProduct(fmt.Sprintf("slug-%d", i), fmt.Sprintf("category-%d", i%4))
			p.Featured = i%2 == 0
			_, errs[i] = s.CreateProduct(p)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("concurrent create %d failed: %v", i, err)
		}
	}
	if got := len(s.Products()); got != n {
		t.Fatalf("expected %d products, got %d", n, got)
	}
	if got := len(s.FeaturedProducts()); got != n/2 {
		t.Errorf("expected %d featured products, got %d", n/2, got)
	}
	checkIndexConsistency(t, s)
}

func TestCreateProduct_ConcurrentSameSlugExactlyOneWins(t *testing.T) {
	s := newTestStore()
	const n = 16

	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.CreateProduct(testProduct("contested", "vests"))
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		switch {
		case err == nil:
			winners++
		case errors.Is(err, ErrDuplicateSlug):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if winners != 1 {
		t.Fatalf("expected exactly one winner, got %d", winners)
	}
	if got := len(s.Products()); got != 1 {
		t.Fatalf("expected 1 product, got %d", got)
	}
	checkIndexConsistency(t, s)
}
