// Package store owns the four catalog collections (brands, products,
// gallery items, contact messages) and every secondary index derived from
// them. It is the only component that mutates catalog state.
//
// All state lives in process memory for the lifetime of the process; there
// is no persistence across restarts. A single lock per store makes each
// write (the record insert plus every index it touches) visible to readers
// atomically.
package store

import (
	"errors"
	"sync"

	"souq-catalog/internal/domain"
	"souq-catalog/internal/identity"
)

var (
	ErrDuplicateSlug   = errors.New("slug already exists")
	ErrDuplicateSku    = errors.New("sku already exists")
	ErrProductNotFound = errors.New("product not found")
)

// Store is the in-memory catalog store. Construct one with New and pass it
// to callers explicitly; there is no process-wide instance, so tests can
// run independent stores side by side.
type Store struct {
	mu  sync.RWMutex
	ids identity.Generator

	brands     map[string]*domain.Brand
	brandOrder []string
	brandSlugs map[string]string // slug -> id

	products     map[string]*domain.Product
	productOrder []string
	productSlugs map[string]string   // slug -> id
	productSKUs  map[string]string   // sku -> id
	byCategory   map[string][]string // category -> ids, insertion order
	byBrand      map[string][]string // brand id -> ids
	featured     []string            // ids with the featured flag set

	gallery      map[string]*domain.GalleryItem
	galleryOrder []string

	contacts []domain.ContactMessage
}

// New creates an empty catalog store that assigns ids from the given
// generator.
func New(ids identity.Generator) *Store {
	return &Store{
		ids:          ids,
		brands:       make(map[string]*domain.Brand),
		brandSlugs:   make(map[string]string),
		products:     make(map[string]*domain.Product),
		productSlugs: make(map[string]string),
		productSKUs:  make(map[string]string),
		byCategory:   make(map[string][]string),
		byBrand:      make(map[string][]string),
		gallery:      make(map[string]*domain.GalleryItem),
	}
}

// removeID deletes the first occurrence of id from ids, preserving order.
func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
