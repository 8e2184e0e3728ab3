package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"souq-catalog/internal/middleware"
	"souq-catalog/internal/service"
	"souq-catalog/internal/store"
	"souq-catalog/internal/validation"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CatalogHandler handles HTTP requests for brands, products and the
// gallery. It owns none of the catalog logic: it decodes payloads, calls
// the catalog service, and maps outcomes to status codes.
type CatalogHandler struct {
	catalog service.CatalogService
	logger  *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog service.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// RegisterRoutes registers all catalog routes.
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/brands", func(r chi.Router) {
		r.Get("/", h.ListBrands)
		r.Post("/", h.CreateBrand)
		r.Get("/{slug}", h.GetBrand)
	})

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Post("/", h.CreateProduct)
		r.Get("/{slug}", h.GetProduct)
		r.Put("/{id}", h.UpdateProduct)
	})

	r.Route("/api/gallery", func(r chi.Router) {
		r.Get("/", h.ListGallery)
		r.Post("/", h.CreateGalleryItem)
	})
}

// ListBrands returns all brands.
func (h *CatalogHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.catalog.Brands())
}

// CreateBrand handles brand creation.
func (h *CatalogHandler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var in validation.BrandInput
	if !decodeJSON(w, r, &in) {
		return
	}

	brand, err := h.catalog.CreateBrand(in)
	if err != nil {
		h.respondError(w, r, err, "failed to create brand")
		return
	}

	h.logger.Info("Brand created", zap.String("brand_id", brand.ID), zap.String("slug", brand.Slug))
	middleware.RespondWithJSON(w, http.StatusCreated, brand)
}

// GetBrand looks up a brand by slug. Absence maps to 404.
func (h *CatalogHandler) GetBrand(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	brand, ok := h.catalog.BrandBySlug(slug)
	if !ok {
		middleware.RespondWithError(w, http.StatusNotFound, "brand not found")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, brand)
}

// ListProducts returns products, optionally filtered by category, brand or
// the featured flag. Filter translation lives in the catalog service.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := service.ProductFilter{
		Category: q.Get("category"),
		Brand:    q.Get("brand"),
		Featured: q.Get("featured"),
	}
	middleware.RespondWithJSON(w, http.StatusOK, h.catalog.Products(filter))
}

// CreateProduct handles product creation.
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var in validation.ProductInput
	if !decodeJSON(w, r, &in) {
		return
	}

	product, err := h.catalog.CreateProduct(in)
	if err != nil {
		h.respondError(w, r, err, "failed to create product")
		return
	}

	h.logger.Info("Product created", zap.String("product_id", product.ID), zap.String("slug", product.Slug))
	middleware.RespondWithJSON(w, http.StatusCreated, product)
}

// GetProduct looks up a product by slug.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	product, ok := h.catalog.ProductBySlug(slug)
	if !ok {
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// UpdateProduct merges the provided fields into an existing product.
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in validation.ProductUpdateInput
	if !decodeJSON(w, r, &in) {
		return
	}

	product, err := h.catalog.UpdateProduct(id, in)
	if err != nil {
		h.respondError(w, r, err, "failed to update product")
		return
	}

	h.logger.Info("Product updated", zap.String("product_id", product.ID))
	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// ListGallery returns all gallery items.
func (h *CatalogHandler) ListGallery(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.catalog.GalleryItems())
}

// CreateGalleryItem handles gallery item creation.
func (h *CatalogHandler) CreateGalleryItem(w http.ResponseWriter, r *http.Request) {
	var in validation.GalleryItemInput
	if !decodeJSON(w, r, &in) {
		return
	}

	item, err := h.catalog.CreateGalleryItem(in)
	if err != nil {
		h.respondError(w, r, err, "failed to create gallery item")
		return
	}
	middleware.RespondWithJSON(w, http.StatusCreated, item)
}

// decodeJSON decodes a request body into dst. A field of the wrong JSON
// type is reported like a failed validation rule, naming the field; any
// other decode failure is a plain bad request.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			middleware.RespondWithValidationErrors(w, []validation.FieldError{{
				Field:   typeErr.Field,
				Rule:    "type",
				Message: "Expected type " + typeErr.Type.String(),
			}})
			return false
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// respondError maps service errors onto status codes: validation failures
// to 400 with field detail, duplicate keys to 409, missing records to 404.
func (h *CatalogHandler) respondError(w http.ResponseWriter, r *http.Request, err error, logMsg string) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		h.logger.Debug("Validation failed", zap.String("path", r.URL.Path), zap.Error(err))
		middleware.RespondWithValidationErrors(w, verr.Fields)
	case errors.Is(err, store.ErrDuplicateSlug):
		middleware.RespondWithError(w, http.StatusConflict, "slug already exists")
	case errors.Is(err, store.ErrDuplicateSku):
		middleware.RespondWithError(w, http.StatusConflict, "sku already exists")
	case errors.Is(err, store.ErrProductNotFound):
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
	default:
		h.logger.Error(logMsg, zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, logMsg)
	}
}
