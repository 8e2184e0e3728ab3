package transport

import (
	"errors"
	"net/http"

	"souq-catalog/internal/middleware"
	"souq-catalog/internal/service"
	"souq-catalog/internal/validation"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ContactHandler handles contact-form submissions and the administrative
// message listing.
type ContactHandler struct {
	catalog service.CatalogService
	logger  *zap.Logger
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(catalog service.CatalogService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// RegisterRoutes registers contact routes. The submit route takes an
// optional rate limiter since it is the one write path open to anonymous
// visitors.
func (h *ContactHandler) RegisterRoutes(r chi.Router, limiter func(http.Handler) http.Handler) {
	r.Route("/api/contact", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if limiter != nil {
				r.Use(limiter)
			}
			r.Post("/", h.Submit)
		})
		r.Get("/", h.ListMessages)
	})
}

// Submit handles a contact-form submission.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in validation.ContactMessageInput
	if !decodeJSON(w, r, &in) {
		return
	}

	msg, err := h.catalog.SubmitContactMessage(in)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			h.logger.Debug("Contact form validation failed", zap.Error(err))
			middleware.RespondWithValidationErrors(w, verr.Fields)
			return
		}
		h.logger.Error("Failed to store contact message", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to submit message")
		return
	}

	h.logger.Info("Contact message received", zap.String("message_id", msg.ID))
	middleware.RespondWithJSON(w, http.StatusCreated, msg)
}

// ListMessages returns all contact messages in insertion order.
func (h *ContactHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.catalog.ContactMessages())
}
