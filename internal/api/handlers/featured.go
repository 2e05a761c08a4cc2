package handlers

import (
	"errors"
	"net/http"

	"github.com/howdythrift/server/internal/api/respond"
	"github.com/howdythrift/server/internal/domain/featured"
)

type FeaturedHandler struct {
	service *featured.Service
}

func NewFeaturedHandler(service *featured.Service) *FeaturedHandler {
	return &FeaturedHandler{service: service}
}

// List returns active items ordered for display: order_index ascending,
// newest first within a tier.
func (h *FeaturedHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListActive(r.Context())
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string][]featured.Item{"featured": items})
}

func (h *FeaturedHandler) Create(w http.ResponseWriter, r *http.Request) {
	var params featured.CreateParams
	if err := decodeJSON(r, &params); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Type and content required", err)
		return
	}

	item, err := h.service.Create(r.Context(), params)
	if err != nil {
		if errors.Is(err, featured.ErrInvalidInput) {
			respond.Error(w, r, http.StatusBadRequest, "Type and content required", err)
			return
		}
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err)
		return
	}
	respond.JSON(w, http.StatusCreated, map[string]*featured.Item{"featured": item})
}

func (h *FeaturedHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Invalid featured item id", err)
		return
	}

	var params featured.UpdateParams
	if err := decodeJSON(r, &params); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Type and content required", err)
		return
	}

	item, err := h.service.Update(r.Context(), id, params)
	if err != nil {
		switch {
		case errors.Is(err, featured.ErrInvalidInput):
			respond.Error(w, r, http.StatusBadRequest, "Type and content required", err)
		case errors.Is(err, featured.ErrNotFound):
			respond.Error(w, r, http.StatusNotFound, "Featured content not found", nil)
		default:
			respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err)
		}
		return
	}
	respond.JSON(w, http.StatusOK, map[string]*featured.Item{"featured": item})
}

func (h *FeaturedHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Invalid featured item id", err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, featured.ErrNotFound) {
			respond.Error(w, r, http.StatusNotFound, "Featured content not found", nil)
			return
		}
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
