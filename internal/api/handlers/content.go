package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/howdythrift/server/internal/api/respond"
	"github.com/howdythrift/server/internal/domain/content"
)

type ContentHandler struct {
	service       *content.Service
	publicBaseURL string
}

func NewContentHandler(service *content.Service, publicBaseURL string) *ContentHandler {
	return &ContentHandler{
		service:       service,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}
}

// Get returns the block for the {type} path segment. A stored image_url is
// rewritten to the absolute media URL; the bare key stays in the database.
func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	block, err := h.service.Get(r.Context(), r.PathValue("type"))
	if err != nil {
		switch {
		case errors.Is(err, content.ErrNotFound):
			respond.Error(w, r, http.StatusNotFound, "Content not found", nil)
		case errors.Is(err, content.ErrInvalidInput):
			respond.Error(w, r, http.StatusBadRequest, "Content type is required", err)
		default:
			respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err)
		}
		return
	}

	if block.ImageURL != "" {
		block.ImageURL = h.publicBaseURL + "/media/" + block.ImageURL
	}
	respond.JSON(w, http.StatusOK, map[string]*content.Block{"content": block})
}

// Upsert replaces the block's full state. Title and image_url must be
// resent on every write or they are cleared.
func (h *ContentHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var params content.UpsertParams
	if err := decodeJSON(r, &params); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Content required", err)
		return
	}

	block, err := h.service.Upsert(r.Context(), r.PathValue("type"), params)
	if err != nil {
		if errors.Is(err, content.ErrInvalidInput) {
			respond.Error(w, r, http.StatusBadRequest, "Content required", err)
			return
		}
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]*content.Block{"content": block})
}
