package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/howdythrift/server/internal/api/respond"
	"github.com/howdythrift/server/internal/domain/media"
	"github.com/howdythrift/server/internal/metrics"
)

// maxUploadBytes caps a single media upload at 25 MiB.
const maxUploadBytes = 25 << 20

type MediaHandler struct {
	service *media.Service
}

func NewMediaHandler(service *media.Service) *MediaHandler {
	return &MediaHandler{service: service}
}

// Upload accepts a multipart form with a single "file" field and returns
// the generated key and public URL.
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "No file provided", err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "No file provided", err)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	upload, err := h.service.Ingest(r.Context(), file, header.Filename, contentType)
	if err != nil {
		metrics.MediaUploadsTotal.WithLabelValues("error").Inc()
		respond.Error(w, r, http.StatusInternalServerError, "Failed to store file", err)
		return
	}
	metrics.MediaUploadsTotal.WithLabelValues("ok").Inc()
	respond.JSON(w, http.StatusCreated, upload)
}

// Serve streams a stored object back by key. Keys are immutable, so
// responses carry a year-long cache lifetime.
func (h *MediaHandler) Serve(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	if key == "" {
		respond.Error(w, r, http.StatusNotFound, "File not found", nil)
		return
	}

	obj, err := h.service.Fetch(r.Context(), key)
	if err != nil {
		if errors.Is(err, media.ErrNotFound) {
			respond.Error(w, r, http.StatusNotFound, "File not found", nil)
			return
		}
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err)
		return
	}
	defer obj.Body.Close()

	if obj.ContentType != "" {
		w.Header().Set("Content-Type", obj.ContentType)
	}
	if obj.ContentLength > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(obj.ContentLength, 10))
	}
	if obj.ETag != "" {
		w.Header().Set("ETag", obj.ETag)
	}
	w.Header().Set("Cache-Control", "public, max-age=31536000")

	_, _ = io.Copy(w, obj.Body)
}
