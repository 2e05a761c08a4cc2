package handlers

import (
	"errors"
	"net/http"

	"github.com/howdythrift/server/internal/api/respond"
	"github.com/howdythrift/server/internal/domain/posts"
)

type PostsHandler struct {
	service *posts.Service
}

func NewPostsHandler(service *posts.Service) *PostsHandler {
	return &PostsHandler{service: service}
}

// List returns published posts, newest first. Unpublished posts never
// appear here regardless of authentication.
func (h *PostsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListPublished(r.Context())
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string][]posts.Post{"posts": items})
}

func (h *PostsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Invalid post id", err)
		return
	}

	post, err := h.service.GetPublished(r.Context(), id)
	if err != nil {
		if errors.Is(err, posts.ErrNotFound) {
			respond.Error(w, r, http.StatusNotFound, "Post not found", nil)
			return
		}
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]*posts.Post{"post": post})
}

func (h *PostsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var params posts.CreateParams
	if err := decodeJSON(r, &params); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Title and content required", err)
		return
	}

	post, err := h.service.Create(r.Context(), params)
	if err != nil {
		if errors.Is(err, posts.ErrInvalidInput) {
			respond.Error(w, r, http.StatusBadRequest, "Title and content required", err)
			return
		}
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err)
		return
	}
	respond.JSON(w, http.StatusCreated, map[string]*posts.Post{"post": post})
}

func (h *PostsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Invalid post id", err)
		return
	}

	var params posts.UpdateParams
	if err := decodeJSON(r, &params); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Title and content required", err)
		return
	}

	post, err := h.service.Update(r.Context(), id, params)
	if err != nil {
		switch {
		case errors.Is(err, posts.ErrInvalidInput):
			respond.Error(w, r, http.StatusBadRequest, "Title and content required", err)
		case errors.Is(err, posts.ErrNotFound):
			respond.Error(w, r, http.StatusNotFound, "Post not found", nil)
		default:
			respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err)
		}
		return
	}
	respond.JSON(w, http.StatusOK, map[string]*posts.Post{"post": post})
}

func (h *PostsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Invalid post id", err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, posts.ErrNotFound) {
			respond.Error(w, r, http.StatusNotFound, "Post not found", nil)
			return
		}
		respond.Error(w, r, http.StatusInternalServerError, "Internal server error", err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
