package posts

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/howdythrift/server/internal/sanitize"
)

// ErrInvalidInput is returned when a request fails validation; handlers map
// it to a 400 response.
var ErrInvalidInput = errors.New("invalid input")

type CreateParams struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type UpdateParams struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	// Published defaults to true when the client omits it, matching the
	// create path's default.
	Published *bool `json:"published"`
}

type Service struct {
	repo      Repository
	validator *validator.Validate
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:      repo,
		validator: validator.New(),
	}
}

// ListPublished returns publicly visible posts, newest first.
func (s *Service) ListPublished(ctx context.Context) ([]Post, error) {
	return s.repo.List(ctx, true)
}

// GetPublished returns a single post visible on the public site.
func (s *Service) GetPublished(ctx context.Context, id int64) (*Post, error) {
	return s.repo.Get(ctx, id, true)
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Post, error) {
	if err := s.validator.Struct(params); err != nil {
		return nil, fmt.Errorf("%w: title and content are required", ErrInvalidInput)
	}
	return s.repo.Create(ctx, params.Title, sanitize.Content(params.Content))
}

func (s *Service) Update(ctx context.Context, id int64, params UpdateParams) (*Post, error) {
	if err := s.validator.Struct(params); err != nil {
		return nil, fmt.Errorf("%w: title and content are required", ErrInvalidInput)
	}
	published := true
	if params.Published != nil {
		published = *params.Published
	}
	return s.repo.Update(ctx, id, params.Title, sanitize.Content(params.Content), published)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
