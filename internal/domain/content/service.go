package content

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/howdythrift/server/internal/sanitize"
)

var ErrInvalidInput = errors.New("invalid input")

type UpsertParams struct {
	Content  string `json:"content" validate:"required"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
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

func (s *Service) Get(ctx context.Context, blockType string) (*Block, error) {
	blockType = strings.TrimSpace(blockType)
	if blockType == "" {
		return nil, fmt.Errorf("%w: type is required", ErrInvalidInput)
	}
	return s.repo.Get(ctx, blockType)
}

// Upsert writes the full state of a block under the given type. The caller
// must resend title and image_url on every write; omitted fields are
// discarded (last write wins).
func (s *Service) Upsert(ctx context.Context, blockType string, params UpsertParams) (*Block, error) {
	blockType = strings.TrimSpace(blockType)
	if blockType == "" {
		return nil, fmt.Errorf("%w: type is required", ErrInvalidInput)
	}
	if err := s.validator.Struct(params); err != nil {
		return nil, fmt.Errorf("%w: content is required", ErrInvalidInput)
	}

	return s.repo.Upsert(ctx, Block{
		ID:       blockType,
		Type:     blockType,
		Title:    params.Title,
		Content:  sanitize.Content(params.Content),
		ImageURL: params.ImageURL,
	})
}
