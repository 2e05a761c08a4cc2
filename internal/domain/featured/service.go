package featured

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidInput = errors.New("invalid input")

type CreateParams struct {
	Type       string `json:"type" validate:"required,oneof=image video html"`
	Content    string `json:"content" validate:"required"`
	Caption    string `json:"caption"`
	OrderIndex int    `json:"order_index"`
}

type UpdateParams struct {
	Type       string `json:"type" validate:"required,oneof=image video html"`
	Content    string `json:"content" validate:"required"`
	Caption    string `json:"caption"`
	OrderIndex int    `json:"order_index"`
	// Active defaults to true when omitted.
	Active *bool `json:"active"`
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

// ListActive returns the publicly visible gallery in display order.
func (s *Service) ListActive(ctx context.Context) ([]Item, error) {
	return s.repo.List(ctx, true)
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Item, error) {
	if err := s.validator.Struct(params); err != nil {
		return nil, fmt.Errorf("%w: type (image, video, or html) and content are required", ErrInvalidInput)
	}
	return s.repo.Create(ctx, Item{
		Type:       params.Type,
		Content:    params.Content,
		Caption:    params.Caption,
		OrderIndex: params.OrderIndex,
		Active:     true,
	})
}

// Update replaces the full state of an item; the caller must resend every
// field.
func (s *Service) Update(ctx context.Context, id int64, params UpdateParams) (*Item, error) {
	if err := s.validator.Struct(params); err != nil {
		return nil, fmt.Errorf("%w: type (image, video, or html) and content are required", ErrInvalidInput)
	}
	active := true
	if params.Active != nil {
		active = *params.Active
	}
	return s.repo.Update(ctx, Item{
		ID:         id,
		Type:       params.Type,
		Content:    params.Content,
		Caption:    params.Caption,
		OrderIndex: params.OrderIndex,
		Active:     active,
	})
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
