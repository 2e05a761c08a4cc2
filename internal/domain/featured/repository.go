package featured

import (
	"context"
	"errors"
	"time"
)

// Item is a displayable media entry or HTML snippet shown in the public
// gallery. Content is a URL for image/video items and raw markup for html
// items; it is stored as submitted.
type Item struct {
	ID         int64     `json:"id"`
	Type       string    `json:"type"`
	Content    string    `json:"content"`
	Caption    string    `json:"caption,omitempty"`
	OrderIndex int       `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	Active     bool      `json:"active"`
}

var ErrNotFound = errors.New("featured item not found")

type Repository interface {
	// List returns items ordered by order_index ascending, ties broken by
	// created_at descending. With onlyActive set, inactive items are
	// excluded.
	List(ctx context.Context, onlyActive bool) ([]Item, error)
	Create(ctx context.Context, item Item) (*Item, error)
	Update(ctx context.Context, item Item) (*Item, error)
	Delete(ctx context.Context, id int64) error
}
