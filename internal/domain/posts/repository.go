package posts

import (
	"context"
	"errors"
	"time"
)

// Post is a dated announcement shown on the public site. Unpublished posts
// stay in the store but are excluded from public reads.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Published bool      `json:"published"`
}

var ErrNotFound = errors.New("post not found")

type Repository interface {
	// List returns posts newest first. With onlyPublished set, unpublished
	// posts are excluded.
	List(ctx context.Context, onlyPublished bool) ([]Post, error)
	Get(ctx context.Context, id int64, onlyPublished bool) (*Post, error)
	Create(ctx context.Context, title, content string) (*Post, error)
	Update(ctx context.Context, id int64, title, content string, published bool) (*Post, error)
	Delete(ctx context.Context, id int64) error
}
