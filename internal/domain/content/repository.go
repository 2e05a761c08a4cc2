package content

import (
	"context"
	"errors"
	"time"
)

// Block is a single named rich-text section of the public site (mission
// statement, hours). The id doubles as the type tag and is the primary key;
// writes are full-overwrite upserts.
type Block struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"image_url,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

var ErrNotFound = errors.New("content block not found")

type Repository interface {
	Get(ctx context.Context, id string) (*Block, error)
	// Upsert inserts or fully replaces the block with the given id. Fields
	// not supplied by the caller are cleared, not merged.
	Upsert(ctx context.Context, block Block) (*Block, error)
}
