package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/howdythrift/server/internal/domain/content"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var _ content.Repository = (*ContentBlockRepository)(nil)

type contentBlockRow struct {
	ID        string
	Type      string
	Title     *string
	Content   string
	ImageURL  *string
	UpdatedAt pgtype.Timestamptz
}

func (row contentBlockRow) toDomain() content.Block {
	block := content.Block{
		ID:       row.ID,
		Type:     row.Type,
		Title:    derefString(row.Title),
		Content:  row.Content,
		ImageURL: derefString(row.ImageURL),
	}
	if row.UpdatedAt.Valid {
		block.UpdatedAt = row.UpdatedAt.Time
	}
	return block
}

func (r *ContentBlockRepository) Get(ctx context.Context, id string) (*content.Block, error) {
	row := r.pool.QueryRow(ctx, `
SELECT c.id, c.type, c.title, c.content, c.image_url, c.updated_at
  FROM content_blocks c
 WHERE c.id = $1
`, id)

	var data contentBlockRow
	if err := row.Scan(&data.ID, &data.Type, &data.Title, &data.Content, &data.ImageURL, &data.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, content.ErrNotFound
		}
		return nil, fmt.Errorf("get content block: %w", err)
	}

	block := data.toDomain()
	return &block, nil
}

// Upsert is a full-row overwrite: prior title and image_url are replaced,
// not merged, so a write that omits them clears them.
func (r *ContentBlockRepository) Upsert(ctx context.Context, block content.Block) (*content.Block, error) {
	row := r.pool.QueryRow(ctx, `
INSERT INTO content_blocks (id, type, title, content, image_url, updated_at)
VALUES ($1, $2, $3, $4, $5, now())
ON CONFLICT (id) DO UPDATE
   SET type = EXCLUDED.type,
       title = EXCLUDED.title,
       content = EXCLUDED.content,
       image_url = EXCLUDED.image_url,
       updated_at = now()
RETURNING id, type, title, content, image_url, updated_at
`, block.ID, block.Type, nullableString(block.Title), block.Content, nullableString(block.ImageURL))

	var data contentBlockRow
	if err := row.Scan(&data.ID, &data.Type, &data.Title, &data.Content, &data.ImageURL, &data.UpdatedAt); err != nil {
		return nil, fmt.Errorf("upsert content block: %w", err)
	}

	result := data.toDomain()
	return &result, nil
}
