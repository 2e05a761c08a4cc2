package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/howdythrift/server/internal/domain/posts"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var _ posts.Repository = (*PostRepository)(nil)

type postRow struct {
	ID        int64
	Title     string
	Content   string
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
	Published bool
}

func (row postRow) toDomain() posts.Post {
	post := posts.Post{
		ID:        row.ID,
		Title:     row.Title,
		Content:   row.Content,
		Published: row.Published,
	}
	if row.CreatedAt.Valid {
		post.CreatedAt = row.CreatedAt.Time
	}
	if row.UpdatedAt.Valid {
		post.UpdatedAt = row.UpdatedAt.Time
	}
	return post
}

func (r *PostRepository) List(ctx context.Context, onlyPublished bool) ([]posts.Post, error) {
	rows, err := r.pool.Query(ctx, `
SELECT p.id, p.title, p.content, p.created_at, p.updated_at, p.published
  FROM posts p
 WHERE (NOT $1 OR p.published)
 ORDER BY p.created_at DESC, p.id DESC
`, onlyPublished)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	items := make([]posts.Post, 0)
	for rows.Next() {
		var row postRow
		if err := rows.Scan(&row.ID, &row.Title, &row.Content, &row.CreatedAt, &row.UpdatedAt, &row.Published); err != nil {
			return nil, fmt.Errorf("scan posts: %w", err)
		}
		items = append(items, row.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return items, nil
}

func (r *PostRepository) Get(ctx context.Context, id int64, onlyPublished bool) (*posts.Post, error) {
	row := r.pool.QueryRow(ctx, `
SELECT p.id, p.title, p.content, p.created_at, p.updated_at, p.published
  FROM posts p
 WHERE p.id = $1 AND (NOT $2 OR p.published)
`, id, onlyPublished)

	var data postRow
	if err := row.Scan(&data.ID, &data.Title, &data.Content, &data.CreatedAt, &data.UpdatedAt, &data.Published); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, posts.ErrNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}

	post := data.toDomain()
	return &post, nil
}

func (r *PostRepository) Create(ctx context.Context, title, content string) (*posts.Post, error) {
	row := r.pool.QueryRow(ctx, `
INSERT INTO posts (title, content)
VALUES ($1, $2)
RETURNING id, title, content, created_at, updated_at, published
`, title, content)

	var data postRow
	if err := row.Scan(&data.ID, &data.Title, &data.Content, &data.CreatedAt, &data.UpdatedAt, &data.Published); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	post := data.toDomain()
	return &post, nil
}

func (r *PostRepository) Update(ctx context.Context, id int64, title, content string, published bool) (*posts.Post, error) {
	row := r.pool.QueryRow(ctx, `
UPDATE posts
   SET title = $2, content = $3, published = $4, updated_at = now()
 WHERE id = $1
RETURNING id, title, content, created_at, updated_at, published
`, id, title, content, published)

	var data postRow
	if err := row.Scan(&data.ID, &data.Title, &data.Content, &data.CreatedAt, &data.UpdatedAt, &data.Published); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, posts.ErrNotFound
		}
		return nil, fmt.Errorf("update post: %w", err)
	}

	post := data.toDomain()
	return &post, nil
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return posts.ErrNotFound
	}
	return nil
}
