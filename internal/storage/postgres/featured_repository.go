package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/howdythrift/server/internal/domain/featured"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var _ featured.Repository = (*FeaturedItemRepository)(nil)

type featuredItemRow struct {
	ID         int64
	Type       string
	Content    string
	Caption    *string
	OrderIndex int
	CreatedAt  pgtype.Timestamptz
	Active     bool
}

func (row featuredItemRow) toDomain() featured.Item {
	item := featured.Item{
		ID:         row.ID,
		Type:       row.Type,
		Content:    row.Content,
		Caption:    derefString(row.Caption),
		OrderIndex: row.OrderIndex,
		Active:     row.Active,
	}
	if row.CreatedAt.Valid {
		item.CreatedAt = row.CreatedAt.Time
	}
	return item
}

func (r *FeaturedItemRepository) List(ctx context.Context, onlyActive bool) ([]featured.Item, error) {
	rows, err := r.pool.Query(ctx, `
SELECT f.id, f.type, f.content, f.caption, f.order_index, f.created_at, f.active
  FROM featured_items f
 WHERE (NOT $1 OR f.active)
 ORDER BY f.order_index ASC, f.created_at DESC, f.id DESC
`, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("list featured items: %w", err)
	}
	defer rows.Close()

	items := make([]featured.Item, 0)
	for rows.Next() {
		var row featuredItemRow
		if err := rows.Scan(&row.ID, &row.Type, &row.Content, &row.Caption, &row.OrderIndex, &row.CreatedAt, &row.Active); err != nil {
			return nil, fmt.Errorf("scan featured items: %w", err)
		}
		items = append(items, row.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate featured items: %w", err)
	}
	return items, nil
}

func (r *FeaturedItemRepository) Create(ctx context.Context, item featured.Item) (*featured.Item, error) {
	row := r.pool.QueryRow(ctx, `
INSERT INTO featured_items (type, content, caption, order_index, active)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, type, content, caption, order_index, created_at, active
`, item.Type, item.Content, nullableString(item.Caption), item.OrderIndex, item.Active)

	var data featuredItemRow
	if err := row.Scan(&data.ID, &data.Type, &data.Content, &data.Caption, &data.OrderIndex, &data.CreatedAt, &data.Active); err != nil {
		return nil, fmt.Errorf("create featured item: %w", err)
	}

	created := data.toDomain()
	return &created, nil
}

func (r *FeaturedItemRepository) Update(ctx context.Context, item featured.Item) (*featured.Item, error) {
	row := r.pool.QueryRow(ctx, `
UPDATE featured_items
   SET type = $2, content = $3, caption = $4, order_index = $5, active = $6
 WHERE id = $1
RETURNING id, type, content, caption, order_index, created_at, active
`, item.ID, item.Type, item.Content, nullableString(item.Caption), item.OrderIndex, item.Active)

	var data featuredItemRow
	if err := row.Scan(&data.ID, &data.Type, &data.Content, &data.Caption, &data.OrderIndex, &data.CreatedAt, &data.Active); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, featured.ErrNotFound
		}
		return nil, fmt.Errorf("update featured item: %w", err)
	}

	updated := data.toDomain()
	return &updated, nil
}

func (r *FeaturedItemRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM featured_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete featured item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return featured.ErrNotFound
	}
	return nil
}
