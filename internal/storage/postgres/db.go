package postgres

import (
	"fmt"

	"github.com/howdythrift/server/internal/domain/content"
	"github.com/howdythrift/server/internal/domain/featured"
	"github.com/howdythrift/server/internal/domain/posts"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) (*Repository, error) {
	if pool == nil {
		return nil, fmt.Errorf("postgres repository: pool is nil")
	}
	return &Repository{pool: pool}, nil
}

func (r *Repository) Posts() posts.Repository {
	return &PostRepository{pool: r.pool}
}

func (r *Repository) ContentBlocks() content.Repository {
	return &ContentBlockRepository{pool: r.pool}
}

func (r *Repository) Featured() featured.Repository {
	return &FeaturedItemRepository{pool: r.pool}
}

type PostRepository struct {
	pool *pgxpool.Pool
}

type ContentBlockRepository struct {
	pool *pgxpool.Pool
}

type FeaturedItemRepository struct {
	pool *pgxpool.Pool
}
