package storage

import (
	"github.com/howdythrift/server/internal/domain/content"
	"github.com/howdythrift/server/internal/domain/featured"
	"github.com/howdythrift/server/internal/domain/posts"
)

// Repository groups data access by domain.
type Repository interface {
	Posts() posts.Repository
	ContentBlocks() content.Repository
	Featured() featured.Repository
}
