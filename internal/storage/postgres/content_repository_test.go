package postgres

import (
	"context"
	"testing"

	"github.com/howdythrift/server/internal/domain/content"
	"github.com/stretchr/testify/require"
)

func TestContentBlockRepository_UpsertLastWriteWins(t *testing.T) {
	pool := setupPostgres(t)
	repo := &ContentBlockRepository{pool: pool}
	ctx := context.Background()

	_, err := repo.Upsert(ctx, content.Block{
		ID: "hours", Type: "hours", Title: "Hours",
		Content: "<p>old</p>", ImageURL: "hours.png",
	})
	require.NoError(t, err)

	updated, err := repo.Upsert(ctx, content.Block{
		ID: "hours", Type: "hours", Content: "<p>new</p>",
	})
	require.NoError(t, err)
	require.Equal(t, "<p>new</p>", updated.Content)
	require.Empty(t, updated.Title)
	require.Empty(t, updated.ImageURL)

	var count int
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT count(*) FROM content_blocks WHERE id = 'hours'`).Scan(&count))
	require.Equal(t, 1, count)
}

func TestContentBlockRepository_GetMissing(t *testing.T) {
	pool := setupPostgres(t)
	repo := &ContentBlockRepository{pool: pool}

	_, err := repo.Get(context.Background(), "mission")
	require.ErrorIs(t, err, content.ErrNotFound)
}

func TestSeedDefaultContent(t *testing.T) {
	pool := setupPostgres(t)
	ctx := context.Background()

	require.NoError(t, SeedDefaultContent(ctx, pool))

	repo := &ContentBlockRepository{pool: pool}
	mission, err := repo.Get(ctx, "mission")
	require.NoError(t, err)
	require.Equal(t, "Our Mission", mission.Title)

	hours, err := repo.Get(ctx, "hours")
	require.NoError(t, err)
	require.Contains(t, hours.Content, "Monday - Friday")

	// Seeding again must not clobber admin edits.
	_, err = repo.Upsert(ctx, content.Block{
		ID: "hours", Type: "hours", Content: "<p>edited</p>",
	})
	require.NoError(t, err)
	require.NoError(t, SeedDefaultContent(ctx, pool))

	hours, err = repo.Get(ctx, "hours")
	require.NoError(t, err)
	require.Equal(t, "<p>edited</p>", hours.Content)
}
