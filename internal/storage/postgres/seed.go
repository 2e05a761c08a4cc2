package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Default content blocks inserted at first boot. Only missing rows are
// written; admin edits are never overwritten.
var defaultBlocks = []struct {
	id       string
	title    string
	content  string
	imageURL *string
}{
	{
		id:      "mission",
		title:   "Our Mission",
		content: "<p>Curated, pop-up thrift store for punks and queers</p>",
	},
	{
		id:      "hours",
		title:   "Hours",
		content: "<ul><li>Monday - Friday: 10am - 6pm</li><li>Saturday: 11am - 5pm</li><li>Sunday: Closed</li></ul>",
	},
}

// SeedDefaultContent inserts the default mission and hours blocks if absent.
func SeedDefaultContent(ctx context.Context, pool *pgxpool.Pool) error {
	for _, block := range defaultBlocks {
		_, err := pool.Exec(ctx, `
INSERT INTO content_blocks (id, type, title, content, image_url)
VALUES ($1, $1, $2, $3, $4)
ON CONFLICT (id) DO NOTHING
`, block.id, block.title, block.content, block.imageURL)
		if err != nil {
			return fmt.Errorf("seed content block %s: %w", block.id, err)
		}
	}
	return nil
}
