package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent cannot express in schema definitions.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// At most one primary document per event.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS event_docs_single_primary
		ON event_docs (event_id)
		WHERE is_primary`)
	if err != nil {
		return fmt.Errorf("failed to create single-primary index: %w", err)
	}

	// A URL stores at most one snapshot per content hash.
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS snapshots_url_content_hash
		ON snapshots (url, content_hash)`)
	if err != nil {
		return fmt.Errorf("failed to create snapshot url/content index: %w", err)
	}

	return nil
}
