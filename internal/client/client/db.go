package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/storykeeper/internal/client/migrations"
	"github.com/dmitrijs2005/storykeeper/internal/common"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (or creates) the embedded store at dsn and upgrades it
// to the current schema version. The call is idempotent; running it against
// an already-migrated database is a no-op. Any failure to open or migrate is
// reported as common.ErrStorageUnavailable.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", common.ErrStorageUnavailable, dsn, err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: migrate: %v", common.ErrStorageUnavailable, err)
	}

	return db, nil
}
