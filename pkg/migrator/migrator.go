// Package migrator applies the embedded goose migrations.
package migrator

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

// Up applies every pending migration in files.
func Up(ctx context.Context, db *sql.DB, files fs.FS) error {
	p, err := provider(db, files)
	if err != nil {
		return err
	}
	if _, err := p.Up(ctx); err != nil {
		return fmt.Errorf("failed to up migrations: %w", err)
	}
	return nil
}

// Status reports every migration in files and whether it has been applied.
func Status(ctx context.Context, db *sql.DB, files fs.FS) ([]*goose.MigrationStatus, error) {
	p, err := provider(db, files)
	if err != nil {
		return nil, err
	}
	status, err := p.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration status: %w", err)
	}
	return status, nil
}

func provider(db *sql.DB, files fs.FS) (*goose.Provider, error) {
	p, err := goose.NewProvider(goose.DialectPostgres, db, files)
	if err != nil {
		return nil, fmt.Errorf("failed to create goose provider: %w", err)
	}
	return p, nil
}
