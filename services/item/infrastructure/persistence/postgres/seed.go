package postgres

import (
	"context"
	"fmt"

	"github.com/youbeemuhwan/commercial/pkg/database"
	"github.com/youbeemuhwan/commercial/services/item/domain/models"
	"github.com/youbeemuhwan/commercial/services/item/infrastructure/persistence/postgres/db"
)

// ReferenceData is a full set of reference rows keyed by explicit ids.
type ReferenceData struct {
	Categories       []models.Category
	DetailCategories []models.DetailCategory
	Colors           []models.Color
	Sizes            []models.Size
}

// ReferenceSeeder upserts reference data. Catalog operations never write
// these tables; seeding is an operator task.
type ReferenceSeeder struct {
	db *database.Database
}

func NewReferenceSeeder(database *database.Database) *ReferenceSeeder {
	return &ReferenceSeeder{db: database}
}

// Seed upserts every row in data inside one transaction, then moves the
// identity sequences past the highest seeded id.
func (s *ReferenceSeeder) Seed(ctx context.Context, data ReferenceData) error {
	return s.db.WithinTx(ctx, func(ctx context.Context) error {
		q := db.New(s.db.Conn(ctx))

		for _, c := range data.Categories {
			if err := q.UpsertCategory(ctx, db.UpsertCategoryParams{ID: c.ID, Name: c.Name}); err != nil {
				return fmt.Errorf("upsert category %d: %w", c.ID, err)
			}
		}
		for _, dc := range data.DetailCategories {
			if err := q.UpsertDetailCategory(ctx, db.UpsertDetailCategoryParams{
				ID:         dc.ID,
				CategoryID: dc.CategoryID,
				Name:       dc.Name,
			}); err != nil {
				return mapWriteError(fmt.Sprintf("upsert detail category %d", dc.ID), err)
			}
		}
		for _, c := range data.Colors {
			if err := q.UpsertColor(ctx, db.UpsertColorParams{ID: c.ID, Name: c.Name}); err != nil {
				return fmt.Errorf("upsert color %d: %w", c.ID, err)
			}
		}
		for _, sz := range data.Sizes {
			if err := q.UpsertSize(ctx, db.UpsertSizeParams{ID: sz.ID, Name: sz.Name}); err != nil {
				return fmt.Errorf("upsert size %d: %w", sz.ID, err)
			}
		}

		if err := q.SyncReferenceSequences(ctx); err != nil {
			return fmt.Errorf("sync sequences: %w", err)
		}
		return nil
	})
}
