package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/youbeemuhwan/commercial/pkg/database"
	itemdomain "github.com/youbeemuhwan/commercial/services/item/domain"
	"github.com/youbeemuhwan/commercial/services/item/domain/models"
	"github.com/youbeemuhwan/commercial/services/item/infrastructure/persistence/postgres/db"
)

// ReferenceRepository looks up one kind of reference row. T is the domain
// type, R the generated row type.
type ReferenceRepository[T, R any] struct {
	db   *database.Database
	kind string
	get  func(q *db.Queries, ctx context.Context, id int64) (R, error)
	conv func(R) T
}

// FindByID returns ErrReferenceNotFound when no row has the given id.
func (r *ReferenceRepository[T, R]) FindByID(ctx context.Context, id int64) (*T, error) {
	row, err := r.get(db.New(r.db.Conn(ctx)), ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, itemdomain.ErrReferenceNotFound
		}
		return nil, fmt.Errorf("query %s: %w", r.kind, err)
	}
	v := r.conv(row)
	return &v, nil
}

func NewCategoryRepository(d *database.Database) *ReferenceRepository[models.Category, db.Category] {
	return &ReferenceRepository[models.Category, db.Category]{
		db:   d,
		kind: "category",
		get:  (*db.Queries).GetCategory,
		conv: func(r db.Category) models.Category { return models.Category{ID: r.ID, Name: r.Name} },
	}
}

func NewDetailCategoryRepository(d *database.Database) *ReferenceRepository[models.DetailCategory, db.DetailCategory] {
	return &ReferenceRepository[models.DetailCategory, db.DetailCategory]{
		db:   d,
		kind: "detail category",
		get:  (*db.Queries).GetDetailCategory,
		conv: func(r db.DetailCategory) models.DetailCategory {
			return models.DetailCategory{ID: r.ID, CategoryID: r.CategoryID, Name: r.Name}
		},
	}
}

func NewColorRepository(d *database.Database) *ReferenceRepository[models.Color, db.Color] {
	return &ReferenceRepository[models.Color, db.Color]{
		db:   d,
		kind: "color",
		get:  (*db.Queries).GetColor,
		conv: func(r db.Color) models.Color { return models.Color{ID: r.ID, Name: r.Name} },
	}
}

func NewSizeRepository(d *database.Database) *ReferenceRepository[models.Size, db.Size] {
	return &ReferenceRepository[models.Size, db.Size]{
		db:   d,
		kind: "size",
		get:  (*db.Queries).GetSize,
		conv: func(r db.Size) models.Size { return models.Size{ID: r.ID, Name: r.Name} },
	}
}
