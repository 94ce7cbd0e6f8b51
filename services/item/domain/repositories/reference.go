package repositories

import (
	"context"

	"github.com/youbeemuhwan/commercial/services/item/domain/models"
)

// ReferenceRepository looks up read-only reference rows by id.
// FindByID returns ErrReferenceNotFound when the id does not resolve.
type ReferenceRepository[T any] interface {
	FindByID(ctx context.Context, id int64) (*T, error)
}

type (
	CategoryRepository       = ReferenceRepository[models.Category]
	DetailCategoryRepository = ReferenceRepository[models.DetailCategory]
	ColorRepository          = ReferenceRepository[models.Color]
	SizeRepository           = ReferenceRepository[models.Size]
)

// Transactor runs fn inside one transaction. Repositories called with the
// context passed to fn participate in it.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
