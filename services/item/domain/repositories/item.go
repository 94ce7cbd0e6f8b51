package repositories

import (
	"context"

	"github.com/youbeemuhwan/commercial/services/item/domain/models"
)

// ItemRepository is the persistence interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
type ItemRepository interface {
	// Save inserts a new Item and sets its ID.
	Save(ctx context.Context, item *models.Item) error

	// Update persists the scalar fields and references of an existing Item.
	Update(ctx context.Context, item *models.Item) error

	// FindByID loads an Item with its references, thumbnail and detail images.
	// Returns ErrItemNotFound if no row matches.
	FindByID(ctx context.Context, id int64) (*models.Item, error)

	// Delete removes the Item row. Image rows go with it (ON DELETE CASCADE).
	Delete(ctx context.Context, id int64) error

	// FindAll returns one page of items with references and thumbnail only.
	FindAll(ctx context.Context, page PageSpec) ([]*models.Item, error)

	// Search returns one page of items matching criteria, loaded like FindAll.
	Search(ctx context.Context, criteria SearchCriteria, page PageSpec) ([]*models.Item, error)
}
