package repositories

import (
	"context"

	"github.com/youbeemuhwan/commercial/services/item/domain/models"
)

type ThumbnailImageRepository interface {
	Save(ctx context.Context, img *models.ThumbnailImage) error
	// FindByItemID returns ErrImageNotFound when the item has no thumbnail.
	FindByItemID(ctx context.Context, itemID int64) (*models.ThumbnailImage, error)
	DeleteByItemID(ctx context.Context, itemID int64) error
}

type DetailImageRepository interface {
	Save(ctx context.Context, img *models.DetailImage) error
	FindAllByItemID(ctx context.Context, itemID int64) ([]models.DetailImage, error)
	DeleteByItemID(ctx context.Context, itemID int64) error
}
