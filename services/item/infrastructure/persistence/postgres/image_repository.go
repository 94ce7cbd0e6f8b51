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

// ThumbnailImageRepository implements repositories.ThumbnailImageRepository.
type ThumbnailImageRepository struct {
	db *database.Database
}

func NewThumbnailImageRepository(database *database.Database) *ThumbnailImageRepository {
	return &ThumbnailImageRepository{db: database}
}

// Save inserts the thumbnail row and sets its ID.
func (r *ThumbnailImageRepository) Save(ctx context.Context, img *models.ThumbnailImage) error {
	q := db.New(r.db.Conn(ctx))
	id, err := q.InsertThumbnailImage(ctx, db.InsertThumbnailImageParams{
		UploadImageName: img.UploadImageName,
		StoreImageName:  img.StoreImageName,
		FileSize:        img.FileSize,
		ItemID:          img.ItemID,
	})
	if err != nil {
		return fmt.Errorf("insert thumbnail image: %w", err)
	}
	img.ID = id
	return nil
}

func (r *ThumbnailImageRepository) FindByItemID(ctx context.Context, itemID int64) (*models.ThumbnailImage, error) {
	q := db.New(r.db.Conn(ctx))
	row, err := q.GetThumbnailImageByItemID(ctx, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, itemdomain.ErrImageNotFound
		}
		return nil, fmt.Errorf("query thumbnail image: %w", err)
	}
	return &models.ThumbnailImage{
		ID:              row.ID,
		UploadImageName: row.UploadImageName,
		StoreImageName:  row.StoreImageName,
		FileSize:        row.FileSize,
		ItemID:          row.ItemID,
	}, nil
}

func (r *ThumbnailImageRepository) DeleteByItemID(ctx context.Context, itemID int64) error {
	q := db.New(r.db.Conn(ctx))
	if err := q.DeleteThumbnailImageByItemID(ctx, itemID); err != nil {
		return fmt.Errorf("delete thumbnail image: %w", err)
	}
	return nil
}

// DetailImageRepository implements repositories.DetailImageRepository.
type DetailImageRepository struct {
	db *database.Database
}

func NewDetailImageRepository(database *database.Database) *DetailImageRepository {
	return &DetailImageRepository{db: database}
}

func (r *DetailImageRepository) Save(ctx context.Context, img *models.DetailImage) error {
	q := db.New(r.db.Conn(ctx))
	id, err := q.InsertDetailImage(ctx, db.InsertDetailImageParams{
		UploadImageName: img.UploadImageName,
		StoreImageName:  img.StoreImageName,
		FileSize:        img.FileSize,
		ItemID:          img.ItemID,
	})
	if err != nil {
		return fmt.Errorf("insert detail image: %w", err)
	}
	img.ID = id
	return nil
}

// FindAllByItemID returns the item's detail images in insertion order.
func (r *DetailImageRepository) FindAllByItemID(ctx context.Context, itemID int64) ([]models.DetailImage, error) {
	q := db.New(r.db.Conn(ctx))
	rows, err := q.ListDetailImagesByItemID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("query detail images: %w", err)
	}
	images := make([]models.DetailImage, len(rows))
	for i, row := range rows {
		images[i] = detailImageFromRow(row)
	}
	return images, nil
}

func (r *DetailImageRepository) DeleteByItemID(ctx context.Context, itemID int64) error {
	q := db.New(r.db.Conn(ctx))
	if err := q.DeleteDetailImagesByItemID(ctx, itemID); err != nil {
		return fmt.Errorf("delete detail images: %w", err)
	}
	return nil
}

func detailImageFromRow(row db.DetailImage) models.DetailImage {
	return models.DetailImage{
		ID:              row.ID,
		UploadImageName: row.UploadImageName,
		StoreImageName:  row.StoreImageName,
		FileSize:        row.FileSize,
		ItemID:          row.ItemID,
	}
}
