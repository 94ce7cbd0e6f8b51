package memory

import (
	"context"
	"slices"

	itemdomain "github.com/youbeemuhwan/commercial/services/item/domain"
	"github.com/youbeemuhwan/commercial/services/item/domain/models"
)

type ThumbnailImageRepository struct {
	s *Store
}

func NewThumbnailImageRepository(s *Store) *ThumbnailImageRepository {
	return &ThumbnailImageRepository{s: s}
}

// Save fails with ErrItemNotFound for an unknown owner, like the foreign key.
func (r *ThumbnailImageRepository) Save(_ context.Context, img *models.ThumbnailImage) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[img.ItemID]; !ok {
		return itemdomain.ErrItemNotFound
	}
	img.ID = r.s.newID()
	r.s.thumbnails[img.ItemID] = *img
	return nil
}

func (r *ThumbnailImageRepository) FindByItemID(_ context.Context, itemID int64) (*models.ThumbnailImage, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.thumbnails[itemID]
	if !ok {
		return nil, itemdomain.ErrImageNotFound
	}
	return &t, nil
}

func (r *ThumbnailImageRepository) DeleteByItemID(_ context.Context, itemID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.thumbnails, itemID)
	return nil
}

type DetailImageRepository struct {
	s *Store
}

func NewDetailImageRepository(s *Store) *DetailImageRepository {
	return &DetailImageRepository{s: s}
}

func (r *DetailImageRepository) Save(_ context.Context, img *models.DetailImage) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[img.ItemID]; !ok {
		return itemdomain.ErrItemNotFound
	}
	img.ID = r.s.newID()
	r.s.details[img.ItemID] = append(r.s.details[img.ItemID], *img)
	return nil
}

func (r *DetailImageRepository) FindAllByItemID(_ context.Context, itemID int64) ([]models.DetailImage, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	images := slices.Clone(r.s.details[itemID])
	if images == nil {
		images = []models.DetailImage{}
	}
	return images, nil
}

func (r *DetailImageRepository) DeleteByItemID(_ context.Context, itemID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.details, itemID)
	return nil
}
