package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	itemdomain "github.com/youbeemuhwan/commercial/services/item/domain"
	"github.com/youbeemuhwan/commercial/services/item/domain/models"
	"github.com/youbeemuhwan/commercial/services/item/domain/repositories"
	domainsvcs "github.com/youbeemuhwan/commercial/services/item/domain/services"
)

// ItemInput carries the client-supplied fields for create and modify.
type ItemInput = models.ItemFields

// FileStore writes uploaded content under a generated name and reports the
// number of bytes written.
type FileStore interface {
	Store(ctx context.Context, name string, r io.Reader) (int64, error)
}

// Repositories groups the gateways ItemService depends on.
type Repositories struct {
	Tx               repositories.Transactor
	Items            repositories.ItemRepository
	Thumbnails       repositories.ThumbnailImageRepository
	Details          repositories.DetailImageRepository
	Categories       repositories.CategoryRepository
	DetailCategories repositories.DetailCategoryRepository
	Colors           repositories.ColorRepository
	Sizes            repositories.SizeRepository
}

// ItemService owns the lifecycle of catalog items and their image files.
// Every public method runs in one transaction; files written before a
// failure are not removed.
type ItemService struct {
	repos Repositories
	files FileStore
}

// NewItemService returns an ItemService over the given gateways and file store.
func NewItemService(repos Repositories, files FileStore) *ItemService {
	return &ItemService{repos: repos, files: files}
}

// Create validates the uploads, resolves references, persists the item and
// stores its thumbnail and detail images.
func (s *ItemService) Create(ctx context.Context, in ItemInput, thumbnail *models.Upload, details []*models.Upload) (*ItemView, error) {
	if err := domainsvcs.ValidateThumbnail(thumbnail); err != nil {
		return nil, err
	}
	if err := validateDetails(details); err != nil {
		return nil, err
	}
	if err := domainsvcs.ValidatePrice(in.Price); err != nil {
		return nil, err
	}

	var view *ItemView
	err := s.repos.Tx.WithinTx(ctx, func(ctx context.Context) error {
		refs, err := s.resolveReferences(ctx, in)
		if err != nil {
			return err
		}

		item := models.NewItem(in, refs.category, refs.detailCategory, refs.color, refs.size)
		if err := s.repos.Items.Save(ctx, item); err != nil {
			return fmt.Errorf("save item: %w", err)
		}

		if item.Thumbnail, err = s.storeThumbnail(ctx, item.ID, thumbnail); err != nil {
			return err
		}
		if item.DetailImages, err = s.storeDetails(ctx, item.ID, details); err != nil {
			return err
		}

		view = NewItemView(item, true)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// List returns one page of item summaries. Detail images are never included.
func (s *ItemService) List(ctx context.Context, page repositories.PageSpec) ([]ItemView, error) {
	var items []*models.Item
	err := s.repos.Tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		items, err = s.repos.Items.FindAll(ctx, page)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return summaries(items), nil
}

// Search returns one page of item summaries matching criteria.
func (s *ItemService) Search(ctx context.Context, criteria repositories.SearchCriteria, page repositories.PageSpec) ([]ItemView, error) {
	var items []*models.Item
	err := s.repos.Tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		items, err = s.repos.Items.Search(ctx, criteria, page)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	return summaries(items), nil
}

// Detail returns the full view of one item, detail images included.
// Returns ErrItemNotFound if no item has the given id.
func (s *ItemService) Detail(ctx context.Context, id int64) (*ItemView, error) {
	var item *models.Item
	err := s.repos.Tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		item, err = s.repos.Items.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return NewItemView(item, true), nil
}

// Delete removes an item. Its image rows go with it; stored files stay on disk.
// Returns ErrItemNotFound if no item has the given id.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	return s.repos.Tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.repos.Items.FindByID(ctx, id); err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		if err := s.repos.Items.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		return nil
	})
}

// Modify replaces an item's fields and thumbnail. A new thumbnail is always
// required. Detail images are replaced only when a non-empty set is supplied;
// an empty set leaves the existing images untouched.
func (s *ItemService) Modify(ctx context.Context, id int64, in ItemInput, thumbnail *models.Upload, details []*models.Upload) (*ItemModifiedView, error) {
	var view *ItemModifiedView
	err := s.repos.Tx.WithinTx(ctx, func(ctx context.Context) error {
		item, err := s.repos.Items.FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}

		if err := domainsvcs.ValidateThumbnail(thumbnail); err != nil {
			return err
		}
		if err := validateDetails(details); err != nil {
			return err
		}
		if err := domainsvcs.ValidatePrice(in.Price); err != nil {
			return err
		}
		refs, err := s.resolveReferences(ctx, in)
		if err != nil {
			return err
		}

		if err := s.replaceThumbnail(ctx, item, thumbnail); err != nil {
			return err
		}
		if err := s.replaceDetails(ctx, item.ID, details); err != nil {
			return err
		}

		item.Apply(in, refs.category, refs.detailCategory, refs.color, refs.size)
		if err := s.repos.Items.Update(ctx, item); err != nil {
			return fmt.Errorf("update item: %w", err)
		}

		if item.DetailImages, err = s.repos.Details.FindAllByItemID(ctx, item.ID); err != nil {
			return fmt.Errorf("load detail images: %w", err)
		}

		view = NewItemModifiedView(item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *ItemService) replaceThumbnail(ctx context.Context, item *models.Item, u *models.Upload) error {
	_, err := s.repos.Thumbnails.FindByItemID(ctx, item.ID)
	switch {
	case err == nil:
		if err := s.repos.Thumbnails.DeleteByItemID(ctx, item.ID); err != nil {
			return fmt.Errorf("delete thumbnail: %w", err)
		}
	case !errors.Is(err, itemdomain.ErrImageNotFound):
		return fmt.Errorf("find thumbnail: %w", err)
	}

	item.Thumbnail, err = s.storeThumbnail(ctx, item.ID, u)
	return err
}

// replaceDetails applies the detail image policy: an empty upload set is a
// no-op, otherwise existing rows are deleted and the new set inserted.
func (s *ItemService) replaceDetails(ctx context.Context, itemID int64, uploads []*models.Upload) error {
	if len(uploads) == 0 {
		return nil
	}

	existing, err := s.repos.Details.FindAllByItemID(ctx, itemID)
	if err != nil {
		return fmt.Errorf("find detail images: %w", err)
	}
	if len(existing) > 0 {
		if err := s.repos.Details.DeleteByItemID(ctx, itemID); err != nil {
			return fmt.Errorf("delete detail images: %w", err)
		}
	}

	_, err = s.storeDetails(ctx, itemID, uploads)
	return err
}

func (s *ItemService) storeThumbnail(ctx context.Context, itemID int64, u *models.Upload) (*models.ThumbnailImage, error) {
	name := domainsvcs.StoreFileName(u.Filename)
	size, err := s.files.Store(ctx, name, u.Content)
	if err != nil {
		return nil, fmt.Errorf("store thumbnail file: %w", err)
	}

	img := &models.ThumbnailImage{
		UploadImageName: u.Filename,
		StoreImageName:  name,
		FileSize:        size,
		ItemID:          itemID,
	}
	if err := s.repos.Thumbnails.Save(ctx, img); err != nil {
		return nil, fmt.Errorf("save thumbnail: %w", err)
	}
	return img, nil
}

func (s *ItemService) storeDetails(ctx context.Context, itemID int64, uploads []*models.Upload) ([]models.DetailImage, error) {
	images := make([]models.DetailImage, 0, len(uploads))
	for _, u := range uploads {
		name := domainsvcs.StoreFileName(u.Filename)
		size, err := s.files.Store(ctx, name, u.Content)
		if err != nil {
			return nil, fmt.Errorf("store detail image file: %w", err)
		}

		img := models.DetailImage{
			UploadImageName: u.Filename,
			StoreImageName:  name,
			FileSize:        size,
			ItemID:          itemID,
		}
		if err := s.repos.Details.Save(ctx, &img); err != nil {
			return nil, fmt.Errorf("save detail image: %w", err)
		}
		images = append(images, img)
	}
	return images, nil
}

// validateDetails rejects the whole batch if any upload has a bad type.
func validateDetails(uploads []*models.Upload) error {
	for _, u := range uploads {
		if err := domainsvcs.ValidateImageType(u); err != nil {
			return err
		}
	}
	return nil
}

type references struct {
	category       models.Category
	detailCategory models.DetailCategory
	color          models.Color
	size           models.Size
}

// resolveReferences looks up the four references in a fixed order and fails
// on the first id that does not resolve.
func (s *ItemService) resolveReferences(ctx context.Context, in ItemInput) (references, error) {
	var (
		refs references
		err  error
	)
	if refs.detailCategory, err = findReference(ctx, s.repos.DetailCategories, in.DetailCategoryID, itemdomain.ErrInvalidDetailCategory); err != nil {
		return refs, err
	}
	if refs.category, err = findReference(ctx, s.repos.Categories, in.CategoryID, itemdomain.ErrInvalidCategory); err != nil {
		return refs, err
	}
	if refs.color, err = findReference(ctx, s.repos.Colors, in.ColorID, itemdomain.ErrInvalidColor); err != nil {
		return refs, err
	}
	if refs.size, err = findReference(ctx, s.repos.Sizes, in.SizeID, itemdomain.ErrInvalidSize); err != nil {
		return refs, err
	}
	return refs, nil
}

func findReference[T any](ctx context.Context, repo repositories.ReferenceRepository[T], id int64, invalid error) (T, error) {
	v, err := repo.FindByID(ctx, id)
	if err != nil {
		var zero T
		if errors.Is(err, itemdomain.ErrReferenceNotFound) {
			return zero, invalid
		}
		return zero, fmt.Errorf("find reference: %w", err)
	}
	return *v, nil
}

func summaries(items []*models.Item) []ItemView {
	views := make([]ItemView, len(items))
	for i, item := range items {
		views[i] = *NewItemView(item, false)
	}
	return views
}
