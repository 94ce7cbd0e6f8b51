package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"

	itemdomain "github.com/youbeemuhwan/commercial/services/item/domain"
	"github.com/youbeemuhwan/commercial/services/item/domain/models"
	"github.com/youbeemuhwan/commercial/services/item/domain/repositories"
)

// ItemRepository implements repositories.ItemRepository on a Store.
type ItemRepository struct {
	s *Store
}

func NewItemRepository(s *Store) *ItemRepository {
	return &ItemRepository{s: s}
}

func (r *ItemRepository) Save(_ context.Context, item *models.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.checkReferences(item); err != nil {
		return err
	}
	item.ID = r.s.newID()
	r.s.items[item.ID] = rowOf(item)
	return nil
}

func (r *ItemRepository) Update(_ context.Context, item *models.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[item.ID]; !ok {
		return itemdomain.ErrItemNotFound
	}
	if err := r.checkReferences(item); err != nil {
		return err
	}
	r.s.items[item.ID] = rowOf(item)
	return nil
}

func (r *ItemRepository) FindByID(_ context.Context, id int64) (*models.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	row, ok := r.s.items[id]
	if !ok {
		return nil, itemdomain.ErrItemNotFound
	}
	item := r.load(row)
	item.DetailImages = slices.Clone(r.s.details[id])
	if item.DetailImages == nil {
		item.DetailImages = []models.DetailImage{}
	}
	return item, nil
}

// Delete removes the item and, like the foreign-key cascade, its image rows.
func (r *ItemRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[id]; !ok {
		return itemdomain.ErrItemNotFound
	}
	delete(r.s.items, id)
	delete(r.s.thumbnails, id)
	delete(r.s.details, id)
	return nil
}

func (r *ItemRepository) FindAll(ctx context.Context, page repositories.PageSpec) ([]*models.Item, error) {
	return r.Search(ctx, repositories.SearchCriteria{}, page)
}

func (r *ItemRepository) Search(_ context.Context, c repositories.SearchCriteria, page repositories.PageSpec) ([]*models.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var matched []models.Item
	for _, row := range r.s.items {
		if matches(row, c) {
			matched = append(matched, row)
		}
	}

	key, desc := page.SortKey()
	slices.SortFunc(matched, func(a, b models.Item) int {
		var n int
		switch key {
		case repositories.SortPrice:
			n = cmp.Compare(a.Price, b.Price)
		case repositories.SortItemName:
			n = cmp.Compare(a.ItemName, b.ItemName)
		default:
			n = cmp.Compare(a.ID, b.ID)
		}
		if desc {
			n = -n
		}
		if n == 0 {
			n = cmp.Compare(a.ID, b.ID)
		}
		return n
	})

	start := min(page.Offset(), len(matched))
	end := min(start+page.Limit(), len(matched))

	items := make([]*models.Item, 0, end-start)
	for _, row := range matched[start:end] {
		items = append(items, r.load(row))
	}
	return items, nil
}

// checkReferences mirrors the foreign keys on item. Caller holds the lock.
func (r *ItemRepository) checkReferences(item *models.Item) error {
	_, okC := r.s.categories[item.Category.ID]
	_, okDC := r.s.detailCategories[item.DetailCategory.ID]
	_, okCol := r.s.colors[item.Color.ID]
	_, okS := r.s.sizes[item.Size.ID]
	if !okC || !okDC || !okCol || !okS {
		return itemdomain.ErrReferenceNotFound
	}
	return nil
}

// load joins references and thumbnail onto a stored row. Caller holds the lock.
func (r *ItemRepository) load(row models.Item) *models.Item {
	item := row
	item.Category = r.s.categories[row.Category.ID]
	item.DetailCategory = r.s.detailCategories[row.DetailCategory.ID]
	item.Color = r.s.colors[row.Color.ID]
	item.Size = r.s.sizes[row.Size.ID]
	if t, ok := r.s.thumbnails[row.ID]; ok {
		item.Thumbnail = &t
	}
	return &item
}

// rowOf strips everything an item row does not store.
func rowOf(item *models.Item) models.Item {
	row := *item
	row.Thumbnail = nil
	row.DetailImages = nil
	return row
}

func matches(row models.Item, c repositories.SearchCriteria) bool {
	switch {
	case c.ItemName != nil && !strings.Contains(strings.ToLower(row.ItemName), strings.ToLower(*c.ItemName)):
		return false
	case c.CategoryID != nil && row.Category.ID != *c.CategoryID:
		return false
	case c.DetailCategoryID != nil && row.DetailCategory.ID != *c.DetailCategoryID:
		return false
	case c.ColorID != nil && row.Color.ID != *c.ColorID:
		return false
	case c.SizeID != nil && row.Size.ID != *c.SizeID:
		return false
	case c.MinPrice != nil && row.Price < *c.MinPrice:
		return false
	case c.MaxPrice != nil && row.Price > *c.MaxPrice:
		return false
	}
	return true
}
