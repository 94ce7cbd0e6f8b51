package memory

import (
	"context"

	itemdomain "github.com/youbeemuhwan/commercial/services/item/domain"
	"github.com/youbeemuhwan/commercial/services/item/domain/models"
)

// ReferenceRepository reads one reference table of a Store.
type ReferenceRepository[T any] struct {
	s     *Store
	table func(*Store) map[int64]T
}

func (r *ReferenceRepository[T]) FindByID(_ context.Context, id int64) (*T, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v, ok := r.table(r.s)[id]
	if !ok {
		return nil, itemdomain.ErrReferenceNotFound
	}
	return &v, nil
}

func NewCategoryRepository(s *Store) *ReferenceRepository[models.Category] {
	return &ReferenceRepository[models.Category]{s: s, table: func(s *Store) map[int64]models.Category { return s.categories }}
}

func NewDetailCategoryRepository(s *Store) *ReferenceRepository[models.DetailCategory] {
	return &ReferenceRepository[models.DetailCategory]{s: s, table: func(s *Store) map[int64]models.DetailCategory { return s.detailCategories }}
}

func NewColorRepository(s *Store) *ReferenceRepository[models.Color] {
	return &ReferenceRepository[models.Color]{s: s, table: func(s *Store) map[int64]models.Color { return s.colors }}
}

func NewSizeRepository(s *Store) *ReferenceRepository[models.Size] {
	return &ReferenceRepository[models.Size]{s: s, table: func(s *Store) map[int64]models.Size { return s.sizes }}
}
