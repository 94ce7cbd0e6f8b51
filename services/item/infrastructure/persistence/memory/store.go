// Package memory provides in-process repository implementations. A Store
// keeps every table in maps and gives WithinTx real rollback semantics by
// snapshotting state, so service behavior can be exercised without Postgres.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/youbeemuhwan/commercial/services/item/domain/models"
)

// Store is a process-local catalog database.
type Store struct {
	mu     sync.Mutex
	nextID int64

	items      map[int64]models.Item
	thumbnails map[int64]models.ThumbnailImage // keyed by item id
	details    map[int64][]models.DetailImage  // keyed by item id

	categories       map[int64]models.Category
	detailCategories map[int64]models.DetailCategory
	colors           map[int64]models.Color
	sizes            map[int64]models.Size
}

type txKey struct{}

func NewStore() *Store {
	return &Store{
		items:            make(map[int64]models.Item),
		thumbnails:       make(map[int64]models.ThumbnailImage),
		details:          make(map[int64][]models.DetailImage),
		categories:       make(map[int64]models.Category),
		detailCategories: make(map[int64]models.DetailCategory),
		colors:           make(map[int64]models.Color),
		sizes:            make(map[int64]models.Size),
	}
}

// AddCategory and friends load reference rows.
func (s *Store) AddCategory(c models.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories[c.ID] = c
}

func (s *Store) AddDetailCategory(dc models.DetailCategory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detailCategories[dc.ID] = dc
}

func (s *Store) AddColor(c models.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.colors[c.ID] = c
}

func (s *Store) AddSize(sz models.Size) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sizes[sz.ID] = sz
}

// ItemCount returns the number of stored items.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

type snapshot struct {
	nextID     int64
	items      map[int64]models.Item
	thumbnails map[int64]models.ThumbnailImage
	details    map[int64][]models.DetailImage
}

func (s *Store) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	details := make(map[int64][]models.DetailImage, len(s.details))
	for k, v := range s.details {
		details[k] = slices.Clone(v)
	}
	return snapshot{
		nextID:     s.nextID,
		items:      maps.Clone(s.items),
		thumbnails: maps.Clone(s.thumbnails),
		details:    details,
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID = snap.nextID
	s.items = snap.items
	s.thumbnails = snap.thumbnails
	s.details = snap.details
}

// WithinTx implements repositories.Transactor. A failing fn restores the
// item and image tables to their state before the call. Nested calls join.
// Concurrent transactions are not isolated from each other.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	snap := s.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func (s *Store) newID() int64 {
	s.nextID++
	return s.nextID
}
