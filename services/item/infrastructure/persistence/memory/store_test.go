package memory

import (
	"context"
	"errors"
	"testing"

	itemdomain "github.com/youbeemuhwan/commercial/services/item/domain"
	"github.com/youbeemuhwan/commercial/services/item/domain/models"
	"github.com/youbeemuhwan/commercial/services/item/domain/repositories"
)

func seededStore() *Store {
	s := NewStore()
	s.AddCategory(models.Category{ID: 1, Name: "Tops"})
	s.AddDetailCategory(models.DetailCategory{ID: 1, CategoryID: 1, Name: "Tees"})
	s.AddColor(models.Color{ID: 1, Name: "Black"})
	s.AddSize(models.Size{ID: 1, Name: "M"})
	return s
}

func item(name string, price int) *models.Item {
	return &models.Item{
		ItemName:       name,
		Price:          price,
		Category:       models.Category{ID: 1},
		DetailCategory: models.DetailCategory{ID: 1},
		Color:          models.Color{ID: 1},
		Size:           models.Size{ID: 1},
	}
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	s := seededStore()
	repo := NewItemRepository(s)
	ctx := context.Background()

	errBoom := errors.New("boom")
	err := s.WithinTx(ctx, func(ctx context.Context) error {
		if err := repo.Save(ctx, item("a", 1)); err != nil {
			return err
		}
		return errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("got %v, want errBoom", err)
	}
	if s.ItemCount() != 0 {
		t.Errorf("ItemCount() = %d after rollback, want 0", s.ItemCount())
	}
}

func TestWithinTx_CommitsOnSuccess(t *testing.T) {
	s := seededStore()
	repo := NewItemRepository(s)

	err := s.WithinTx(context.Background(), func(ctx context.Context) error {
		return repo.Save(ctx, item("a", 1))
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.ItemCount() != 1 {
		t.Errorf("ItemCount() = %d, want 1", s.ItemCount())
	}
}

func TestItemRepository_SaveUnknownReference(t *testing.T) {
	s := seededStore()
	it := item("a", 1)
	it.Size = models.Size{ID: 9}

	if err := NewItemRepository(s).Save(context.Background(), it); !errors.Is(err, itemdomain.ErrReferenceNotFound) {
		t.Fatalf("got %v, want ErrReferenceNotFound", err)
	}
}

func TestItemRepository_SearchAndPaging(t *testing.T) {
	s := seededStore()
	repo := NewItemRepository(s)
	ctx := context.Background()
	for _, it := range []*models.Item{item("Red Shirt", 300), item("Blue Shirt", 100), item("Hat", 200)} {
		if err := repo.Save(ctx, it); err != nil {
			t.Fatal(err)
		}
	}

	shirt := "shirt"
	got, err := repo.Search(ctx, repositories.SearchCriteria{ItemName: &shirt}, repositories.PageSpec{Page: 1, Size: 10, Sort: "price"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ItemName != "Blue Shirt" {
		t.Fatalf("unexpected search result: %+v", got)
	}
	if got[0].Category.Name != "Tops" {
		t.Errorf("references not joined: %+v", got[0].Category)
	}

	page2, err := repo.FindAll(ctx, repositories.PageSpec{Page: 2, Size: 2, Sort: "id"})
	if err != nil {
		t.Fatal(err)
	}
	if len(page2) != 1 || page2[0].ItemName != "Hat" {
		t.Fatalf("unexpected page 2: %+v", page2)
	}

	beyond, err := repo.FindAll(ctx, repositories.PageSpec{Page: 5, Size: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(beyond) != 0 {
		t.Errorf("expected empty page, got %d", len(beyond))
	}
}

func TestItemRepository_DeleteCascades(t *testing.T) {
	s := seededStore()
	ctx := context.Background()
	repo := NewItemRepository(s)
	thumbs := NewThumbnailImageRepository(s)

	it := item("a", 1)
	if err := repo.Save(ctx, it); err != nil {
		t.Fatal(err)
	}
	if err := thumbs.Save(ctx, &models.ThumbnailImage{ItemID: it.ID, StoreImageName: "x.png"}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Delete(ctx, it.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := thumbs.FindByItemID(ctx, it.ID); !errors.Is(err, itemdomain.ErrImageNotFound) {
		t.Errorf("thumbnail survived delete: %v", err)
	}
	if err := repo.Delete(ctx, it.ID); !errors.Is(err, itemdomain.ErrItemNotFound) {
		t.Errorf("second delete: got %v, want ErrItemNotFound", err)
	}
}
