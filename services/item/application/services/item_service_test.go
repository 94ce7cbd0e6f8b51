package services

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/youbeemuhwan/commercial/pkg/logger"
	"github.com/youbeemuhwan/commercial/pkg/storage"
	itemdomain "github.com/youbeemuhwan/commercial/services/item/domain"
	"github.com/youbeemuhwan/commercial/services/item/domain/models"
	"github.com/youbeemuhwan/commercial/services/item/domain/repositories"
	"github.com/youbeemuhwan/commercial/services/item/infrastructure/persistence/memory"
)

type fixture struct {
	svc   *ItemService
	store *memory.Store
	files *storage.Filesystem
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	fs, err := storage.New(t.TempDir(), logger.Nop())
	if err != nil {
		t.Fatalf("storage.New: %v", err)
	}
	return newFixtureWithFiles(t, fs, fs)
}

func newFixtureWithFiles(t *testing.T, fs *storage.Filesystem, files FileStore) *fixture {
	t.Helper()
	s := memory.NewStore()
	s.AddCategory(models.Category{ID: 1, Name: "Tops"})
	s.AddDetailCategory(models.DetailCategory{ID: 1, CategoryID: 1, Name: "T-Shirts"})
	s.AddColor(models.Color{ID: 1, Name: "Black"})
	s.AddColor(models.Color{ID: 2, Name: "White"})
	s.AddSize(models.Size{ID: 1, Name: "M"})

	svc := NewItemService(Repositories{
		Tx:               s,
		Items:            memory.NewItemRepository(s),
		Thumbnails:       memory.NewThumbnailImageRepository(s),
		Details:          memory.NewDetailImageRepository(s),
		Categories:       memory.NewCategoryRepository(s),
		DetailCategories: memory.NewDetailCategoryRepository(s),
		Colors:           memory.NewColorRepository(s),
		Sizes:            memory.NewSizeRepository(s),
	}, files)
	return &fixture{svc: svc, store: s, files: fs}
}

func validInput() ItemInput {
	return ItemInput{
		ItemName:         "Basic Tee",
		Description:      "Cotton",
		Price:            12000,
		CategoryID:       1,
		DetailCategoryID: 1,
		ColorID:          1,
		SizeID:           1,
	}
}

func upload(name, contentType, body string) *models.Upload {
	return &models.Upload{
		Filename:    name,
		ContentType: contentType,
		Size:        int64(len(body)),
		Content:     strings.NewReader(body),
	}
}

func png(name string) *models.Upload {
	return upload(name, "image/png", "png:"+name)
}

func (f *fixture) storedContent(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(f.files.BasePath(), name))
	if err != nil {
		t.Fatalf("read stored file %s: %v", name, err)
	}
	return string(b)
}

func TestCreate_AcceptedThumbnailTypes(t *testing.T) {
	for _, ct := range []string{"image/jpeg", "image/png", "image/gif"} {
		t.Run(ct, func(t *testing.T) {
			f := newFixture(t)
			view, err := f.svc.Create(context.Background(), validInput(), upload("a.img", ct, "data"), nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if view.ThumbnailImage == nil {
				t.Fatal("expected thumbnail in view")
			}
		})
	}
}

func TestCreate_RejectsThumbnail(t *testing.T) {
	tests := []struct {
		name      string
		thumbnail *models.Upload
		wantErr   error
	}{
		{"missing", nil, itemdomain.ErrThumbnailRequired},
		{"empty", upload("a.png", "image/png", ""), itemdomain.ErrThumbnailRequired},
		{"webp", upload("a.webp", "image/webp", "x"), itemdomain.ErrInvalidThumbnailType},
		{"text", upload("a.txt", "text/plain", "x"), itemdomain.ErrInvalidThumbnailType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.svc.Create(context.Background(), validInput(), tt.thumbnail, nil)
			if !errors.Is(err, tt.wantErr) || !errors.Is(err, itemdomain.ErrValidation) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
			if f.store.ItemCount() != 0 {
				t.Errorf("item persisted despite validation failure")
			}
		})
	}
}

func TestCreate_UnknownReference(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ItemInput)
		wantErr error
	}{
		{"category", func(in *ItemInput) { in.CategoryID = 99 }, itemdomain.ErrInvalidCategory},
		{"detail category", func(in *ItemInput) { in.DetailCategoryID = 99 }, itemdomain.ErrInvalidDetailCategory},
		{"color", func(in *ItemInput) { in.ColorID = 99 }, itemdomain.ErrInvalidColor},
		{"size", func(in *ItemInput) { in.SizeID = 99 }, itemdomain.ErrInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			in := validInput()
			tt.mutate(&in)

			_, err := f.svc.Create(context.Background(), in, png("t.png"), nil)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, itemdomain.ErrValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
			if f.store.ItemCount() != 0 {
				t.Errorf("item persisted despite unknown reference")
			}
		})
	}
}

func TestCreate_ReferenceOrder(t *testing.T) {
	f := newFixture(t)
	in := validInput()
	in.CategoryID = 99
	in.DetailCategoryID = 99
	in.SizeID = 99

	_, err := f.svc.Create(context.Background(), in, png("t.png"), nil)
	if !errors.Is(err, itemdomain.ErrInvalidDetailCategory) {
		t.Fatalf("got %v, want detail category to be checked first", err)
	}
}

func TestCreate_PriceFormatting(t *testing.T) {
	tests := []struct {
		price int
		want  string
	}{
		{500, "500"},
		{1000, "1,000"},
		{12345, "12,345"},
		{1000000, "1,000,000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			f := newFixture(t)
			in := validInput()
			in.Price = tt.price
			view, err := f.svc.Create(context.Background(), in, png("t.png"), nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if view.Price != tt.want {
				t.Errorf("Price = %q, want %q", view.Price, tt.want)
			}
		})
	}
}

func TestCreate_StoresFilesVerbatim(t *testing.T) {
	f := newFixture(t)

	view, err := f.svc.Create(context.Background(), validInput(),
		png("front.png"),
		[]*models.Upload{png("back.png"), upload("side.gif", "image/gif", "gif-bytes")},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	thumb := view.ThumbnailImage
	if thumb.UploadImageName != "front.png" || !strings.HasSuffix(thumb.StoreImageName, ".png") {
		t.Errorf("unexpected thumbnail %+v", thumb)
	}
	if got := f.storedContent(t, thumb.StoreImageName); got != "png:front.png" {
		t.Errorf("thumbnail content = %q", got)
	}
	if thumb.FileSize != int64(len("png:front.png")) {
		t.Errorf("FileSize = %d", thumb.FileSize)
	}

	if len(view.DetailImage) != 2 {
		t.Fatalf("DetailImage len = %d, want 2", len(view.DetailImage))
	}
	if got := f.storedContent(t, view.DetailImage[1].StoreImageName); got != "gif-bytes" {
		t.Errorf("detail content = %q", got)
	}
	if !strings.HasSuffix(view.DetailImage[1].StoreImageName, ".gif") {
		t.Errorf("extension not preserved: %s", view.DetailImage[1].StoreImageName)
	}
}

func TestCreate_InvalidDetailTypeAbortsBatch(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), validInput(), png("t.png"),
		[]*models.Upload{png("ok.png"), upload("bad.pdf", "application/pdf", "pdf")},
	)
	if !errors.Is(err, itemdomain.ErrInvalidImageType) {
		t.Fatalf("got %v, want ErrInvalidImageType", err)
	}
	if f.store.ItemCount() != 0 {
		t.Errorf("item persisted despite invalid detail image")
	}
}

func TestCreate_ConcurrentUploadsNeverCollide(t *testing.T) {
	f := newFixture(t)
	const n = 20

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		names = make(map[string]struct{})
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			view, err := f.svc.Create(context.Background(), validInput(), png("same.png"), []*models.Upload{png("same.png")})
			if err != nil {
				t.Errorf("create: %v", err)
				return
			}
			mu.Lock()
			defer mu.Unlock()
			names[view.ThumbnailImage.StoreImageName] = struct{}{}
			names[view.DetailImage[0].StoreImageName] = struct{}{}
		}()
	}
	wg.Wait()

	if len(names) != 2*n {
		t.Errorf("got %d distinct stored names, want %d", len(names), 2*n)
	}
}

func TestListAndDetail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, validInput(), png("t.png"), []*models.Upload{png("d.png")})
	if err != nil {
		t.Fatal(err)
	}

	list, err := f.svc.List(ctx, repositories.PageSpec{Page: 1, Size: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 {
		t.Fatalf("list len = %d, want 1", len(list))
	}
	if list[0].DetailImage != nil {
		t.Errorf("list view populated detail images: %+v", list[0].DetailImage)
	}
	if list[0].Price != "12,000" || list[0].ThumbnailImage == nil {
		t.Errorf("unexpected summary %+v", list[0])
	}

	detail, err := f.svc.Detail(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(detail.DetailImage) != 1 {
		t.Errorf("detail view has %d detail images, want 1", len(detail.DetailImage))
	}
	if detail.Color.Name != "Black" {
		t.Errorf("Color = %+v", detail.Color)
	}
}

func TestSearch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	white := validInput()
	white.ItemName = "White Shirt"
	white.ColorID = 2
	if _, err := f.svc.Create(ctx, validInput(), png("a.png"), nil); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.Create(ctx, white, png("b.png"), nil); err != nil {
		t.Fatal(err)
	}

	colorID := int64(2)
	got, err := f.svc.Search(ctx, repositories.SearchCriteria{ColorID: &colorID}, repositories.PageSpec{Page: 1, Size: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ItemName != "White Shirt" {
		t.Fatalf("unexpected result %+v", got)
	}
	if got[0].DetailImage != nil {
		t.Errorf("search view populated detail images")
	}
}

func TestDetail_NotFound(t *testing.T) {
	f := newFixture(t)
	if _, err := f.svc.Detail(context.Background(), 42); !errors.Is(err, itemdomain.ErrItemNotFound) {
		t.Fatalf("got %v, want ErrItemNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, validInput(), png("t.png"), nil)
	if err != nil {
		t.Fatal(err)
	}

	if err := f.svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := f.svc.Detail(ctx, created.ID); !errors.Is(err, itemdomain.ErrItemNotFound) {
		t.Errorf("detail after delete: got %v, want ErrItemNotFound", err)
	}

	if err := f.svc.Delete(ctx, created.ID); !errors.Is(err, itemdomain.ErrItemNotFound) {
		t.Errorf("second delete: got %v, want ErrItemNotFound", err)
	}
}

func TestDelete_NonExistentDoesNotMutate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	if _, err := f.svc.Create(ctx, validInput(), png("t.png"), nil); err != nil {
		t.Fatal(err)
	}

	if err := f.svc.Delete(ctx, 999); !errors.Is(err, itemdomain.ErrItemNotFound) {
		t.Fatalf("got %v, want ErrItemNotFound", err)
	}
	if f.store.ItemCount() != 1 {
		t.Errorf("ItemCount() = %d, want 1", f.store.ItemCount())
	}
}

func TestModify_DetailImagePolicy(t *testing.T) {
	tests := []struct {
		name      string
		initial   []*models.Upload
		modify    []*models.Upload
		wantNames []string
	}{
		{"none existing, none new", nil, nil, nil},
		{"none existing, new set", nil, []*models.Upload{png("n1.png"), png("n2.png")}, []string{"n1.png", "n2.png"}},
		{"existing, new set", []*models.Upload{png("o1.png")}, []*models.Upload{png("n1.png")}, []string{"n1.png"}},
		{"existing, none new", []*models.Upload{png("o1.png"), png("o2.png")}, nil, []string{"o1.png", "o2.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()

			created, err := f.svc.Create(ctx, validInput(), png("t.png"), tt.initial)
			if err != nil {
				t.Fatal(err)
			}

			view, err := f.svc.Modify(ctx, created.ID, validInput(), png("t2.png"), tt.modify)
			if err != nil {
				t.Fatalf("modify: %v", err)
			}

			var got []string
			for _, d := range view.DetailImage {
				got = append(got, d.UploadImageName)
			}
			if strings.Join(got, ",") != strings.Join(tt.wantNames, ",") {
				t.Errorf("detail images = %v, want %v", got, tt.wantNames)
			}

			detail, err := f.svc.Detail(ctx, created.ID)
			if err != nil {
				t.Fatal(err)
			}
			if len(detail.DetailImage) != len(tt.wantNames) {
				t.Errorf("persisted %d detail images, want %d", len(detail.DetailImage), len(tt.wantNames))
			}
		})
	}
}

func TestModify_ReplacesFieldsAndThumbnail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, validInput(), png("old.png"), nil)
	if err != nil {
		t.Fatal(err)
	}

	in := validInput()
	in.ItemName = "Renamed"
	in.Price = 1234567
	in.ColorID = 2
	view, err := f.svc.Modify(ctx, created.ID, in, upload("new.gif", "image/gif", "new"), nil)
	if err != nil {
		t.Fatalf("modify: %v", err)
	}

	if view.ID != created.ID {
		t.Errorf("ID changed: %d -> %d", created.ID, view.ID)
	}
	if view.Price != 1234567 {
		t.Errorf("Price = %d, want raw 1234567", view.Price)
	}
	if view.ItemName != "Renamed" || view.Color.Name != "White" {
		t.Errorf("fields not applied: %+v", view)
	}
	if view.ThumbnailImage.UploadImageName != "new.gif" {
		t.Errorf("thumbnail not replaced: %+v", view.ThumbnailImage)
	}

	detail, err := f.svc.Detail(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if detail.ThumbnailImage.StoreImageName != view.ThumbnailImage.StoreImageName {
		t.Errorf("persisted thumbnail %s, want %s", detail.ThumbnailImage.StoreImageName, view.ThumbnailImage.StoreImageName)
	}
	if detail.Price != "1,234,567" {
		t.Errorf("detail Price = %q", detail.Price)
	}
}

func TestModify_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, validInput(), png("t.png"), nil)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("not found", func(t *testing.T) {
		_, err := f.svc.Modify(ctx, 999, validInput(), png("t.png"), nil)
		if !errors.Is(err, itemdomain.ErrItemNotFound) {
			t.Fatalf("got %v, want ErrItemNotFound", err)
		}
	})

	t.Run("thumbnail required", func(t *testing.T) {
		_, err := f.svc.Modify(ctx, created.ID, validInput(), nil, nil)
		if !errors.Is(err, itemdomain.ErrThumbnailRequired) {
			t.Fatalf("got %v, want ErrThumbnailRequired", err)
		}
	})

	t.Run("bad thumbnail type", func(t *testing.T) {
		_, err := f.svc.Modify(ctx, created.ID, validInput(), upload("x.bmp", "image/bmp", "x"), nil)
		if !errors.Is(err, itemdomain.ErrInvalidThumbnailType) {
			t.Fatalf("got %v, want ErrInvalidThumbnailType", err)
		}
	})

	t.Run("price beyond column range", func(t *testing.T) {
		in := validInput()
		in.Price = 3_000_000_000
		_, err := f.svc.Modify(ctx, created.ID, in, png("t3.png"), nil)
		if !errors.Is(err, itemdomain.ErrInvalidPrice) {
			t.Fatalf("got %v, want ErrInvalidPrice", err)
		}
	})

	t.Run("unknown size leaves item untouched", func(t *testing.T) {
		in := validInput()
		in.ItemName = "Should Not Stick"
		in.SizeID = 77
		_, err := f.svc.Modify(ctx, created.ID, in, png("t2.png"), nil)
		if !errors.Is(err, itemdomain.ErrInvalidSize) {
			t.Fatalf("got %v, want ErrInvalidSize", err)
		}

		detail, err := f.svc.Detail(ctx, created.ID)
		if err != nil {
			t.Fatal(err)
		}
		if detail.ItemName != "Basic Tee" {
			t.Errorf("item mutated: %q", detail.ItemName)
		}
		if detail.ThumbnailImage.UploadImageName != "t.png" {
			t.Errorf("thumbnail replaced: %+v", detail.ThumbnailImage)
		}
	})
}

type failingFileStore struct{ err error }

func (s failingFileStore) Store(context.Context, string, io.Reader) (int64, error) {
	return 0, s.err
}

func TestCreate_FileWriteErrorRollsBack(t *testing.T) {
	errDisk := errors.New("disk full")
	f := newFixtureWithFiles(t, nil, failingFileStore{err: errDisk})

	_, err := f.svc.Create(context.Background(), validInput(), png("t.png"), nil)
	if !errors.Is(err, errDisk) {
		t.Fatalf("got %v, want disk error", err)
	}
	if errors.Is(err, itemdomain.ErrValidation) {
		t.Errorf("I/O error classified as validation: %v", err)
	}
	if f.store.ItemCount() != 0 {
		t.Errorf("item row survived failed file write")
	}
}

func TestCreate_PriceOutOfRange(t *testing.T) {
	for _, price := range []int{-1, 3_000_000_000} {
		f := newFixture(t)
		in := validInput()
		in.Price = price

		_, err := f.svc.Create(context.Background(), in, png("t.png"), nil)
		if !errors.Is(err, itemdomain.ErrInvalidPrice) {
			t.Errorf("price %d: got %v, want ErrInvalidPrice", price, err)
		}
		if !errors.Is(err, itemdomain.ErrValidation) {
			t.Errorf("price %d: ErrInvalidPrice should classify as validation", price)
		}
		if n := f.store.ItemCount(); n != 0 {
			t.Errorf("price %d: %d items stored, want 0", price, n)
		}
	}
}
