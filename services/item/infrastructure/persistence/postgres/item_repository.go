package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/youbeemuhwan/commercial/pkg/database"
	itemdomain "github.com/youbeemuhwan/commercial/services/item/domain"
	"github.com/youbeemuhwan/commercial/services/item/domain/models"
	"github.com/youbeemuhwan/commercial/services/item/domain/repositories"
	"github.com/youbeemuhwan/commercial/services/item/infrastructure/persistence/postgres/db"
)

const pgForeignKeyViolation = "23503"

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	db *database.Database
}

// NewItemRepository returns an ItemRepository backed by the given connection pool.
func NewItemRepository(database *database.Database) *ItemRepository {
	return &ItemRepository{db: database}
}

// Save inserts a new Item and sets its ID.
// Returns ErrReferenceNotFound when a referenced row does not exist.
func (r *ItemRepository) Save(ctx context.Context, item *models.Item) error {
	q := db.New(r.db.Conn(ctx))
	id, err := q.InsertItem(ctx, db.InsertItemParams{
		ItemName:         item.ItemName,
		Description:      item.Description,
		Price:            int32(item.Price),
		CategoryID:       item.Category.ID,
		DetailCategoryID: item.DetailCategory.ID,
		ColorID:          item.Color.ID,
		SizeID:           item.Size.ID,
	})
	if err != nil {
		return mapWriteError("insert item", err)
	}
	item.ID = id
	return nil
}

// Update persists the scalar fields and references of an existing Item.
func (r *ItemRepository) Update(ctx context.Context, item *models.Item) error {
	q := db.New(r.db.Conn(ctx))
	n, err := q.UpdateItem(ctx, db.UpdateItemParams{
		ID:               item.ID,
		ItemName:         item.ItemName,
		Description:      item.Description,
		Price:            int32(item.Price),
		CategoryID:       item.Category.ID,
		DetailCategoryID: item.DetailCategory.ID,
		ColorID:          item.Color.ID,
		SizeID:           item.Size.ID,
	})
	if err != nil {
		return mapWriteError("update item", err)
	}
	if n == 0 {
		return itemdomain.ErrItemNotFound
	}
	return nil
}

// FindByID loads an Item with references, thumbnail and detail images.
// Returns ErrItemNotFound if not found.
func (r *ItemRepository) FindByID(ctx context.Context, id int64) (*models.Item, error) {
	q := db.New(r.db.Conn(ctx))
	row, err := q.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, itemdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}

	item := rowToItem(row)

	details, err := q.ListDetailImagesByItemID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("query detail images: %w", err)
	}
	item.DetailImages = make([]models.DetailImage, len(details))
	for i, d := range details {
		item.DetailImages[i] = detailImageFromRow(d)
	}
	return item, nil
}

// Delete removes an item. Image rows are removed by the ON DELETE CASCADE
// foreign keys. Returns ErrItemNotFound when nothing was deleted.
func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	q := db.New(r.db.Conn(ctx))
	n, err := q.DeleteItem(ctx, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if n == 0 {
		return itemdomain.ErrItemNotFound
	}
	return nil
}

// FindAll returns one page of items ordered by page.Sort, id ascending by default.
func (r *ItemRepository) FindAll(ctx context.Context, page repositories.PageSpec) ([]*models.Item, error) {
	q := db.New(r.db.Conn(ctx))
	rows, err := q.ListItems(ctx, db.ListItemsParams{
		Sort:       page.Sort,
		PageLimit:  int32(page.Limit()),
		PageOffset: int32(page.Offset()),
	})
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}

	items := make([]*models.Item, len(rows))
	for i, row := range rows {
		items[i] = rowToItem(db.GetItemByIDRow(row))
	}
	return items, nil
}

// Search returns one page of items matching every non-nil criteria field.
func (r *ItemRepository) Search(ctx context.Context, c repositories.SearchCriteria, page repositories.PageSpec) ([]*models.Item, error) {
	q := db.New(r.db.Conn(ctx))
	rows, err := q.SearchItems(ctx, db.SearchItemsParams{
		ItemName:         nullString(c.ItemName),
		CategoryID:       nullInt64(c.CategoryID),
		DetailCategoryID: nullInt64(c.DetailCategoryID),
		ColorID:          nullInt64(c.ColorID),
		SizeID:           nullInt64(c.SizeID),
		MinPrice:         nullInt32(c.MinPrice),
		MaxPrice:         nullInt32(c.MaxPrice),
		Sort:             page.Sort,
		PageLimit:        int32(page.Limit()),
		PageOffset:       int32(page.Offset()),
	})
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}

	items := make([]*models.Item, len(rows))
	for i, row := range rows {
		items[i] = rowToItem(db.GetItemByIDRow(row))
	}
	return items, nil
}

// rowToItem maps a joined item row to a domain Item without detail images.
func rowToItem(row db.GetItemByIDRow) *models.Item {
	item := &models.Item{
		ID:          row.ID,
		ItemName:    row.ItemName,
		Description: row.Description,
		Price:       int(row.Price),
		Category:    models.Category{ID: row.CategoryID, Name: row.CategoryName},
		DetailCategory: models.DetailCategory{
			ID:         row.DetailCategoryID,
			CategoryID: row.DetailCategoryParentID,
			Name:       row.DetailCategoryName,
		},
		Color: models.Color{ID: row.ColorID, Name: row.ColorName},
		Size:  models.Size{ID: row.SizeID, Name: row.SizeName},
	}
	if row.ThumbnailID.Valid {
		item.Thumbnail = &models.ThumbnailImage{
			ID:              row.ThumbnailID.Int64,
			UploadImageName: row.ThumbnailUploadImageName.String,
			StoreImageName:  row.ThumbnailStoreImageName.String,
			FileSize:        row.ThumbnailFileSize.Int64,
			ItemID:          row.ID,
		}
	}
	return item
}

func mapWriteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return fmt.Errorf("%s: %w", op, itemdomain.ErrReferenceNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullInt32(v *int) sql.NullInt32 {
	if v == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*v), Valid: true}
}
