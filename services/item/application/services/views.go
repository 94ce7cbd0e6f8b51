package services

import (
	"github.com/dustin/go-humanize"

	"github.com/youbeemuhwan/commercial/services/item/domain/models"
)

// ReferenceView is a category, color or size as returned to clients.
type ReferenceView struct {
	ID   int64  `json:"id"   example:"1"`
	Name string `json:"name" example:"Black"`
} // @name ReferenceView

// DetailCategoryView is a detail category with its parent category id.
type DetailCategoryView struct {
	ID         int64  `json:"id"          example:"3"`
	CategoryID int64  `json:"category_id" example:"1"`
	Name       string `json:"name"        example:"T-Shirts"`
} // @name DetailCategoryView

// ImageView describes a stored image file.
type ImageView struct {
	ID              int64  `json:"id"                example:"10"`
	UploadImageName string `json:"upload_image_name" example:"front.png"`
	StoreImageName  string `json:"store_image_name"  example:"6f1c2a8e-3b4d-4e5f-8a9b-0c1d2e3f4a5b.png"`
	FileSize        int64  `json:"file_size"         example:"20480"`
} // @name ImageView

// ItemView is the create, list, search and detail response. Price is
// thousands-grouped. DetailImage is omitted from list and search results.
type ItemView struct {
	ID             int64              `json:"id"              example:"1"`
	Category       ReferenceView      `json:"category"`
	DetailCategory DetailCategoryView `json:"detail_category"`
	ItemName       string             `json:"item_name"       example:"Basic Tee"`
	Description    string             `json:"description"     example:"Cotton crew neck"`
	Color          ReferenceView      `json:"color"`
	Size           ReferenceView      `json:"size"`
	Price          string             `json:"price"           example:"12,000"`
	ThumbnailImage *ImageView         `json:"thumbnail_image"`
	DetailImage    []ImageView        `json:"detail_image,omitempty"`
} // @name ItemView

// ItemModifiedView is the modify response. Price is the raw integer.
type ItemModifiedView struct {
	ID             int64              `json:"id"              example:"1"`
	Category       ReferenceView      `json:"category"`
	DetailCategory DetailCategoryView `json:"detail_category"`
	ItemName       string             `json:"item_name"       example:"Basic Tee"`
	Description    string             `json:"description"     example:"Cotton crew neck"`
	Color          ReferenceView      `json:"color"`
	Size           ReferenceView      `json:"size"`
	Price          int                `json:"price"           example:"12000"`
	ThumbnailImage *ImageView         `json:"thumbnail_image"`
	DetailImage    []ImageView        `json:"detail_image"`
} // @name ItemModifiedView

// FormatPrice renders price with comma thousands separators: 1234567 -> "1,234,567".
func FormatPrice(price int) string {
	return humanize.Comma(int64(price))
}

// NewItemView maps an Item. withDetails controls whether detail images are included.
func NewItemView(item *models.Item, withDetails bool) *ItemView {
	v := &ItemView{
		ID:             item.ID,
		Category:       ReferenceView{ID: item.Category.ID, Name: item.Category.Name},
		DetailCategory: detailCategoryView(item.DetailCategory),
		ItemName:       item.ItemName,
		Description:    item.Description,
		Color:          ReferenceView{ID: item.Color.ID, Name: item.Color.Name},
		Size:           ReferenceView{ID: item.Size.ID, Name: item.Size.Name},
		Price:          FormatPrice(item.Price),
		ThumbnailImage: thumbnailView(item.Thumbnail),
	}
	if withDetails {
		v.DetailImage = detailViews(item.DetailImages)
	}
	return v
}

func NewItemModifiedView(item *models.Item) *ItemModifiedView {
	return &ItemModifiedView{
		ID:             item.ID,
		Category:       ReferenceView{ID: item.Category.ID, Name: item.Category.Name},
		DetailCategory: detailCategoryView(item.DetailCategory),
		ItemName:       item.ItemName,
		Description:    item.Description,
		Color:          ReferenceView{ID: item.Color.ID, Name: item.Color.Name},
		Size:           ReferenceView{ID: item.Size.ID, Name: item.Size.Name},
		Price:          item.Price,
		ThumbnailImage: thumbnailView(item.Thumbnail),
		DetailImage:    detailViews(item.DetailImages),
	}
}

func detailCategoryView(dc models.DetailCategory) DetailCategoryView {
	return DetailCategoryView{ID: dc.ID, CategoryID: dc.CategoryID, Name: dc.Name}
}

func thumbnailView(t *models.ThumbnailImage) *ImageView {
	if t == nil {
		return nil
	}
	return &ImageView{ID: t.ID, UploadImageName: t.UploadImageName, StoreImageName: t.StoreImageName, FileSize: t.FileSize}
}

func detailViews(images []models.DetailImage) []ImageView {
	views := make([]ImageView, len(images))
	for i, d := range images {
		views[i] = ImageView{ID: d.ID, UploadImageName: d.UploadImageName, StoreImageName: d.StoreImageName, FileSize: d.FileSize}
	}
	return views
}
