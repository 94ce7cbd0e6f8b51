package models

// Item is the catalog aggregate root. References are held by value so a loaded
// Item carries everything its views need.
type Item struct {
	ID             int64
	ItemName       string
	Description    string
	Price          int // minor currency units
	Category       Category
	DetailCategory DetailCategory
	Color          Color
	Size           Size
	Thumbnail      *ThumbnailImage
	DetailImages   []DetailImage
}

// ItemFields is the mutable part of an Item supplied by create and modify.
type ItemFields struct {
	ItemName         string
	Description      string
	Price            int
	CategoryID       int64
	DetailCategoryID int64
	ColorID          int64
	SizeID           int64
}

// NewItem builds an unsaved Item from resolved references.
func NewItem(f ItemFields, category Category, detailCategory DetailCategory, color Color, size Size) *Item {
	return &Item{
		ItemName:       f.ItemName,
		Description:    f.Description,
		Price:          f.Price,
		Category:       category,
		DetailCategory: detailCategory,
		Color:          color,
		Size:           size,
	}
}

// Apply overwrites the item's mutable fields in place; the id is preserved.
func (i *Item) Apply(f ItemFields, category Category, detailCategory DetailCategory, color Color, size Size) {
	i.ItemName = f.ItemName
	i.Description = f.Description
	i.Price = f.Price
	i.Category = category
	i.DetailCategory = detailCategory
	i.Color = color
	i.Size = size
}
