package repositories

import "strings"

// Sort keys accepted by PageSpec. A leading "-" sorts descending.
const (
	SortID       = "id"
	SortPrice    = "price"
	SortItemName = "name"
)

// PageSpec selects one page of a listing. Page is 1-based.
type PageSpec struct {
	Page int
	Size int
	Sort string
}

// NewPageSpec clamps page and size into range and drops unknown sort keys.
func NewPageSpec(page, size, defaultSize, maxSize int, sort string) PageSpec {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultSize
	}
	if size > maxSize {
		size = maxSize
	}
	if !validSort(sort) {
		sort = SortID
	}
	return PageSpec{Page: page, Size: size, Sort: sort}
}

// Limit is the page size.
func (p PageSpec) Limit() int {
	return p.Size
}

// Offset is the number of rows skipped before this page.
func (p PageSpec) Offset() int {
	return (p.Page - 1) * p.Size
}

// SortKey returns the sort column key and direction.
func (p PageSpec) SortKey() (key string, descending bool) {
	if p.Sort == "" {
		return SortID, false
	}
	if strings.HasPrefix(p.Sort, "-") {
		return p.Sort[1:], true
	}
	return p.Sort, false
}

func validSort(s string) bool {
	switch strings.TrimPrefix(s, "-") {
	case SortID, SortPrice, SortItemName:
		return true
	default:
		return false
	}
}

// SearchCriteria is evaluated entirely by the repository; nil fields are ignored.
type SearchCriteria struct {
	ItemName         *string
	CategoryID       *int64
	DetailCategoryID *int64
	ColorID          *int64
	SizeID           *int64
	MinPrice         *int
	MaxPrice         *int
}
