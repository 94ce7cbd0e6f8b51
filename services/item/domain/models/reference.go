package models

// Category is a top-level catalog grouping.
type Category struct {
	ID   int64
	Name string
}

// DetailCategory narrows a Category.
type DetailCategory struct {
	ID         int64
	CategoryID int64
	Name       string
}

type Color struct {
	ID   int64
	Name string
}

type Size struct {
	ID   int64
	Name string
}
