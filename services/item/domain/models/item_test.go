package models

import (
	"strings"
	"testing"
)

func sampleRefs() (Category, DetailCategory, Color, Size) {
	return Category{ID: 1, Name: "Top"},
		DetailCategory{ID: 2, CategoryID: 1, Name: "Shirt"},
		Color{ID: 3, Name: "Black"},
		Size{ID: 4, Name: "M"}
}

func TestNewItem(t *testing.T) {
	c, dc, col, s := sampleRefs()
	f := ItemFields{ItemName: "Oxford shirt", Description: "cotton", Price: 39000}

	item := NewItem(f, c, dc, col, s)

	if item.ID != 0 {
		t.Fatalf("expected unsaved item, got ID %d", item.ID)
	}
	if item.ItemName != f.ItemName || item.Description != f.Description || item.Price != f.Price {
		t.Fatalf("fields not copied: %+v", item)
	}
	if item.Category != c || item.DetailCategory != dc || item.Color != col || item.Size != s {
		t.Fatalf("references not attached: %+v", item)
	}
	if item.Thumbnail != nil || item.DetailImages != nil {
		t.Fatal("new item must not carry images")
	}
}

func TestItem_ApplyPreservesID(t *testing.T) {
	c, dc, col, s := sampleRefs()
	item := &Item{ID: 42, ItemName: "old", Price: 1}

	item.Apply(ItemFields{ItemName: "new", Description: "d", Price: 2}, c, dc, col, s)

	if item.ID != 42 {
		t.Fatalf("ID changed to %d", item.ID)
	}
	if item.ItemName != "new" || item.Price != 2 || item.Description != "d" {
		t.Fatalf("fields not applied: %+v", item)
	}
	if item.Size != s {
		t.Fatalf("size not applied: %+v", item.Size)
	}
}

func TestUpload_Empty(t *testing.T) {
	tests := []struct {
		name string
		u    *Upload
		want bool
	}{
		{"nil", nil, true},
		{"zero size", &Upload{Size: 0, Content: strings.NewReader("")}, true},
		{"no content", &Upload{Size: 10}, true},
		{"present", &Upload{Size: 3, Content: strings.NewReader("abc")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.u.Empty(); got != tt.want {
				t.Errorf("Empty() = %v, want %v", got, tt.want)
			}
		})
	}
}
