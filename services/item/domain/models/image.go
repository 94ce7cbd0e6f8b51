package models

import "io"

// ThumbnailImage is the single cover image of an Item.
type ThumbnailImage struct {
	ID              int64
	UploadImageName string // original client filename
	StoreImageName  string // generated name on disk
	FileSize        int64
	ItemID          int64
}

// DetailImage is one of an Item's gallery images.
type DetailImage struct {
	ID              int64
	UploadImageName string
	StoreImageName  string
	FileSize        int64
	ItemID          int64
}

// Upload is an inbound file attachment as handed over by the transport layer.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// Empty reports whether the upload is missing or carries no bytes.
func (u *Upload) Empty() bool {
	return u == nil || u.Size <= 0 || u.Content == nil
}
