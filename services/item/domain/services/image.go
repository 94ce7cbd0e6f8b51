package services

import (
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/youbeemuhwan/commercial/services/item/domain"
	"github.com/youbeemuhwan/commercial/services/item/domain/models"
)

var acceptedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
}

// IsAcceptedImageType reports whether contentType is one of the image types the
// catalog stores. The match is exact and case-sensitive.
func IsAcceptedImageType(contentType string) bool {
	_, ok := acceptedImageTypes[contentType]
	return ok
}

// ValidateThumbnail requires a non-empty upload with an accepted content type.
func ValidateThumbnail(u *models.Upload) error {
	if u.Empty() {
		return domain.ErrThumbnailRequired
	}
	if !IsAcceptedImageType(u.ContentType) {
		return domain.ErrInvalidThumbnailType
	}
	return nil
}

// ValidateImageType checks a detail image's declared content type.
func ValidateImageType(u *models.Upload) error {
	if u == nil || !IsAcceptedImageType(u.ContentType) {
		return domain.ErrInvalidImageType
	}
	return nil
}

// MaxPrice is the largest price the INTEGER price column holds.
const MaxPrice = math.MaxInt32

// ValidatePrice rejects prices that are negative or would not fit the column.
func ValidatePrice(price int) error {
	if price < 0 || price > MaxPrice {
		return domain.ErrInvalidPrice
	}
	return nil
}

// StoreFileName returns a collision-free name for an uploaded file: a random
// uuid, a dot, then everything after the last dot of original. A name with
// no dot is kept whole, so "README" becomes "<uuid>.README".
func StoreFileName(original string) string {
	ext := original[strings.LastIndex(original, ".")+1:]
	return uuid.NewString() + "." + ext
}
