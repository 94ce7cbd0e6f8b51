package domain

import "errors"

// ErrValidation is matched by every input validation sentinel below.
// Use errors.Is(err, ErrValidation) to classify a failure as caller error.
var ErrValidation = errors.New("validation failed")

// Sentinel errors for the item domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrImageNotFound indicates no image row exists for the item.
	ErrImageNotFound = errors.New("image not found")

	// ErrReferenceNotFound is returned by reference repositories when an id
	// does not resolve. The service translates it into a named validation error.
	ErrReferenceNotFound = errors.New("reference not found")

	ErrThumbnailRequired     = validationError("thumbnail image is required")
	ErrInvalidThumbnailType  = validationError("invalid thumbnail image type")
	ErrInvalidImageType      = validationError("invalid image type")
	ErrInvalidCategory       = validationError("invalid category id")
	ErrInvalidDetailCategory = validationError("invalid detail category id")
	ErrInvalidColor          = validationError("invalid color id")
	ErrInvalidSize           = validationError("invalid size id")
	ErrInvalidPrice          = validationError("price must be between 0 and 2147483647")
)

type validationErr struct{ msg string }

func validationError(msg string) error { return &validationErr{msg: msg} }

func (e *validationErr) Error() string { return e.msg }

func (e *validationErr) Is(target error) bool { return target == ErrValidation }
