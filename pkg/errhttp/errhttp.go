// Package errhttp translates catalog and storage errors into HTTP responses.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/youbeemuhwan/commercial/pkg/httpx"
	"github.com/youbeemuhwan/commercial/pkg/storage"
	itemdomain "github.com/youbeemuhwan/commercial/services/item/domain"
)

// WriteError writes err as a JSON error body with the status from StatusOf.
func WriteError(w http.ResponseWriter, err error) {
	WriteSafeError(w, err, false)
}

// WriteSafeError is WriteError with 5xx messages hidden when isProduction is set.
func WriteSafeError(w http.ResponseWriter, err error, isProduction bool) {
	status := StatusOf(err)
	httpx.JSONError(w, status, httpx.SafeError(clientError(err), status, isProduction))
}

// StatusOf returns the HTTP status code err maps to.
func StatusOf(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, itemdomain.ErrItemNotFound),
		errors.Is(err, itemdomain.ErrImageNotFound),
		errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, itemdomain.ErrValidation),
		errors.Is(err, itemdomain.ErrReferenceNotFound):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, storage.ErrInvalidName):
		return http.StatusBadRequest // 400
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge // 413
	default:
		return http.StatusInternalServerError // 500
	}
}

// clientError strips operation prefixes from well-known sentinels so the
// response carries only the sentinel message.
func clientError(err error) error {
	for _, sentinel := range []error{
		itemdomain.ErrItemNotFound,
		itemdomain.ErrImageNotFound,
		itemdomain.ErrReferenceNotFound,
		storage.ErrNotFound,
		storage.ErrInvalidName,
	} {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}
	return err
}
