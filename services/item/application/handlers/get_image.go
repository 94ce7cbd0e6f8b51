package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	imagesvc "github.com/youbeemuhwan/commercial/services/item/domain/services"
)

// ImageOpener opens a stored image by its generated name.
type ImageOpener interface {
	Open(ctx context.Context, name string) (*os.File, error)
}

// GetImageHandler handles GET /images/{name}.
type GetImageHandler struct {
	files ImageOpener
	opts  Options
}

// NewGetImageHandler returns a GetImageHandler reading from files.
func NewGetImageHandler(files ImageOpener, opts Options) *GetImageHandler {
	return &GetImageHandler{files: files, opts: opts}
}

// Execute streams a stored image. Range and conditional requests are honoured.
// Content-Type is sniffed from the file's bytes; anything that is not an
// accepted image is sent as an octet-stream attachment.
//
//	@Summary		Get image
//	@Description	Streams a stored thumbnail or detail image by its store_image_name.
//	@Tags			images
//	@Produce		octet-stream
//	@Param			name	path	string	true	"Stored image name"
//	@Success		200
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/images/{name} [get]
func (h *GetImageHandler) Execute(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	f, err := h.files.Open(r.Context(), name)
	if err != nil {
		writeError(w, r, err, h.opts)
		return
	}
	defer f.Close() //nolint:errcheck

	info, err := f.Stat()
	if err != nil {
		writeError(w, r, err, h.opts)
		return
	}

	contentType, err := sniffImageType(f)
	if err != nil {
		writeError(w, r, err, h.opts)
		return
	}

	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Content-Type", contentType)
	if !imagesvc.IsAcceptedImageType(contentType) {
		w.Header().Set("Content-Disposition", "attachment")
	}
	http.ServeContent(w, r, "", info.ModTime(), f)
}

// sniffImageType reports the stored bytes' image type, or
// application/octet-stream when they are not a jpeg, png or gif. The name
// and its extension come from the client and play no part. f is rewound.
func sniffImageType(f io.ReadSeeker) (string, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read image header: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind image: %w", err)
	}
	if ct := http.DetectContentType(head[:n]); imagesvc.IsAcceptedImageType(ct) {
		return ct, nil
	}
	return "application/octet-stream", nil
}
