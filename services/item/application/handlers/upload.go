package handlers

import (
	"fmt"
	"mime/multipart"

	"github.com/youbeemuhwan/commercial/services/item/domain/models"
)

const (
	thumbnailField   = "thumbnail_image"
	detailImageField = "detail_image"
)

// uploads holds the files opened from one multipart form.
type uploads struct {
	thumbnail *models.Upload
	details   []*models.Upload
	files     []multipart.File
}

// openUploads opens the thumbnail and detail image parts of form. Parts with
// no filename and no content are skipped, so an empty file input in a browser
// form counts as "not supplied". Callers must call close.
func openUploads(form *multipart.Form) (*uploads, error) {
	u := &uploads{}
	if form == nil {
		return u, nil
	}

	if headers := form.File[thumbnailField]; len(headers) > 0 {
		up, err := u.open(headers[0])
		if err != nil {
			u.close()
			return nil, err
		}
		u.thumbnail = up
	}

	for _, fh := range form.File[detailImageField] {
		if fh.Filename == "" && fh.Size == 0 {
			continue
		}
		up, err := u.open(fh)
		if err != nil {
			u.close()
			return nil, err
		}
		u.details = append(u.details, up)
	}
	return u, nil
}

func (u *uploads) open(fh *multipart.FileHeader) (*models.Upload, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	u.files = append(u.files, f)
	return &models.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Content:     f,
	}, nil
}

func (u *uploads) close() {
	for _, f := range u.files {
		_ = f.Close()
	}
}
