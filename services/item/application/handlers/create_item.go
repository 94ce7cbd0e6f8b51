package handlers

import (
	"net/http"

	"github.com/youbeemuhwan/commercial/pkg/httpx"
	pkgvalidator "github.com/youbeemuhwan/commercial/pkg/validator"
	appsvcs "github.com/youbeemuhwan/commercial/services/item/application/services"
)

// CreateItemHandler handles POST /items.
type CreateItemHandler struct {
	svc  *appsvcs.Services
	opts Options
}

// NewCreateItemHandler returns a CreateItemHandler backed by the given services.
func NewCreateItemHandler(svc *appsvcs.Services, opts Options) *CreateItemHandler {
	return &CreateItemHandler{svc: svc, opts: opts}
}

// Execute creates an item with its thumbnail and optional detail images.
//
//	@Summary		Create item
//	@Description	Creates a catalog item from a multipart form. thumbnail_image is required; detail_image may repeat.
//	@Tags			items
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			item_name			formData	string	true	"Item name"
//	@Param			description			formData	string	false	"Description"
//	@Param			price				formData	int		true	"Price"
//	@Param			category_id			formData	int		true	"Category id"
//	@Param			detail_category_id	formData	int		true	"Detail category id"
//	@Param			color_id			formData	int		true	"Color id"
//	@Param			size_id				formData	int		true	"Size id"
//	@Param			thumbnail_image		formData	file	true	"Thumbnail (jpeg, png or gif)"
//	@Param			detail_image		formData	file	false	"Detail image (repeatable)"
//	@Success		201					{object}	services.ItemView
//	@Failure		400					{object}	ErrorResponse
//	@Failure		403					{object}	ErrorResponse
//	@Failure		413					{object}	ErrorResponse
//	@Failure		422					{object}	ValidationErrorResponse
//	@Router			/items [post]
func (h *CreateItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	form, ok := pkgvalidator.ValidateForm[ItemForm](w, r, maxFormMemory)
	if !ok {
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	files, err := openUploads(r.MultipartForm)
	if err != nil {
		writeError(w, r, err, h.opts)
		return
	}
	defer files.close()

	view, err := h.svc.Item.Create(r.Context(), form.input(), files.thumbnail, files.details)
	if err != nil {
		writeError(w, r, err, h.opts)
		return
	}

	httpx.JSON(w, http.StatusCreated, view)
}
