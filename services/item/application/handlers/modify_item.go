package handlers

import (
	"net/http"

	"github.com/youbeemuhwan/commercial/pkg/httpx"
	pkgvalidator "github.com/youbeemuhwan/commercial/pkg/validator"
	appsvcs "github.com/youbeemuhwan/commercial/services/item/application/services"
)

// ModifyItemHandler handles PUT /items/{id}.
type ModifyItemHandler struct {
	svc  *appsvcs.Services
	opts Options
}

// NewModifyItemHandler returns a ModifyItemHandler backed by the given services.
func NewModifyItemHandler(svc *appsvcs.Services, opts Options) *ModifyItemHandler {
	return &ModifyItemHandler{svc: svc, opts: opts}
}

// Execute replaces an item's fields and thumbnail, and its detail images when
// any are supplied.
//
//	@Summary		Modify item
//	@Description	Replaces all fields. A new thumbnail_image is always required. Omitting detail_image keeps the existing detail images.
//	@Tags			items
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id					path		int		true	"Item id"
//	@Param			item_name			formData	string	true	"Item name"
//	@Param			description			formData	string	false	"Description"
//	@Param			price				formData	int		true	"Price"
//	@Param			category_id			formData	int		true	"Category id"
//	@Param			detail_category_id	formData	int		true	"Detail category id"
//	@Param			color_id			formData	int		true	"Color id"
//	@Param			size_id				formData	int		true	"Size id"
//	@Param			thumbnail_image		formData	file	true	"Thumbnail (jpeg, png or gif)"
//	@Param			detail_image		formData	file	false	"Detail image (repeatable)"
//	@Success		200					{object}	services.ItemModifiedView
//	@Failure		400					{object}	ErrorResponse
//	@Failure		403					{object}	ErrorResponse
//	@Failure		404					{object}	ErrorResponse
//	@Failure		413					{object}	ErrorResponse
//	@Failure		422					{object}	ValidationErrorResponse
//	@Router			/items/{id} [put]
func (h *ModifyItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		writeError(w, r, err, h.opts)
		return
	}

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

	view, err := h.svc.Item.Modify(r.Context(), id, form.input(), files.thumbnail, files.details)
	if err != nil {
		writeError(w, r, err, h.opts)
		return
	}

	httpx.JSON(w, http.StatusOK, view)
}
