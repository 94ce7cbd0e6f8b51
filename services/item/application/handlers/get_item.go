package handlers

import (
	"net/http"

	"github.com/youbeemuhwan/commercial/pkg/httpx"
	appsvcs "github.com/youbeemuhwan/commercial/services/item/application/services"
)

// GetItemHandler handles GET /items/{id}.
type GetItemHandler struct {
	svc  *appsvcs.Services
	opts Options
}

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services, opts Options) *GetItemHandler {
	return &GetItemHandler{svc: svc, opts: opts}
}

// Execute returns one item with its detail images.
//
//	@Summary		Get item
//	@Tags			items
//	@Produce		json
//	@Param			id	path		int	true	"Item id"
//	@Success		200	{object}	services.ItemView
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/items/{id} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		writeError(w, r, err, h.opts)
		return
	}

	view, err := h.svc.Item.Detail(r.Context(), id)
	if err != nil {
		writeError(w, r, err, h.opts)
		return
	}

	httpx.JSON(w, http.StatusOK, view)
}
