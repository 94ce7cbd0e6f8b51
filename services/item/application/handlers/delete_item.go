package handlers

import (
	"net/http"

	appsvcs "github.com/youbeemuhwan/commercial/services/item/application/services"
)

// DeleteItemHandler handles DELETE /items/{id}.
type DeleteItemHandler struct {
	svc  *appsvcs.Services
	opts Options
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services, opts Options) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc, opts: opts}
}

// Execute deletes an item and its image rows.
//
//	@Summary		Delete item
//	@Tags			items
//	@Param			id	path	int	true	"Item id"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/items/{id} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		writeError(w, r, err, h.opts)
		return
	}

	if err := h.svc.Item.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, h.opts)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
