package handlers

import (
	"net/http"

	"github.com/youbeemuhwan/commercial/pkg/httpx"
	pkgvalidator "github.com/youbeemuhwan/commercial/pkg/validator"
	appsvcs "github.com/youbeemuhwan/commercial/services/item/application/services"
)

// ListItemsHandler handles GET /items.
type ListItemsHandler struct {
	svc  *appsvcs.Services
	opts Options
}

// NewListItemsHandler returns a ListItemsHandler backed by the given services.
func NewListItemsHandler(svc *appsvcs.Services, opts Options) *ListItemsHandler {
	return &ListItemsHandler{svc: svc, opts: opts}
}

// Execute returns one page of item summaries.
//
//	@Summary		List items
//	@Description	Returns one page of items without detail images. Sort keys: id, price, name; prefix "-" for descending.
//	@Tags			items
//	@Produce		json
//	@Param			page	query		int		false	"Page number, 1-based"
//	@Param			size	query		int		false	"Page size"
//	@Param			sort	query		string	false	"Sort key"	Enums(id, -id, price, -price, name, -name)
//	@Success		200		{array}		services.ItemView
//	@Failure		422		{object}	ValidationErrorResponse
//	@Router			/items [get]
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q, ok := pkgvalidator.ValidateQuery[PageQuery](w, r)
	if !ok {
		return
	}

	views, err := h.svc.Item.List(r.Context(), q.pageSpec(h.opts))
	if err != nil {
		writeError(w, r, err, h.opts)
		return
	}

	httpx.JSON(w, http.StatusOK, views)
}
