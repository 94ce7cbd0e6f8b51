package handlers

import (
	"net/http"

	"github.com/youbeemuhwan/commercial/pkg/httpx"
	pkgvalidator "github.com/youbeemuhwan/commercial/pkg/validator"
	appsvcs "github.com/youbeemuhwan/commercial/services/item/application/services"
	"github.com/youbeemuhwan/commercial/services/item/domain/repositories"
)

// SearchItemsRequest is the request body for POST /items/search.
// Every field is optional; supplied fields are AND-combined.
type SearchItemsRequest struct {
	ItemName         *string `json:"item_name"          validate:"omitempty,max=255" example:"tee"`
	CategoryID       *int64  `json:"category_id"        validate:"omitempty,gt=0"    example:"1"`
	DetailCategoryID *int64  `json:"detail_category_id" validate:"omitempty,gt=0"`
	ColorID          *int64  `json:"color_id"           validate:"omitempty,gt=0"`
	SizeID           *int64  `json:"size_id"            validate:"omitempty,gt=0"`
	MinPrice         *int    `json:"min_price"          validate:"omitempty,gte=0,lte=2147483647" example:"1000"`
	MaxPrice         *int    `json:"max_price"          validate:"omitempty,gte=0,lte=2147483647" example:"50000"`
} // @name SearchItemsRequest

func (s *SearchItemsRequest) criteria() repositories.SearchCriteria {
	return repositories.SearchCriteria{
		ItemName:         s.ItemName,
		CategoryID:       s.CategoryID,
		DetailCategoryID: s.DetailCategoryID,
		ColorID:          s.ColorID,
		SizeID:           s.SizeID,
		MinPrice:         s.MinPrice,
		MaxPrice:         s.MaxPrice,
	}
}

// SearchItemsHandler handles POST /items/search.
type SearchItemsHandler struct {
	svc  *appsvcs.Services
	opts Options
}

// NewSearchItemsHandler returns a SearchItemsHandler backed by the given services.
func NewSearchItemsHandler(svc *appsvcs.Services, opts Options) *SearchItemsHandler {
	return &SearchItemsHandler{svc: svc, opts: opts}
}

// Execute returns one page of items matching the criteria in the body.
//
//	@Summary		Search items
//	@Description	Filters items by name substring, reference ids and price range.
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SearchItemsRequest	true	"Search criteria"
//	@Param			page	query		int					false	"Page number, 1-based"
//	@Param			size	query		int					false	"Page size"
//	@Param			sort	query		string				false	"Sort key"	Enums(id, -id, price, -price, name, -name)
//	@Success		200		{array}		services.ItemView
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ValidationErrorResponse
//	@Router			/items/search [post]
func (h *SearchItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q, ok := pkgvalidator.ValidateQuery[PageQuery](w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[SearchItemsRequest](w, r)
	if !ok {
		return
	}

	views, err := h.svc.Item.Search(r.Context(), req.criteria(), q.pageSpec(h.opts))
	if err != nil {
		writeError(w, r, err, h.opts)
		return
	}

	httpx.JSON(w, http.StatusOK, views)
}
