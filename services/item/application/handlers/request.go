package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/youbeemuhwan/commercial/pkg/errhttp"
	"github.com/youbeemuhwan/commercial/pkg/httpx"
	"github.com/youbeemuhwan/commercial/pkg/telemetry"
	appsvcs "github.com/youbeemuhwan/commercial/services/item/application/services"
	"github.com/youbeemuhwan/commercial/services/item/domain/repositories"
)

// maxFormMemory is the part of a multipart body held in memory; the rest
// spills to temporary files. The total body size is capped by the router.
const maxFormMemory = 8 << 20

var errInvalidItemID = errors.New("invalid item id")

// Options carries request settings shared by the item handlers.
type Options struct {
	DefaultPageSize int
	MaxPageSize     int
	// Production hides 5xx error messages from clients.
	Production bool
}

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"item not found"`
} // @name ErrorResponse

// ValidationErrorResponse is returned when request fields fail validation.
type ValidationErrorResponse struct {
	Error  string            `json:"error"  example:"Validation failed"`
	Fields map[string]string `json:"fields"`
} // @name ValidationErrorResponse

// ItemForm holds the text fields of the create and modify multipart bodies.
type ItemForm struct {
	ItemName         string `form:"item_name"          validate:"required,max=255"`
	Description      string `form:"description"        validate:"max=4000"`
	Price            int    `form:"price"              validate:"gte=0,lte=2147483647"`
	CategoryID       int64  `form:"category_id"        validate:"required,gt=0"`
	DetailCategoryID int64  `form:"detail_category_id" validate:"required,gt=0"`
	ColorID          int64  `form:"color_id"           validate:"required,gt=0"`
	SizeID           int64  `form:"size_id"            validate:"required,gt=0"`
}

func (f *ItemForm) input() appsvcs.ItemInput {
	return appsvcs.ItemInput{
		ItemName:         f.ItemName,
		Description:      f.Description,
		Price:            f.Price,
		CategoryID:       f.CategoryID,
		DetailCategoryID: f.DetailCategoryID,
		ColorID:          f.ColorID,
		SizeID:           f.SizeID,
	}
}

// PageQuery is the paging part of the list and search query strings.
type PageQuery struct {
	Page int    `form:"page" validate:"gte=0"`
	Size int    `form:"size" validate:"gte=0"`
	Sort string `form:"sort" validate:"omitempty,oneof=id -id price -price name -name"`
}

func (q *PageQuery) pageSpec(opts Options) repositories.PageSpec {
	return repositories.NewPageSpec(q.Page, q.Size, opts.DefaultPageSize, opts.MaxPageSize, q.Sort)
}

// itemID parses the {id} path parameter.
func itemID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidItemID
	}
	return id, nil
}

func writeError(w http.ResponseWriter, r *http.Request, err error, opts Options) {
	if errors.Is(err, errInvalidItemID) {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if errhttp.StatusOf(err) >= http.StatusInternalServerError {
		telemetry.CaptureError(r.Context(), err)
	}
	errhttp.WriteSafeError(w, err, opts.Production)
}
