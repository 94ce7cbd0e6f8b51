package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/youbeemuhwan/commercial/pkg/httpx"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
}

// Validate runs struct-level validation using go-playground/validator tags.
func Validate(s any) error {
	return validate.Struct(s)
}

// FormatValidationErrors maps each failing field, named by its json or form
// tag, to a short message. Non-validation errors yield an empty map.
func FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return errs
	}
	for _, e := range ve {
		errs[e.Field()] = formatFieldError(e)
	}
	return errs
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", e.Param())
		}
		return fmt.Sprintf("must be at most %s", e.Param())
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", e.Param())
		}
		return fmt.Sprintf("must be at least %s", e.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", e.Param())
	case "gte":
		return fmt.Sprintf("must be %s or more", e.Param())
	case "lte":
		return fmt.Sprintf("must be %s or less", e.Param())
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")
	default:
		return fmt.Sprintf("failed %q check", e.Tag())
	}
}

// ValidateRequest decodes the JSON request body into T, validates it, and
// writes an appropriate error response if either step fails.
// Returns (parsedStruct, true) on success or (nil, false) on failure.
func ValidateRequest[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpx.JSONError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return nil, false
		}
		httpx.JSONError(w, http.StatusBadRequest, "Invalid JSON")
		return nil, false
	}
	return validated(w, &req)
}

// ValidateForm parses a multipart/form-data body, decodes its text fields into
// T by `form` tag, and validates the result. File parts stay available on
// r.MultipartForm. Bodies above maxMemory spill to temporary files.
func ValidateForm[T any](w http.ResponseWriter, r *http.Request, maxMemory int64) (*T, bool) {
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpx.JSONError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return nil, false
		}
		httpx.JSONError(w, http.StatusBadRequest, "Invalid multipart form")
		return nil, false
	}

	var req T
	if err := Decode(r.MultipartForm.Value, &req); err != nil {
		writeDecodeError(w, err)
		return nil, false
	}
	return validated(w, &req)
}

// ValidateQuery decodes the URL query into T by `form` tag and validates it.
func ValidateQuery[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	var req T
	if err := Decode(r.URL.Query(), &req); err != nil {
		writeDecodeError(w, err)
		return nil, false
	}
	return validated(w, &req)
}

func validated[T any](w http.ResponseWriter, req *T) (*T, bool) {
	if err := Validate(req); err != nil {
		httpx.ValidationError(w, FormatValidationErrors(err))
		return nil, false
	}
	return req, true
}

func writeDecodeError(w http.ResponseWriter, err error) {
	var fe *FieldError
	if errors.As(err, &fe) {
		httpx.ValidationError(w, map[string]string{fe.Field: fe.Reason})
		return
	}
	httpx.JSONError(w, http.StatusBadRequest, err.Error())
}
