package validator_test

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	pkgvalidator "github.com/youbeemuhwan/commercial/pkg/validator"
)

type formReq struct {
	Name    string `form:"name"     validate:"required,max=20"`
	Price   int    `form:"price"    validate:"gte=0"`
	ColorID int64  `form:"color_id" validate:"required,gt=0"`
	MinSize *int64 `form:"min_size"`
	Active  bool   `form:"active"`
	Ignored string
}

func TestDecode(t *testing.T) {
	var req formReq
	err := pkgvalidator.Decode(url.Values{
		"name":     {"  tee  "},
		"price":    {"1200"},
		"color_id": {"7"},
		"min_size": {"3"},
		"active":   {"true"},
		"Ignored":  {"x"},
	}, &req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Name != "tee" || req.Price != 1200 || req.ColorID != 7 || !req.Active {
		t.Errorf("unexpected decode: %+v", req)
	}
	if req.MinSize == nil || *req.MinSize != 3 {
		t.Errorf("MinSize = %v, want 3", req.MinSize)
	}
	if req.Ignored != "" {
		t.Errorf("untagged field was set: %q", req.Ignored)
	}
}

func TestDecode_BlankPointerStaysNil(t *testing.T) {
	var req formReq
	if err := pkgvalidator.Decode(url.Values{"min_size": {""}}, &req); err != nil {
		t.Fatal(err)
	}
	if req.MinSize != nil {
		t.Errorf("MinSize = %v, want nil", *req.MinSize)
	}
}

func TestDecode_BadNumber(t *testing.T) {
	var req formReq
	err := pkgvalidator.Decode(url.Values{"price": {"12a"}}, &req)

	var fe *pkgvalidator.FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("got %v, want *FieldError", err)
	}
	if fe.Field != "price" {
		t.Errorf("Field = %q, want price", fe.Field)
	}
}

func TestDecode_NonPointer(t *testing.T) {
	if err := pkgvalidator.Decode(url.Values{}, formReq{}); err == nil {
		t.Fatal("expected error for non-pointer target")
	}
}

func multipartRequest(t *testing.T, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	r := httptest.NewRequest(http.MethodPost, "/", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	return r
}

func TestValidateForm_valid(t *testing.T) {
	r := multipartRequest(t, map[string]string{"name": "tee", "price": "10", "color_id": "1"})
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.ValidateForm[formReq](w, r, 1<<20)
	if !ok {
		t.Fatalf("expected ok, got %d: %s", w.Code, w.Body.String())
	}
	if req.Name != "tee" || req.ColorID != 1 {
		t.Errorf("unexpected request: %+v", req)
	}
}

func TestValidateForm_validationFailure(t *testing.T) {
	r := multipartRequest(t, map[string]string{"name": "tee"})
	w := httptest.NewRecorder()

	if _, ok := pkgvalidator.ValidateForm[formReq](w, r, 1<<20); ok {
		t.Fatal("expected ok=false for missing color_id")
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "color_id") {
		t.Errorf("expected color_id in body, got %s", w.Body.String())
	}
}

func TestValidateForm_notMultipart(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{}"))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	if _, ok := pkgvalidator.ValidateForm[formReq](w, r, 1<<20); ok {
		t.Fatal("expected ok=false")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestValidateForm_tooLarge(t *testing.T) {
	r := multipartRequest(t, map[string]string{"name": strings.Repeat("x", 4096), "color_id": "1"})
	w := httptest.NewRecorder()
	r.Body = http.MaxBytesReader(w, r.Body, 512)

	if _, ok := pkgvalidator.ValidateForm[formReq](w, r, 1<<20); ok {
		t.Fatal("expected ok=false")
	}
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413, got %d", w.Code)
	}
}

type pageQuery struct {
	Page int    `form:"page" validate:"gte=0"`
	Sort string `form:"sort" validate:"omitempty,oneof=id -id"`
}

func TestValidateQuery(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?page=2&sort=-id", nil)
	w := httptest.NewRecorder()

	q, ok := pkgvalidator.ValidateQuery[pageQuery](w, r)
	if !ok {
		t.Fatalf("expected ok, got %s", w.Body.String())
	}
	if q.Page != 2 || q.Sort != "-id" {
		t.Errorf("unexpected query: %+v", q)
	}

	r = httptest.NewRequest(http.MethodGet, "/?sort=created_at", nil)
	w = httptest.NewRecorder()
	if _, ok := pkgvalidator.ValidateQuery[pageQuery](w, r); ok {
		t.Fatal("expected ok=false for unknown sort")
	}
	if !strings.Contains(w.Body.String(), "must be one of") {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}
