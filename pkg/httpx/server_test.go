package httpx_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/youbeemuhwan/commercial/pkg/httpx"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestNewRouter_SecurityHeaders(t *testing.T) {
	r := httpx.NewRouter(httpx.ServerConfig{CORSAllowedOrigins: "*"}, httpx.Middlewares{})
	r.Get("/", okHandler)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	checks := map[string]string{
		"X-Content-Type-Options":  "nosniff",
		"X-Frame-Options":         "DENY",
		"Referrer-Policy":         "strict-origin-when-cross-origin",
		"Content-Security-Policy": "default-src 'self'; img-src 'self' data:",
	}
	for header, want := range checks {
		if got := rr.Header().Get(header); got != want {
			t.Errorf("%s: got %q, want %q", header, got, want)
		}
	}
}

func TestNewRouter_RunsMiddlewaresInOrder(t *testing.T) {
	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := httpx.NewRouter(httpx.ServerConfig{}, httpx.Middlewares{
		Recovery: mark("recovery"),
		Sentry:   mark("sentry"),
		Tracing:  mark("tracing"),
		Logging:  mark("logging"),
	})
	r.Get("/", okHandler)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	want := "recovery,sentry,tracing,logging"
	if got := strings.Join(order, ","); got != want {
		t.Errorf("order: got %s, want %s", got, want)
	}
}

func TestNewRouter_RateLimit(t *testing.T) {
	r := httpx.NewRouter(httpx.ServerConfig{RatePerMinute: 2, RequestTimeout: time.Second}, httpx.Middlewares{})
	r.Get("/", okHandler)

	var codes []int
	for range 3 {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		req.RemoteAddr = "203.0.113.7:4000"
		r.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("codes: got %v", codes)
	}
}

func TestCORSMiddleware_CredentialsOnlyForExplicitOrigins(t *testing.T) {
	tests := []struct {
		allowed   string
		wantCreds string
	}{
		{"*", ""},
		{"https://shop.example.com, https://admin.example.com", "true"},
	}

	for _, tt := range tests {
		t.Run(tt.allowed, func(t *testing.T) {
			h := httpx.CORSMiddleware(tt.allowed)(http.HandlerFunc(okHandler))
			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			req.Header.Set("Origin", "https://admin.example.com")
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			if got := rr.Header().Get("Access-Control-Allow-Credentials"); got != tt.wantCreds {
				t.Errorf("Allow-Credentials: got %q, want %q", got, tt.wantCreds)
			}
		})
	}
}

func TestRequestBodyLimit(t *testing.T) {
	const limit = 10

	tests := []struct {
		name          string
		body          string
		contentLength int64
		want          int
	}{
		{"within limit", "small", 5, http.StatusOK},
		{"declared too large", strings.Repeat("x", 20), 20, http.StatusRequestEntityTooLarge},
		{"streamed too large", strings.Repeat("x", 20), -1, http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if _, err := io.ReadAll(r.Body); err != nil {
					httpx.JSONError(w, http.StatusRequestEntityTooLarge, err.Error())
					return
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			req.ContentLength = tt.contentLength
			rr := httptest.NewRecorder()
			httpx.RequestBodyLimit(limit)(inner).ServeHTTP(rr, req)

			if rr.Code != tt.want {
				t.Errorf("status: got %d, want %d", rr.Code, tt.want)
			}
		})
	}
}

func TestNewServer_Timeouts(t *testing.T) {
	srv := httpx.NewServer(":0", http.NotFoundHandler())
	if srv.ReadHeaderTimeout == 0 || srv.ReadTimeout < 30*time.Second {
		t.Errorf("timeouts too tight for uploads: header=%s read=%s", srv.ReadHeaderTimeout, srv.ReadTimeout)
	}
}
