package httpx

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/unrolled/secure"
)

const (
	defaultMaxBodyBytes   = 10 << 20 // 10 MB
	defaultRatePerMinute  = 100
	defaultRequestTimeout = 30 * time.Second
)

// contentSecurityPolicy allows same-origin images so the swagger UI and any
// same-origin page can render /api/images responses.
const contentSecurityPolicy = "default-src 'self'; img-src 'self' data:"

// ServerConfig holds the options for NewRouter.
type ServerConfig struct {
	ServiceName   string
	IsDevelopment bool
	// CORSAllowedOrigins is a comma-separated list of allowed origins.
	// Pass "*" (dev only) to allow all origins.
	CORSAllowedOrigins string
	// MaxBodyBytes caps every request body, multipart uploads included.
	MaxBodyBytes int64
	// RatePerMinute is the per-IP request budget.
	RatePerMinute int
	// RequestTimeout is the handler deadline.
	RequestTimeout time.Duration
}

func (c ServerConfig) withDefaults() ServerConfig {
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = defaultMaxBodyBytes
	}
	if c.RatePerMinute <= 0 {
		c.RatePerMinute = defaultRatePerMinute
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = defaultRequestTimeout
	}
	return c
}

// Middlewares are the process-specific handlers NewRouter installs around the
// built-in stack. Nil entries are skipped.
type Middlewares struct {
	Recovery func(http.Handler) http.Handler
	Sentry   func(http.Handler) http.Handler
	Tracing  func(http.Handler) http.Handler
	Logging  func(http.Handler) http.Handler
}

// NewRouter returns a chi.Mux with the standard middleware stack, outermost
// first: Recovery, Sentry, RequestID, Tracing, Logging, RealIP, rate limit,
// CORS, body limit, timeout, security headers.
//
// Recovery sits outside Sentry because Sentry re-panics after reporting.
func NewRouter(cfg ServerConfig, mw Middlewares) *chi.Mux {
	cfg = cfg.withDefaults()

	sec := secure.New(secure.Options{
		STSSeconds:            63072000,
		STSIncludeSubdomains:  true,
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: contentSecurityPolicy,
		PermissionsPolicy:     "geolocation=(), microphone=(), camera=(), usb=()",
		IsDevelopment:         cfg.IsDevelopment,
	})

	var stack []func(http.Handler) http.Handler
	add := func(m ...func(http.Handler) http.Handler) {
		for _, h := range m {
			if h != nil {
				stack = append(stack, h)
			}
		}
	}
	add(mw.Recovery, mw.Sentry, middleware.RequestID, mw.Tracing, mw.Logging)
	add(
		middleware.RealIP,
		httprate.LimitByIP(cfg.RatePerMinute, time.Minute),
		CORSMiddleware(cfg.CORSAllowedOrigins),
		RequestBodyLimit(cfg.MaxBodyBytes),
		middleware.Timeout(cfg.RequestTimeout),
		sec.Handler,
	)

	r := chi.NewRouter()
	r.Use(stack...)
	return r
}

// CORSMiddleware returns a CORS handler restricted to the given allowed origins.
// Credentials are allowed only for an explicit origin list, since the admin
// session travels in a cookie.
func CORSMiddleware(allowedOrigins string) func(http.Handler) http.Handler {
	origins := parseOrigins(allowedOrigins)
	wildcard := len(origins) == 1 && origins[0] == "*"
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id", "Range"},
		ExposedHeaders:   []string{"X-Request-Id", "Content-Length", "Content-Range"},
		AllowCredentials: !wildcard,
		MaxAge:           300,
	})
}

func parseOrigins(s string) []string {
	var out []string
	for p := range strings.SplitSeq(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// RequestBodyLimit caps the request body at maxBytes. Reads past the cap fail
// with *http.MaxBytesError, which handlers turn into 413.
func RequestBodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				JSONError(w, http.StatusRequestEntityTooLarge, "Request body too large")
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// NewServer returns an *http.Server. Read and write timeouts are sized for
// multipart image uploads and image downloads on slow links.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}
}
