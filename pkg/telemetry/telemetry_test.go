package telemetry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/youbeemuhwan/commercial/pkg/config"
	"github.com/youbeemuhwan/commercial/pkg/logger"
	"github.com/youbeemuhwan/commercial/pkg/storage"
)

func baseConfig() *config.Config {
	return &config.Config{
		ServiceName:     "catalog-test",
		ServiceVersion:  "test",
		Environment:     config.EnvTesting,
		OtelSampleRatio: 1,
	}
}

func setup(t *testing.T) *Telemetry {
	t.Helper()
	tel, err := Setup(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	t.Cleanup(func() {
		if err := tel.Shutdown(context.Background()); err != nil {
			t.Errorf("shutdown: %v", err)
		}
	})
	return tel
}

func scrape(t *testing.T, tel *Telemetry) string {
	t.Helper()
	rr := httptest.NewRecorder()
	tel.MetricsHandler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	if rr.Code != http.StatusOK {
		t.Fatalf("scrape: status %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.Contains(ct, "text/plain") {
		t.Errorf("expected text/plain content-type, got %q", ct)
	}
	return rr.Body.String()
}

func TestSetup_RepeatableWithoutOtelEndpoint(t *testing.T) {
	// Each Setup owns its registry, so a second call must not collide.
	first := setup(t)
	second := setup(t)

	if !strings.Contains(scrape(t, first), "go_goroutines") {
		t.Error("runtime collector missing from first registry")
	}
	if !strings.Contains(scrape(t, second), "go_goroutines") {
		t.Error("runtime collector missing from second registry")
	}
}

func TestSetup_ExportsStorageMetrics(t *testing.T) {
	tel := setup(t)

	fs, err := storage.New(t.TempDir(), logger.Nop())
	if err != nil {
		t.Fatalf("storage: %v", err)
	}
	if _, err := fs.Store(context.Background(), "a.png", strings.NewReader("png")); err != nil {
		t.Fatalf("store: %v", err)
	}

	if body := scrape(t, tel); !strings.Contains(body, "storage_files_written") {
		t.Errorf("storage counter missing from /metrics output")
	}
}

func TestSampler(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{0, "AlwaysOnSampler"},
		{1, "AlwaysOnSampler"},
		{0.25, "TraceIDRatioBased{0.25}"},
	}
	for _, tt := range tests {
		if got := sampler(tt.ratio).Description(); !strings.Contains(got, tt.want) {
			t.Errorf("sampler(%v) = %q, want it to contain %q", tt.ratio, got, tt.want)
		}
	}
}

func TestSetupSentry_NoDSN(t *testing.T) {
	if err := SetupSentry(baseConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Without an initialised client this must not panic.
	CaptureError(context.Background(), errors.New("boom"))
}
