package telemetry

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/youbeemuhwan/commercial/pkg/config"
)

// SetupSentry initializes the Sentry SDK. No-ops if DSN is empty. Trace
// sampling follows OTEL_SAMPLE_RATIO.
func SetupSentry(cfg *config.Config) error {
	if cfg.SentryDSN == "" {
		return nil
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Environment,
		Release:          cfg.ServiceName + "@" + cfg.ServiceVersion,
		AttachStacktrace: true,
		TracesSampleRate: cfg.OtelSampleRatio,
	}); err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}
	return nil
}

// SentryFlush flushes buffered events before process exit.
func SentryFlush() {
	sentry.Flush(2 * time.Second)
}

// SentryMiddleware captures panics and binds a per-request hub to the context.
// It re-panics so the outer Recovery middleware still writes the 500.
func SentryMiddleware() func(http.Handler) http.Handler {
	return sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle
}

// CaptureError reports err on the request's hub, or the global hub outside a
// request. It is a no-op when Sentry is not initialised.
func CaptureError(ctx context.Context, err error) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.CaptureException(err)
}
