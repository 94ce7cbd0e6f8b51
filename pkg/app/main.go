package app

import (
	"github.com/gorilla/sessions"

	"github.com/youbeemuhwan/commercial/pkg/config"
	"github.com/youbeemuhwan/commercial/pkg/database"
	"github.com/youbeemuhwan/commercial/pkg/logger"
	"github.com/youbeemuhwan/commercial/pkg/redisconn"
	"github.com/youbeemuhwan/commercial/pkg/storage"
)

// Application holds shared infrastructure dependencies for all services.
// Pass it to each service's route registration during server start-up.
//
// Logging: app.Logger is backed by a trace-aware handler, so the context
// variants pick up trace_id, span_id and request_id automatically:
//
//	app.Logger.InfoContext(ctx, "item created", "item_id", id)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config       *config.Config
	Db           *database.Database
	Logger       logger.Logger
	Redis        *redisconn.Client
	SessionStore sessions.Store      // Redis-backed; nil when auth is disabled in tests
	Storage      *storage.Filesystem // uploaded image files
}
