package app

import (
	"github.com/ghuser/assetforge/pkg/cache"
	"github.com/ghuser/assetforge/pkg/config"
	"github.com/ghuser/assetforge/pkg/database"
	"github.com/ghuser/assetforge/pkg/events"
	"github.com/ghuser/assetforge/pkg/logger"
	"github.com/ghuser/assetforge/pkg/workflows"
	"github.com/gorilla/sessions"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service route-registration calls during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "issuing item", "item_id", id)
//	app.Logger.ErrorContext(ctx, "failed to settle", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config         *config.Config
	Db             *database.Database
	Logger         logger.Logger
	EventBus       *events.EventBus
	Redis          *cache.RedisClient
	TemporalClient *workflows.TemporalClient
	SessionStore   sessions.Store // Redis-backed session store; nil in worker process
}
