package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	temporalworker "go.temporal.io/sdk/worker"

	"github.com/ghuser/assetforge/pkg/app"
	"github.com/ghuser/assetforge/pkg/cache"
	"github.com/ghuser/assetforge/pkg/config"
	"github.com/ghuser/assetforge/pkg/database"
	"github.com/ghuser/assetforge/pkg/events"
	"github.com/ghuser/assetforge/pkg/logger"
	"github.com/ghuser/assetforge/pkg/telemetry"
	pkgworkflows "github.com/ghuser/assetforge/pkg/workflows"
	registryEvents "github.com/ghuser/assetforge/services/registry/domain/events"
	"github.com/ghuser/assetforge/services/registry/infrastructure/persistence/postgres"
	registryWorkflows "github.com/ghuser/assetforge/services/registry/workflows"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	temporalClient, err := pkgworkflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
	if err != nil {
		log.Warn("temporal unavailable, continuing without burn consent timeouts", "error", err)
		temporalClient = nil
	} else {
		defer temporalClient.Close()
	}

	appConfig := &app.Application{
		Config:         cfg,
		Db:             pool,
		Logger:         log,
		EventBus:       eventBus,
		Redis:          redisClient,
		TemporalClient: temporalClient,
	}

	audit := postgres.NewAuditRepository(pool)

	if err := registerSubscribers(ctx, appConfig, audit); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	var tw temporalworker.Worker
	if temporalClient != nil {
		tw = temporalworker.New(temporalClient.Client, cfg.TemporalTaskQueue, temporalworker.Options{})
		tw.RegisterWorkflow(registryWorkflows.BurnConsentWorkflow)
		tw.RegisterActivity(registryWorkflows.NewActivities(audit, log))
		if err := tw.Start(); err != nil {
			log.Error("failed to start temporal worker", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		log.Info("temporal worker started", "task_queue", cfg.TemporalTaskQueue)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	if tw != nil {
		tw.Stop()
	}

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// auditedTopics are the domain events persisted to the audit trail.
var auditedTopics = []string{
	registryEvents.TopicItemIssued,
	registryEvents.TopicItemListed,
	registryEvents.TopicItemPurchased,
	registryEvents.TopicBurnRequested,
	registryEvents.TopicBurnAccepted,
	registryEvents.TopicItemBurned,
}

// registerSubscribers wires all domain event handlers. Every topic is
// recorded to the audit trail; listed events additionally warm the listing
// read-model cache.
func registerSubscribers(ctx context.Context, a *app.Application, audit *postgres.AuditRepository) error {
	for _, topic := range auditedTopics {
		handler := handleAudit(a, audit, topic)
		if topic == registryEvents.TopicItemListed {
			handler = chainHandlers(handler, handleItemListed(a))
		}

		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error",
					"topic", topic,
					"error", err,
				)
			}
		}(topic)
	}

	a.Logger.Info("event subscribers registered", "topics", auditedTopics)
	return nil
}

// chainHandlers runs handlers in order; the first failure aborts the chain so
// the EventBus retries the whole message.
func chainHandlers(handlers ...func(context.Context, *message.Message) error) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		for _, h := range handlers {
			if err := h(ctx, msg); err != nil {
				return err
			}
		}
		return nil
	}
}

// handleAudit appends one event to the audit trail. Handlers must be
// idempotent — EventBus retries up to 3× on failure, and Record deduplicates
// on event_id.
func handleAudit(a *app.Application, audit *postgres.AuditRepository, topic string) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var env struct {
			EventID    string    `json:"event_id"`
			OccurredAt time.Time `json:"occurred_at"`
		}
		if err := json.Unmarshal(msg.Payload, &env); err != nil {
			return err
		}
		eventID, err := auditEventID(env.EventID, msg.UUID)
		if err != nil {
			return err
		}

		if err := audit.Record(ctx, &postgres.AuditEvent{
			EventID:    eventID,
			Topic:      topic,
			Payload:    json.RawMessage(msg.Payload),
			OccurredAt: env.OccurredAt,
		}); err != nil {
			return err
		}

		a.Logger.InfoContext(ctx, "audit event recorded", "topic", topic, "event_id", eventID)
		return nil
	}
}

// auditEventID prefers the payload's event_id; older producers omitted it,
// so fall back to the Watermill message id.
func auditEventID(payloadID, messageID string) (uuid.UUID, error) {
	if payloadID != "" {
		return uuid.Parse(payloadID)
	}
	return uuid.Parse(messageID)
}

// handleItemListed warms the Redis listing read model so marketplace reads
// are served from cache. A zero price delists, so the entry is dropped.
func handleItemListed(a *app.Application) func(context.Context, *message.Message) error {
	listingCache := cache.NewListingCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt registryEvents.ItemListedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		var err error
		if evt.Price == 0 {
			err = listingCache.Delete(ctx, evt.Owner, evt.ItemID)
		} else {
			err = listingCache.Set(ctx, &cache.CachedListing{
				Owner:     evt.Owner,
				ItemID:    evt.ItemID,
				Name:      evt.Name,
				Unit:      evt.Unit,
				Price:     evt.Price,
				UpdatedAt: evt.OccurredAt,
			})
		}
		if err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "listing cache warm failed",
				"item_id", evt.ItemID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "listing cache warmed",
				"item_id", evt.ItemID, "owner", evt.Owner, "price", evt.Price)
		}

		return nil
	}
}
