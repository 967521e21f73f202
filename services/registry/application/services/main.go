package services

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/ghuser/assetforge/pkg/app"
	"github.com/ghuser/assetforge/pkg/cache"
	"github.com/ghuser/assetforge/services/registry/domain/ledger"
	"github.com/ghuser/assetforge/services/registry/infrastructure/persistence/postgres"
	"github.com/ghuser/assetforge/services/registry/infrastructure/wallet"
)

// AuditTrail reads the persisted event history of an item, newest first.
type AuditTrail interface {
	FindByItem(ctx context.Context, itemID uuid.UUID, limit int) ([]*postgres.AuditEvent, error)
}

// Services is the application-layer service container for this bounded context.
// It wires the ledger state machine with its infrastructure implementations.
type Services struct {
	Registry *RegistryService
	Wallet   *wallet.Wallet
	Gate     *ledger.AccessGate
	Audit    AuditTrail // nil when the process runs without a database
}

// New wires all registry application services with infrastructure from the
// Application container. The wallet settles payments inside the ledger's buy
// transaction; the access gate starts owned by the configured admin.
func New(a *app.Application) *Services {
	w := wallet.New()
	l := ledger.New(w)

	admin, err := uuid.Parse(a.Config.AdminPrincipal)
	if err != nil {
		slog.Error("invalid ADMIN_PRINCIPAL", "error", err)
		os.Exit(1)
	}

	var listingCache *cache.ListingCache
	if a.Redis != nil {
		listingCache = cache.NewListingCache(a.Redis)
	}

	var consent *ConsentOrchestrator
	if a.TemporalClient != nil {
		consent = NewConsentOrchestrator(a.TemporalClient, a.Config.TemporalTaskQueue, a.Config.BurnConsentTimeout, a.Logger)
	}

	var audit AuditTrail
	if a.Db != nil {
		audit = postgres.NewAuditRepository(a.Db)
	}

	return &Services{
		Registry: NewRegistryService(l, a.EventBus, listingCache, consent, a.Logger),
		Wallet:   w,
		Gate:     ledger.NewAccessGate(admin),
		Audit:    audit,
	}
}
