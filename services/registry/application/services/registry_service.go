package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/assetforge/pkg/cache"
	"github.com/ghuser/assetforge/pkg/events"
	"github.com/ghuser/assetforge/pkg/logger"
	registrydomain "github.com/ghuser/assetforge/services/registry/domain"
	domainevents "github.com/ghuser/assetforge/services/registry/domain/events"
	"github.com/ghuser/assetforge/services/registry/domain/ledger"
	"github.com/ghuser/assetforge/services/registry/domain/models"
	domainsvcs "github.com/ghuser/assetforge/services/registry/domain/services"
)

// RegistryService orchestrates the ledger state machine and publishes domain
// events. Events are strictly commit-then-notify: the ledger mutation is
// final before anything is published, and a publish failure is logged but
// never rolls the mutation back (events are one-way observational
// notifications, not part of the transaction).
type RegistryService struct {
	ledger  *ledger.Ledger
	bus     *events.EventBus
	cache   *pkgcache.ListingCache
	consent *ConsentOrchestrator
	log     logger.Logger
}

// NewRegistryService returns a RegistryService wired with the given ledger,
// event bus, listing read-model cache, and burn consent orchestrator. Bus,
// cache, and consent may be nil (tests).
func NewRegistryService(l *ledger.Ledger, bus *events.EventBus, listingCache *pkgcache.ListingCache, consent *ConsentOrchestrator, log logger.Logger) *RegistryService {
	return &RegistryService{ledger: l, bus: bus, cache: listingCache, consent: consent, log: log}
}

// Issue validates and mints a holding for caller, then publishes an
// ItemIssuedEvent.
func (s *RegistryService) Issue(ctx context.Context, caller models.Principal, p ledger.IssueParams) (*models.Item, error) {
	if err := domainsvcs.ValidateIssue(p); err != nil {
		return nil, fmt.Errorf("%w: %w", registrydomain.ErrInvalidAsset, err)
	}

	item, err := s.ledger.Issue(caller, p)
	if err != nil {
		return nil, fmt.Errorf("issue item: %w", err)
	}

	s.publish(ctx, domainevents.TopicItemIssued, domainevents.ItemIssuedEvent{
		EventID:    uuid.New(),
		Version:    1,
		Issuer:     caller,
		ItemID:     item.ID,
		Name:       item.Name.String(),
		Qty:        item.Qty,
		OccurredAt: time.Now().UTC(),
	})
	return item, nil
}

// Length returns the size of caller's enumeration array.
func (s *RegistryService) Length(caller models.Principal) int {
	return s.ledger.Length(caller)
}

// HoldingAt is a single enumeration read: the record at the given position
// plus whether the caller currently lists it.
type HoldingAt struct {
	Item    *models.Item
	ForSale bool
}

// Get returns the holding at the given enumeration position.
func (s *RegistryService) Get(caller models.Principal, index int) (*HoldingAt, error) {
	item, forSale, err := s.ledger.Get(caller, index)
	if err != nil {
		return nil, err
	}
	return &HoldingAt{Item: item, ForSale: forSale}, nil
}

// List enumerates all of caller's live holdings.
func (s *RegistryService) List(caller models.Principal) ([]*HoldingAt, error) {
	n := s.ledger.Length(caller)
	out := make([]*HoldingAt, 0, n)
	for i := 0; i < n; i++ {
		h, err := s.Get(caller, i)
		if err != nil {
			// Concurrent removal shrank the enumeration mid-walk.
			if errors.Is(err, registrydomain.ErrIndexOutOfBounds) {
				break
			}
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}

// Sell sets caller's listing price for id (zero delists) and publishes an
// ItemListedEvent.
func (s *RegistryService) Sell(ctx context.Context, caller models.Principal, id models.ItemID, price uint64) error {
	if err := s.ledger.Sell(caller, id, price); err != nil {
		return fmt.Errorf("list item: %w", err)
	}

	item, err := s.ledger.Holding(caller, id)
	if err != nil {
		return fmt.Errorf("read listed item: %w", err)
	}

	s.publish(ctx, domainevents.TopicItemListed, domainevents.ItemListedEvent{
		EventID:    uuid.New(),
		Version:    1,
		Owner:      caller,
		ItemID:     id,
		Name:       item.Name.String(),
		Unit:       item.Unit,
		Price:      price,
		OccurredAt: time.Now().UTC(),
	})
	return nil
}

// Buy purchases qty units of owner's listed item for caller with the
// supplied payment, then publishes an ItemPurchasedEvent.
func (s *RegistryService) Buy(ctx context.Context, caller, owner models.Principal, id models.ItemID, qty, payment uint64) error {
	if err := s.ledger.Buy(ctx, caller, owner, id, qty, payment); err != nil {
		return fmt.Errorf("buy item: %w", err)
	}

	s.publish(ctx, domainevents.TopicItemPurchased, domainevents.ItemPurchasedEvent{
		EventID:    uuid.New(),
		Version:    1,
		Seller:     owner,
		Buyer:      caller,
		ItemID:     id,
		Qty:        qty,
		Payment:    payment,
		OccurredAt: time.Now().UTC(),
	})
	return nil
}

// RequestBurn records caller's burn request against owner's holding of id
// and publishes a BurnRequestedEvent.
func (s *RegistryService) RequestBurn(ctx context.Context, caller, owner models.Principal, id models.ItemID) error {
	if err := s.ledger.RequestBurn(caller, owner, id); err != nil {
		return fmt.Errorf("request burn: %w", err)
	}

	s.consent.RequestStarted(ctx, caller, owner, id)
	s.publish(ctx, domainevents.TopicBurnRequested, domainevents.BurnRequestedEvent{
		EventID:    uuid.New(),
		Version:    1,
		Issuer:     caller,
		Holder:     owner,
		ItemID:     id,
		OccurredAt: time.Now().UTC(),
	})
	return nil
}

// AcceptBurn records caller's consent to the pending burn request for id and
// publishes a BurnAcceptedEvent.
func (s *RegistryService) AcceptBurn(ctx context.Context, caller models.Principal, id models.ItemID) error {
	if _, err := s.ledger.AcceptBurn(caller, id); err != nil {
		return fmt.Errorf("accept burn: %w", err)
	}

	s.consent.Accepted(ctx, caller, id, caller)
	s.publish(ctx, domainevents.TopicBurnAccepted, domainevents.BurnAcceptedEvent{
		EventID:    uuid.New(),
		Version:    1,
		Holder:     caller,
		ItemID:     id,
		OccurredAt: time.Now().UTC(),
	})
	return nil
}

// Burn destroys one unit of the accepted holding and publishes an
// ItemBurnedEvent.
func (s *RegistryService) Burn(ctx context.Context, caller models.Principal, id models.ItemID) error {
	holder, _, err := s.ledger.Burn(caller, id)
	if err != nil {
		return fmt.Errorf("burn item: %w", err)
	}

	s.publish(ctx, domainevents.TopicItemBurned, domainevents.ItemBurnedEvent{
		EventID:    uuid.New(),
		Version:    1,
		Issuer:     caller,
		Holder:     holder,
		ItemID:     id,
		OccurredAt: time.Now().UTC(),
	})
	return nil
}

// PendingBurnRequest returns the issuer with a pending burn request against
// holder's item, or uuid.Nil.
func (s *RegistryService) PendingBurnRequest(holder models.Principal, id models.ItemID) models.Principal {
	return s.ledger.PendingBurnRequest(holder, id)
}

// AcceptedBurnBy returns the holder that accepted a burn for issuer's item,
// or uuid.Nil.
func (s *RegistryService) AcceptedBurnBy(issuer models.Principal, id models.ItemID) models.Principal {
	return s.ledger.AcceptedBurnBy(issuer, id)
}

// Listing retrieves a marketplace listing using a read-through cache:
//  1. Check the Redis read model first.
//  2. On cache miss (or cache error), read the ledger directly.
//  3. Asynchronously warm the cache with the ledger result.
func (s *RegistryService) Listing(ctx context.Context, owner models.Principal, id models.ItemID) (*pkgcache.CachedListing, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, owner, id); err == nil {
			return cached, nil
		} else if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "listing cache read failed", "error", err)
		}
	}

	price := s.ledger.ListingPrice(owner, id)
	if price == 0 {
		return nil, registrydomain.ErrNotForSale
	}
	item, err := s.ledger.Holding(owner, id)
	if err != nil {
		return nil, fmt.Errorf("read listing: %w", err)
	}

	listing := &pkgcache.CachedListing{
		Owner:     owner,
		ItemID:    id,
		Name:      item.Name.String(),
		Unit:      item.Unit,
		Price:     price,
		UpdatedAt: time.Now().UTC(),
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), listing)
		}()
	}
	return listing, nil
}

// publish marshals event and sends it to topic; failures are logged only.
func (s *RegistryService) publish(ctx context.Context, topic string, event any) {
	if s.bus == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.log.ErrorContext(ctx, "marshal event failed", "topic", topic, "error", err)
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_version", "1")
	if err := s.bus.Publish(ctx, topic, msg); err != nil {
		s.log.ErrorContext(ctx, "publish event failed", "topic", topic, "error", err)
	}
}
