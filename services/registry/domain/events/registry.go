package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics for registry domain events. Request/Accept/Burn form the
// audit trail of the burn consent workflow; the rest record issuance and
// marketplace activity. All events are one-way observational notifications —
// consumers never feed back into the ledger state machine.
const (
	TopicItemIssued    = "registry.item.issued"
	TopicItemListed    = "registry.item.listed"
	TopicItemPurchased = "registry.item.purchased"
	TopicBurnRequested = "registry.burn.requested"
	TopicBurnAccepted  = "registry.burn.accepted"
	TopicItemBurned    = "registry.item.burned"
)

// ItemIssuedEvent is published after a principal mints a new holding.
type ItemIssuedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	Issuer     uuid.UUID `json:"issuer"`
	ItemID     uuid.UUID `json:"item_id"`
	Name       string    `json:"name"`
	Qty        uint64    `json:"qty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ItemListedEvent is published after an owner sets a listing price.
// Price zero means the item was delisted.
type ItemListedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	Owner      uuid.UUID `json:"owner"`
	ItemID     uuid.UUID `json:"item_id"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	Price      uint64    `json:"price"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ItemPurchasedEvent is published after a settled buy.
type ItemPurchasedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	Seller     uuid.UUID `json:"seller"`
	Buyer      uuid.UUID `json:"buyer"`
	ItemID     uuid.UUID `json:"item_id"`
	Qty        uint64    `json:"qty"`
	Payment    uint64    `json:"payment"`
	OccurredAt time.Time `json:"occurred_at"`
}

// BurnRequestedEvent is published after an issuer requests destruction of
// one unit of a holder's item.
type BurnRequestedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	Issuer     uuid.UUID `json:"issuer"`
	Holder     uuid.UUID `json:"holder"`
	ItemID     uuid.UUID `json:"item_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// BurnAcceptedEvent is published after a holder consents to a pending burn.
type BurnAcceptedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	Holder     uuid.UUID `json:"holder"`
	ItemID     uuid.UUID `json:"item_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ItemBurnedEvent is published after an issuer destroys one unit of an
// accepted item.
type ItemBurnedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	Issuer     uuid.UUID `json:"issuer"`
	Holder     uuid.UUID `json:"holder"`
	ItemID     uuid.UUID `json:"item_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
