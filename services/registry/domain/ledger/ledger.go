// Package ledger implements the registry's holdings, marketplace, and burn
// state machine. Every public operation executes atomically under a single
// mutex, so calls observe a global total order: effects either fully apply
// or fully revert, and no two calls interleave.
//
// Holdings are enumerated per principal through a dense index array that
// supports O(1) swap-removal. The invariant maintained at all times is that
// every enumerated item's DenseIndex equals its actual position in its
// holder's enumeration array. Enumeration order is not meaningful.
package ledger

import (
	"context"
	"sync"
	"time"

	domain "github.com/ghuser/assetforge/services/registry/domain"
	"github.com/ghuser/assetforge/services/registry/domain/models"
)

// PaymentSettler moves payment value between principals during Buy. It is
// the one external-effect boundary of the ledger: it is invoked last, after
// all holdings mutations, and a settlement error rolls the whole call back.
type PaymentSettler interface {
	Transfer(ctx context.Context, from, to models.Principal, amount uint64) error
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the time source used for validity checks.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// Ledger is the shared registry state: per-principal holdings with dense
// enumeration, per-(principal,item) listings, and the burn consent markers.
type Ledger struct {
	mu sync.Mutex

	// items is the underlying record store. Records are never deleted:
	// a holding whose quantity reaches zero is removed from the
	// enumeration only and survives here as a stale zero-quantity entry.
	items map[models.Principal]map[models.ItemID]*models.Item

	// enum is the dense per-principal enumeration of live holdings.
	enum map[models.Principal][]models.ItemID

	// listings maps (owner, item) to a listing price; absence or zero
	// means not for sale.
	listings map[models.Principal]map[models.ItemID]uint64

	// burnRequests maps (holder, item) to the issuer with a pending
	// burn request.
	burnRequests map[models.Principal]map[models.ItemID]models.Principal

	// burnAccepts maps (issuer, item) to the holder that accepted a burn.
	burnAccepts map[models.Principal]map[models.ItemID]models.Principal

	settler PaymentSettler
	now     func() time.Time
}

// New returns an empty Ledger that settles payments through settler.
func New(settler PaymentSettler, opts ...Option) *Ledger {
	l := &Ledger{
		items:        make(map[models.Principal]map[models.ItemID]*models.Item),
		enum:         make(map[models.Principal][]models.ItemID),
		listings:     make(map[models.Principal]map[models.ItemID]uint64),
		burnRequests: make(map[models.Principal]map[models.ItemID]models.Principal),
		burnAccepts:  make(map[models.Principal]map[models.ItemID]models.Principal),
		settler:      settler,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// IssueParams carries the caller-supplied fields of a new holding.
type IssueParams struct {
	Name     models.AssetName
	Value    uint64
	Unit     string
	Qty      uint64
	Validity time.Time
	Resale   bool
}

// Issue mints a holding for caller. The item id is derived from
// (name, caller), so re-issuing the same name silently overwrites the
// existing record — no error is raised on overwrite. A record that is still
// enumerated keeps its dense index; a tombstoned or unknown id gets a fresh
// slot at the end of the caller's enumeration.
func (l *Ledger) Issue(caller models.Principal, p IssueParams) (*models.Item, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !p.Validity.After(l.now()) {
		return nil, domain.ErrInvalidValidity
	}

	id := models.NewItemID(caller, p.Name)
	item := &models.Item{
		ID:       id,
		Issuer:   caller,
		Name:     p.Name,
		Value:    p.Value,
		Unit:     p.Unit,
		Qty:      p.Qty,
		Validity: p.Validity,
		Resale:   p.Resale,
	}

	if prev, ok := l.items[caller][id]; ok && prev.Qty > 0 {
		item.DenseIndex = prev.DenseIndex
	} else {
		item.DenseIndex = len(l.enum[caller])
		l.enum[caller] = append(l.enum[caller], id)
	}
	l.holdingsOf(caller)[id] = item

	return item.Clone(), nil
}

// Length returns the size of caller's enumeration array.
func (l *Ledger) Length(caller models.Principal) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.enum[caller])
}

// Get returns the holding at the given enumeration position plus whether the
// caller currently lists it for sale. The returned record is a copy.
func (l *Ledger) Get(caller models.Principal, index int) (*models.Item, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	list := l.enum[caller]
	if index < 0 || index >= len(list) {
		return nil, false, domain.ErrIndexOutOfBounds
	}
	id := list[index]
	item := l.items[caller][id]
	forSale := l.listings[caller][id] != 0
	return item.Clone(), forSale, nil
}

// Holding returns a copy of caller's record for id, enumerated or not.
// Returns ErrItemNotFound when no record exists.
func (l *Ledger) Holding(caller models.Principal, id models.ItemID) (*models.Item, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	item, ok := l.items[caller][id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return item.Clone(), nil
}

// pop removes an exhausted holding from owner's enumeration in O(1): the id
// at the last position is swapped into the vacated slot (updating that
// moved item's stored DenseIndex) and the array shrinks by one. The record
// itself stays in the store.
func (l *Ledger) pop(owner models.Principal, item *models.Item) {
	list := l.enum[owner]
	last := len(list) - 1
	if item.DenseIndex != last {
		movedID := list[last]
		list[item.DenseIndex] = movedID
		l.items[owner][movedID].DenseIndex = item.DenseIndex
	}
	l.enum[owner] = list[:last]
}

// holdingsOf returns owner's record map, allocating it on first use.
func (l *Ledger) holdingsOf(owner models.Principal) map[models.ItemID]*models.Item {
	m, ok := l.items[owner]
	if !ok {
		m = make(map[models.ItemID]*models.Item)
		l.items[owner] = m
	}
	return m
}
