package ledger

import (
	"context"
	"fmt"
	"math"

	domain "github.com/ghuser/assetforge/services/registry/domain"
	"github.com/ghuser/assetforge/services/registry/domain/models"
)

// Sell sets caller's listing price for id, overwriting any prior listing.
// Price zero delists the item. The caller must hold a record for id, must be
// the issuer when the item's resale flag is off, and the item must not be
// past its validity deadline.
func (l *Ledger) Sell(caller models.Principal, id models.ItemID, price uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	item, ok := l.items[caller][id]
	if !ok {
		return domain.ErrItemNotFound
	}
	if !item.Resale && caller != item.Issuer {
		return domain.ErrUnauthorizedReseller
	}
	if item.Expired(l.now()) {
		return domain.ErrItemExpired
	}

	if price == 0 {
		delete(l.listings[caller], id)
		return nil
	}
	m, ok := l.listings[caller]
	if !ok {
		m = make(map[models.ItemID]uint64)
		l.listings[caller] = m
	}
	m[id] = price
	return nil
}

// ListingPrice returns owner's current listing price for id; zero means the
// item is not for sale.
func (l *Ledger) ListingPrice(owner models.Principal, id models.ItemID) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.listings[owner][id]
}

// Buy transfers qty units of owner's listed item to buyer and settles the
// full payment amount to the owner. All checks precede any mutation; the
// settlement call is the terminal step, and a settlement error restores
// every staged mutation before returning, so quantity never moves without a
// successful payment and payment is never taken without the quantity moving.
func (l *Ledger) Buy(ctx context.Context, buyer, owner models.Principal, id models.ItemID, qty, payment uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	item, ok := l.items[owner][id]
	if !ok {
		return domain.ErrAssetNotFound
	}
	price := l.listings[owner][id]
	if price == 0 {
		return domain.ErrNotForSale
	}
	if qty == 0 || item.Qty < qty {
		// A zero-quantity order is never servable. Rejecting it here also
		// covers a stale listing on an exhausted holding: the tombstone's
		// Qty is 0, so any positive order fails the bounds check and a
		// zero order fails outright, keeping pop away from records that
		// are no longer enumerated.
		return domain.ErrInsufficientQuantity
	}
	if price > math.MaxUint64/qty {
		// price*qty overflows; treat as uncoverable, never wrap around.
		return domain.ErrInsufficientPayment
	}
	if payment < price*qty {
		return domain.ErrInsufficientPayment
	}

	undo := l.stageTransfer(buyer, owner, id)

	item.Qty -= qty
	if item.Qty == 0 {
		l.pop(owner, item)
	}

	if held, ok := l.items[buyer][id]; ok && held.Qty > 0 {
		held.Qty += qty
	} else {
		acquired := &models.Item{
			ID:         id,
			Issuer:     item.Issuer,
			Name:       item.Name,
			Value:      item.Value,
			Unit:       item.Unit,
			Qty:        qty,
			Validity:   item.Validity,
			Resale:     item.Resale,
			DenseIndex: len(l.enum[buyer]),
		}
		l.holdingsOf(buyer)[id] = acquired
		l.enum[buyer] = append(l.enum[buyer], id)
	}

	if err := l.settler.Transfer(ctx, buyer, owner, payment); err != nil {
		undo()
		return fmt.Errorf("settle payment: %w", err)
	}
	return nil
}

// stageTransfer snapshots every piece of state a Buy may touch — both
// parties' records for id, the record that a swap-removal may relocate, and
// both enumeration arrays — and returns a closure restoring all of it.
func (l *Ledger) stageTransfer(buyer, owner models.Principal, id models.ItemID) func() {
	sellerEnum := append([]models.ItemID(nil), l.enum[owner]...)
	buyerEnum := append([]models.ItemID(nil), l.enum[buyer]...)

	seller := l.items[owner][id].Clone()

	var held *models.Item
	if cur, ok := l.items[buyer][id]; ok {
		held = cur.Clone()
	}

	// A swap-removal of the seller's entry rewrites the DenseIndex of
	// whichever item sits last in the seller's enumeration.
	var moved *models.Item
	var movedID models.ItemID
	if last := len(sellerEnum) - 1; last >= 0 && sellerEnum[last] != id {
		movedID = sellerEnum[last]
		moved = l.items[owner][movedID].Clone()
	}

	return func() {
		l.items[owner][id] = seller
		if held != nil {
			l.items[buyer][id] = held
		} else {
			delete(l.items[buyer], id)
		}
		if moved != nil {
			l.items[owner][movedID] = moved
		}
		l.enum[owner] = sellerEnum
		l.enum[buyer] = buyerEnum
	}
}
