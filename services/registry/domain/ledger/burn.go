package ledger

import (
	domain "github.com/ghuser/assetforge/services/registry/domain"
	"github.com/ghuser/assetforge/services/registry/domain/models"
)

// Burn consent protocol, per (holder, item) pair:
//
//	NONE -> REQUESTED -> ACCEPTED -> burned (back to NONE)
//
// The issuer requests, the holder accepts, and only then may the issuer
// destroy exactly one unit. After a burn the pair is back at NONE, so a new
// request cycle can begin.

// RequestBurn records caller's pending burn request against owner's holding
// of id. Only the item's issuer may request, and the holding must be live.
func (l *Ledger) RequestBurn(caller, owner models.Principal, id models.ItemID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	item, ok := l.items[owner][id]
	if !ok || item.Qty == 0 {
		return domain.ErrAssetNotFound
	}
	if item.Issuer != caller {
		return domain.ErrUnauthorizedIssuer
	}

	m, ok := l.burnRequests[owner]
	if !ok {
		m = make(map[models.ItemID]models.Principal)
		l.burnRequests[owner] = m
	}
	m[id] = caller
	return nil
}

// AcceptBurn records caller's consent to the pending burn request for id and
// clears the request. The acceptance is keyed by the requesting issuer, and
// no check is made that a request actually existed: accepting with no
// pending request records the consent under the zero principal, where no
// authenticated issuer can ever reach it. Returns the requesting issuer.
func (l *Ledger) AcceptBurn(caller models.Principal, id models.ItemID) (models.Principal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	issuer := l.burnRequests[caller][id]

	m, ok := l.burnAccepts[issuer]
	if !ok {
		m = make(map[models.ItemID]models.Principal)
		l.burnAccepts[issuer] = m
	}
	m[id] = caller
	delete(l.burnRequests[caller], id)
	return issuer, nil
}

// Burn destroys exactly one unit of the holding whose burn the holder
// accepted for caller. The caller must have a recorded acceptance and must
// be the issuer recorded on the item. The acceptance marker is cleared, and
// an exhausted holding is swap-removed from the holder's enumeration.
// Returns the holder and whether the holding was removed.
func (l *Ledger) Burn(caller models.Principal, id models.ItemID) (models.Principal, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	holder := l.burnAccepts[caller][id]
	if holder == zeroPrincipal {
		return zeroPrincipal, false, domain.ErrBurnNotAccepted
	}

	item, ok := l.items[holder][id]
	if !ok || item.Issuer != caller {
		return zeroPrincipal, false, domain.ErrUnauthorizedBurner
	}
	if item.Qty == 0 {
		// The holding was emptied between accept and burn (e.g. sold
		// out). The acceptance stays recorded; nothing to destroy.
		return zeroPrincipal, false, domain.ErrAssetNotFound
	}

	item.Qty--
	delete(l.burnAccepts[caller], id)

	removed := false
	if item.Qty == 0 {
		l.pop(holder, item)
		removed = true
	}
	return holder, removed, nil
}

// PendingBurnRequest returns the issuer with a pending burn request against
// holder's item, or the zero principal when none exists.
func (l *Ledger) PendingBurnRequest(holder models.Principal, id models.ItemID) models.Principal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.burnRequests[holder][id]
}

// AcceptedBurnBy returns the holder that accepted a burn for issuer's item,
// or the zero principal when none exists.
func (l *Ledger) AcceptedBurnBy(issuer models.Principal, id models.ItemID) models.Principal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.burnAccepts[issuer][id]
}

// zeroPrincipal is the uuid zero value; it never identifies a real account.
var zeroPrincipal models.Principal
