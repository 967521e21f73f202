package models

import (
	"time"

	"github.com/google/uuid"
)

// Principal is an account identity that issues, holds, or trades items.
// uuid.Nil is the zero principal and never identifies a real account.
type Principal = uuid.UUID

// ItemID identifies an asset class. It is a pure function of (name, issuer):
// two issuances of the same name by the same issuer always collide into the
// same id.
type ItemID = uuid.UUID

// NewItemID derives the deterministic id for an asset name minted by issuer.
func NewItemID(issuer Principal, name AssetName) ItemID {
	return uuid.NewSHA1(issuer, []byte(name))
}

// Item is a quantity of a named asset class held by one principal.
// Qty is the only field whose mutation drives the item lifecycle.
type Item struct {
	ID       ItemID
	Issuer   Principal
	Name     AssetName
	Value    uint64 // unit price metric, informational
	Unit     string // denomination label
	Qty      uint64
	Validity time.Time
	Resale   bool // when false only the issuer may list the item
	// DenseIndex is this item's current position in its holder's
	// enumeration array. Invariant: enum[DenseIndex] == ID for every
	// enumerated item.
	DenseIndex int
}

// Expired reports whether the item's validity deadline has passed at now.
func (i *Item) Expired(now time.Time) bool {
	return !i.Validity.After(now)
}

// Clone returns a deep copy, used for snapshots and read results so callers
// never alias ledger-internal state.
func (i *Item) Clone() *Item {
	c := *i
	return &c
}
