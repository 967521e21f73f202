package domain

import "errors"

// Sentinel errors for the registry domain. Use errors.Is() to check these.
// Every failure is terminal for the call: the ledger discards all staged
// effects atomically before returning one of these.
var (
	// ErrInvalidValidity indicates issue was called with a validity deadline
	// that is not strictly in the future.
	ErrInvalidValidity = errors.New("validity deadline must be in the future")

	// ErrInvalidAsset indicates the asset definition violates domain
	// constraints (name or unit rules).
	ErrInvalidAsset = errors.New("invalid asset definition")

	// ErrIndexOutOfBounds indicates get was called with an enumeration index
	// beyond the caller's live range.
	ErrIndexOutOfBounds = errors.New("enumeration index out of bounds")

	// ErrItemNotFound indicates the caller holds no item with the given id.
	ErrItemNotFound = errors.New("item not found")

	// ErrUnauthorizedReseller indicates a non-issuer tried to list an item
	// whose resale flag is off.
	ErrUnauthorizedReseller = errors.New("only the issuer may list this item")

	// ErrItemExpired indicates the item is past its validity deadline.
	ErrItemExpired = errors.New("item past its validity deadline")

	// ErrAssetNotFound indicates the named owner holds no item with the
	// given id.
	ErrAssetNotFound = errors.New("asset not found for owner")

	// ErrNotForSale indicates the owner has no nonzero listing for the item.
	ErrNotForSale = errors.New("item is not listed for sale")

	// ErrInsufficientQuantity indicates the seller holds less than the
	// requested quantity.
	ErrInsufficientQuantity = errors.New("seller holds insufficient quantity")

	// ErrInsufficientPayment indicates the supplied payment does not cover
	// price * quantity (or the multiplication overflows).
	ErrInsufficientPayment = errors.New("payment does not cover price")

	// ErrUnauthorizedIssuer indicates a burn request from a principal that
	// did not issue the item.
	ErrUnauthorizedIssuer = errors.New("only the issuer may request a burn")

	// ErrBurnNotAccepted indicates burn was called with no accepted consent
	// recorded for the caller and item.
	ErrBurnNotAccepted = errors.New("burn has not been accepted by the holder")

	// ErrUnauthorizedBurner indicates the caller is not the issuer recorded
	// on the item being burned.
	ErrUnauthorizedBurner = errors.New("caller is not the item's issuer")

	// ErrUnauthorizedAdmin indicates an admin-gated call from a principal
	// that is not the current admin.
	ErrUnauthorizedAdmin = errors.New("caller is not the current admin")
)
