// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/assetforge/pkg/auth"
	"github.com/ghuser/assetforge/pkg/httpx"
	registrydomain "github.com/ghuser/assetforge/services/registry/domain"
	"github.com/ghuser/assetforge/services/registry/infrastructure/wallet"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, auth.ErrPrincipalNotFound):
		return http.StatusUnauthorized // 401
	case errors.Is(err, registrydomain.ErrInsufficientPayment),
		errors.Is(err, wallet.ErrInsufficientFunds):
		return http.StatusPaymentRequired // 402
	case errors.Is(err, registrydomain.ErrUnauthorizedReseller),
		errors.Is(err, registrydomain.ErrUnauthorizedIssuer),
		errors.Is(err, registrydomain.ErrUnauthorizedBurner),
		errors.Is(err, registrydomain.ErrUnauthorizedAdmin):
		return http.StatusForbidden // 403
	case errors.Is(err, registrydomain.ErrItemNotFound),
		errors.Is(err, registrydomain.ErrAssetNotFound),
		errors.Is(err, registrydomain.ErrIndexOutOfBounds):
		return http.StatusNotFound // 404
	case errors.Is(err, registrydomain.ErrNotForSale),
		errors.Is(err, registrydomain.ErrInsufficientQuantity),
		errors.Is(err, registrydomain.ErrBurnNotAccepted):
		return http.StatusConflict // 409
	case errors.Is(err, registrydomain.ErrItemExpired):
		return http.StatusGone // 410
	case errors.Is(err, registrydomain.ErrInvalidValidity),
		errors.Is(err, registrydomain.ErrInvalidAsset):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}
