package handlers

import (
	"net/http"

	"github.com/ghuser/assetforge/pkg/auth"
	"github.com/ghuser/assetforge/pkg/errhttp"
	"github.com/ghuser/assetforge/pkg/httpx"
	pkgvalidator "github.com/ghuser/assetforge/pkg/validator"
	appsvcs "github.com/ghuser/assetforge/services/registry/application/services"
)

// DepositRequest is the request body for POST /wallet/deposits.
type DepositRequest struct {
	Amount uint64 `json:"amount" validate:"required,gte=1" example:"100"`
} // @name DepositRequest

// BalanceResponse is returned by the wallet endpoints.
type BalanceResponse struct {
	Balance uint64 `json:"balance" example:"100"`
} // @name BalanceResponse

// WalletHandlers serves the settlement wallet endpoints.
type WalletHandlers struct {
	svc *appsvcs.Services
}

// NewWalletHandlers returns WalletHandlers backed by the given services.
func NewWalletHandlers(svc *appsvcs.Services) *WalletHandlers {
	return &WalletHandlers{svc: svc}
}

// Deposit credits the calling principal's settlement balance.
//
//	@Summary		Deposit funds
//	@Description	Credits the caller's settlement balance
//	@Tags			wallet
//	@Accept			json
//	@Produce		json
//	@Param			request	body		DepositRequest	true	"Deposit request"
//	@Success		200		{object}	BalanceResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/wallet/deposits [post]
func (h *WalletHandlers) Deposit(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[DepositRequest](w, r)
	if !ok {
		return
	}

	if err := h.svc.Wallet.Credit(principal, req.Amount); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, BalanceResponse{Balance: h.svc.Wallet.Balance(principal)})
}

// Balance returns the calling principal's settlement balance.
//
//	@Summary		Get balance
//	@Description	Returns the caller's settlement balance
//	@Tags			wallet
//	@Produce		json
//	@Success		200	{object}	BalanceResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/wallet/balance [get]
func (h *WalletHandlers) Balance(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, BalanceResponse{Balance: h.svc.Wallet.Balance(principal)})
}
