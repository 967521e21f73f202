package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/assetforge/pkg/auth"
	"github.com/ghuser/assetforge/pkg/errhttp"
	"github.com/ghuser/assetforge/pkg/httpx"
	pkgvalidator "github.com/ghuser/assetforge/pkg/validator"
	appsvcs "github.com/ghuser/assetforge/services/registry/application/services"
)

// BurnRequestRequest is the request body for POST /burn-requests.
type BurnRequestRequest struct {
	Owner  string `json:"owner"   validate:"required,uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	ItemID string `json:"item_id" validate:"required,uuid" example:"123e4567-e89b-12d3-a456-426614174000"`
} // @name BurnRequestRequest

// BurnItemRequest is the request body for POST /burn-acceptances and POST /burns.
type BurnItemRequest struct {
	ItemID string `json:"item_id" validate:"required,uuid" example:"123e4567-e89b-12d3-a456-426614174000"`
} // @name BurnItemRequest

// BurnResponse is returned by all three burn workflow endpoints.
type BurnResponse struct {
	Success bool `json:"success" example:"true"`
} // @name BurnResponse

// BurnHandlers serves the request -> accept -> burn consent workflow.
type BurnHandlers struct {
	svc *appsvcs.Services
}

// NewBurnHandlers returns BurnHandlers backed by the given services.
func NewBurnHandlers(svc *appsvcs.Services) *BurnHandlers {
	return &BurnHandlers{svc: svc}
}

// Request records the calling issuer's burn request against a holder's item.
//
//	@Summary		Request burn
//	@Description	Issuer requests destruction of one unit of a holder's item
//	@Tags			burn
//	@Accept			json
//	@Produce		json
//	@Param			request	body		BurnRequestRequest	true	"Burn request"
//	@Success		200		{object}	BurnResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/burn-requests [post]
func (h *BurnHandlers) Request(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[BurnRequestRequest](w, r)
	if !ok {
		return
	}

	if err := h.svc.Registry.RequestBurn(r.Context(), principal, uuid.MustParse(req.Owner), uuid.MustParse(req.ItemID)); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, BurnResponse{Success: true})
}

// Accept records the calling holder's consent to a pending burn request.
//
//	@Summary		Accept burn
//	@Description	Holder consents to the pending burn request for an item
//	@Tags			burn
//	@Accept			json
//	@Produce		json
//	@Param			request	body		BurnItemRequest	true	"Accept request"
//	@Success		200		{object}	BurnResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/burn-acceptances [post]
func (h *BurnHandlers) Accept(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[BurnItemRequest](w, r)
	if !ok {
		return
	}

	if err := h.svc.Registry.AcceptBurn(r.Context(), principal, uuid.MustParse(req.ItemID)); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, BurnResponse{Success: true})
}

// Burn destroys one unit of the accepted holding.
//
//	@Summary		Burn item
//	@Description	Issuer destroys one unit of a holding whose burn the holder accepted
//	@Tags			burn
//	@Accept			json
//	@Produce		json
//	@Param			request	body		BurnItemRequest	true	"Burn request"
//	@Success		200		{object}	BurnResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/burns [post]
func (h *BurnHandlers) Burn(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[BurnItemRequest](w, r)
	if !ok {
		return
	}

	if err := h.svc.Registry.Burn(r.Context(), principal, uuid.MustParse(req.ItemID)); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, BurnResponse{Success: true})
}
