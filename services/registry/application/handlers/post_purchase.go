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

// PurchaseRequest is the request body for POST /purchases. Payment is the
// value attached to the call; the full amount is forwarded to the seller.
type PurchaseRequest struct {
	Owner   string `json:"owner"   validate:"required,uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	ItemID  string `json:"item_id" validate:"required,uuid" example:"123e4567-e89b-12d3-a456-426614174000"`
	Qty     uint64 `json:"qty"     validate:"required,gte=1" example:"3"`
	Payment uint64 `json:"payment" validate:"required,gte=1" example:"15"`
} // @name PurchaseRequest

// PurchaseResponse is returned on a settled purchase.
type PurchaseResponse struct {
	Success bool   `json:"success" example:"true"`
	Qty     uint64 `json:"qty"     example:"3"`
	Payment uint64 `json:"payment" example:"15"`
} // @name PurchaseResponse

// PostPurchaseHandler handles POST /purchases requests.
type PostPurchaseHandler struct {
	svc *appsvcs.Services
}

// NewPostPurchaseHandler returns a PostPurchaseHandler backed by the given services.
func NewPostPurchaseHandler(svc *appsvcs.Services) *PostPurchaseHandler {
	return &PostPurchaseHandler{svc: svc}
}

// Execute purchases a listed item for the calling principal.
//
//	@Summary		Buy item
//	@Description	Transfers quantity from the seller's holding and settles the attached payment
//	@Tags			marketplace
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PurchaseRequest	true	"Purchase request"
//	@Success		200		{object}	PurchaseResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		402		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/purchases [post]
func (h *PostPurchaseHandler) Execute(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[PurchaseRequest](w, r)
	if !ok {
		return
	}
	owner := uuid.MustParse(req.Owner)
	itemID := uuid.MustParse(req.ItemID)

	if err := h.svc.Registry.Buy(r.Context(), principal, owner, itemID, req.Qty, req.Payment); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, PurchaseResponse{Success: true, Qty: req.Qty, Payment: req.Payment})
}
