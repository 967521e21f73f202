package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/assetforge/pkg/auth"
	"github.com/ghuser/assetforge/pkg/errhttp"
	"github.com/ghuser/assetforge/pkg/httpx"
	pkgvalidator "github.com/ghuser/assetforge/pkg/validator"
	appsvcs "github.com/ghuser/assetforge/services/registry/application/services"
)

// SellItemRequest is the request body for PUT /items/{id}/listing.
// Price zero delists the item.
type SellItemRequest struct {
	Price uint64 `json:"price" example:"5"`
} // @name SellItemRequest

// SellItemResponse is returned on a successful listing change.
type SellItemResponse struct {
	Success bool   `json:"success" example:"true"`
	Price   uint64 `json:"price"   example:"5"`
} // @name SellItemResponse

// PutListingHandler handles PUT /items/{id}/listing requests.
type PutListingHandler struct {
	svc *appsvcs.Services
}

// NewPutListingHandler returns a PutListingHandler backed by the given services.
func NewPutListingHandler(svc *appsvcs.Services) *PutListingHandler {
	return &PutListingHandler{svc: svc}
}

// Execute sets the caller's listing price for an item.
//
//	@Summary		List item for sale
//	@Description	Sets the caller's listing price; zero delists
//	@Tags			marketplace
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Item id"
//	@Param			request	body		SellItemRequest	true	"Listing request"
//	@Success		200		{object}	SellItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		410		{object}	ErrorResponse
//	@Router			/items/{id}/listing [put]
func (h *PutListingHandler) Execute(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "id must be a uuid")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[SellItemRequest](w, r)
	if !ok {
		return
	}

	if err := h.svc.Registry.Sell(r.Context(), principal, id, req.Price); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, SellItemResponse{Success: true, Price: req.Price})
}
