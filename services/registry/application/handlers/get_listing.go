package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/assetforge/pkg/auth"
	"github.com/ghuser/assetforge/pkg/errhttp"
	"github.com/ghuser/assetforge/pkg/httpx"
	appsvcs "github.com/ghuser/assetforge/services/registry/application/services"
)

// ListingResponse is the marketplace read model for one listing.
type ListingResponse struct {
	Owner     uuid.UUID `json:"owner"      example:"550e8400-e29b-41d4-a716-446655440000"`
	ItemID    uuid.UUID `json:"item_id"    example:"123e4567-e89b-12d3-a456-426614174000"`
	Name      string    `json:"name"       example:"gold"`
	Unit      string    `json:"unit"       example:"oz"`
	Price     uint64    `json:"price"      example:"5"`
	UpdatedAt time.Time `json:"updated_at" example:"2026-01-15T10:30:00Z"`
} // @name ListingResponse

// GetListingHandler handles GET /listings/{owner}/{id}.
type GetListingHandler struct {
	svc *appsvcs.Services
}

// NewGetListingHandler returns a GetListingHandler backed by the given services.
func NewGetListingHandler(svc *appsvcs.Services) *GetListingHandler {
	return &GetListingHandler{svc: svc}
}

// Execute returns one marketplace listing from the read-through cache.
//
//	@Summary		Get listing
//	@Description	Returns an owner's listing for an item; served from the Redis read model when warm
//	@Tags			marketplace
//	@Produce		json
//	@Param			owner	path		string	true	"Owner principal"
//	@Param			id		path		string	true	"Item id"
//	@Success		200		{object}	ListingResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/listings/{owner}/{id} [get]
func (h *GetListingHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if _, err := auth.PrincipalFromCtx(r.Context()); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	owner, err := uuid.Parse(chi.URLParam(r, "owner"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "owner must be a uuid")
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "id must be a uuid")
		return
	}

	listing, err := h.svc.Registry.Listing(r.Context(), owner, id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ListingResponse{
		Owner:     listing.Owner,
		ItemID:    listing.ItemID,
		Name:      listing.Name,
		Unit:      listing.Unit,
		Price:     listing.Price,
		UpdatedAt: listing.UpdatedAt,
	})
}
