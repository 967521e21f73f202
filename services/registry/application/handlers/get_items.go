package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/assetforge/pkg/auth"
	"github.com/ghuser/assetforge/pkg/errhttp"
	"github.com/ghuser/assetforge/pkg/httpx"
	appsvcs "github.com/ghuser/assetforge/services/registry/application/services"
)

// ListItemsResponse is returned by GET /items.
type ListItemsResponse struct {
	Length int            `json:"length" example:"1"`
	Items  []ItemResponse `json:"items"`
} // @name ListItemsResponse

// GetItemsHandler handles GET /items and GET /items/{index}.
type GetItemsHandler struct {
	svc *appsvcs.Services
}

// NewGetItemsHandler returns a GetItemsHandler backed by the given services.
func NewGetItemsHandler(svc *appsvcs.Services) *GetItemsHandler {
	return &GetItemsHandler{svc: svc}
}

// List enumerates the calling principal's holdings.
//
//	@Summary		List holdings
//	@Description	Returns the caller's enumeration length and every live holding
//	@Tags			items
//	@Produce		json
//	@Success		200	{object}	ListItemsResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/items [get]
func (h *GetItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	holdings, err := h.svc.Registry.List(principal)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ListItemsResponse{
		Length: h.svc.Registry.Length(principal),
		Items:  toItemResponses(holdings),
	})
}

// GetByIndex returns the holding at one enumeration position.
//
//	@Summary		Get holding by index
//	@Description	Returns the full record at an enumeration position plus its for-sale flag
//	@Tags			items
//	@Produce		json
//	@Param			index	path		int	true	"Enumeration index"
//	@Success		200		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/items/{index} [get]
func (h *GetItemsHandler) GetByIndex(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "index must be an integer")
		return
	}

	holding, err := h.svc.Registry.Get(principal, index)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(holding.Item, holding.ForSale))
}
