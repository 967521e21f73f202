package handlers

import (
	"net/http"
	"time"

	"github.com/ghuser/assetforge/pkg/auth"
	"github.com/ghuser/assetforge/pkg/errhttp"
	"github.com/ghuser/assetforge/pkg/httpx"
	pkgvalidator "github.com/ghuser/assetforge/pkg/validator"
	appsvcs "github.com/ghuser/assetforge/services/registry/application/services"
	"github.com/ghuser/assetforge/services/registry/domain/ledger"
	"github.com/ghuser/assetforge/services/registry/domain/models"
)

// IssueItemRequest is the request body for POST /items.
type IssueItemRequest struct {
	Name     string    `json:"name"     validate:"required,min=1,max=255" example:"gold"`
	Value    uint64    `json:"value"    example:"100"`
	Unit     string    `json:"unit"     validate:"required,max=32" example:"oz"`
	Qty      uint64    `json:"qty"      validate:"required,gte=1" example:"10"`
	Validity time.Time `json:"validity" validate:"required" example:"2026-01-15T10:30:00Z"`
	Resale   bool      `json:"resale"   example:"true"`
} // @name IssueItemRequest

// PostItemHandler handles POST /items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute issues a new holding for the calling principal.
//
//	@Summary		Issue item
//	@Description	Mints a quantity of a named asset class held by the caller
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		IssueItemRequest	true	"Issue request"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[IssueItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Registry.Issue(r.Context(), principal, ledger.IssueParams{
		Name:     models.AssetName(req.Name),
		Value:    req.Value,
		Unit:     req.Unit,
		Qty:      req.Qty,
		Validity: req.Validity,
		Resale:   req.Resale,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toItemResponse(item, false))
}
