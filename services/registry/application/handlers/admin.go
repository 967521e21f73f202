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

// TransferAdminRequest is the request body for POST /admin/transfer.
type TransferAdminRequest struct {
	NewAdmin string `json:"new_admin" validate:"required,uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
} // @name TransferAdminRequest

// AdminResponse is returned by the admin gate endpoints.
type AdminResponse struct {
	Admin uuid.UUID `json:"admin" example:"550e8400-e29b-41d4-a716-446655440000"`
} // @name AdminResponse

// AdminHandlers serves the registry's administrative access gate.
type AdminHandlers struct {
	svc *appsvcs.Services
}

// NewAdminHandlers returns AdminHandlers backed by the given services.
func NewAdminHandlers(svc *appsvcs.Services) *AdminHandlers {
	return &AdminHandlers{svc: svc}
}

// Current returns the principal holding administrative rights.
//
//	@Summary		Current admin
//	@Tags			admin
//	@Produce		json
//	@Success		200	{object}	AdminResponse
//	@Router			/admin [get]
func (h *AdminHandlers) Current(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, AdminResponse{Admin: h.svc.Gate.CurrentAdmin()})
}

// Transfer hands administrative rights to another principal.
//
//	@Summary		Transfer admin rights
//	@Description	Restricted to the current admin
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		TransferAdminRequest	true	"Transfer request"
//	@Success		200		{object}	AdminResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Router			/admin/transfer [post]
func (h *AdminHandlers) Transfer(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[TransferAdminRequest](w, r)
	if !ok {
		return
	}

	if err := h.svc.Gate.TransferAdminRights(principal, uuid.MustParse(req.NewAdmin)); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, AdminResponse{Admin: h.svc.Gate.CurrentAdmin()})
}
