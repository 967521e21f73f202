package auth

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/assetforge/pkg/httpx"
	"github.com/ghuser/assetforge/pkg/logger"
	pkgvalidator "github.com/ghuser/assetforge/pkg/validator"
)

// MintSessionRequest is the request body for POST /auth/session.
type MintSessionRequest struct {
	Principal string `json:"principal" validate:"required,uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// MintSessionHandler issues a session cookie for the given principal with no
// credential check. It exists so local clients can act as arbitrary
// principals; cmd/api only mounts it outside production.
func MintSessionHandler(store sessions.Store, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := pkgvalidator.ValidateRequest[MintSessionRequest](w, r)
		if !ok {
			return
		}

		session, err := store.Get(r, sessionName)
		if err != nil {
			// A tampered cookie yields an error plus a fresh session; mint anyway.
			log.WarnContext(r.Context(), "replacing invalid session cookie", "error", err)
		}
		session.Values[sessionPrincipalKey] = req.Principal
		if err := session.Save(r, w); err != nil {
			log.ErrorContext(r.Context(), "failed to save session", "error", err)
			httpx.JSONError(w, http.StatusInternalServerError, "failed to save session")
			return
		}

		httpx.JSON(w, http.StatusCreated, map[string]string{"principal": req.Principal})
	}
}
