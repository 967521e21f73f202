package auth

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/ghuser/assetforge/pkg/httpx"
	"github.com/ghuser/assetforge/pkg/logger"
)

const sessionName = "assetforge_session"
const sessionPrincipalKey = "principal"

// RequirePrincipal is a chi middleware that enforces authentication via
// session cookies. It reads the session cookie, extracts the calling
// principal, and injects it into the request context.
// Returns 401 Unauthorized if the session is missing, invalid, or lacks a
// valid principal.
//
// After this middleware, handlers can safely call auth.PrincipalFromCtx(r.Context()).
func RequirePrincipal(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, sessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			principalStr, ok := session.Values[sessionPrincipalKey].(string)
			if !ok || principalStr == "" {
				log.WarnContext(r.Context(), "session missing principal")
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			principal, err := uuid.Parse(principalStr)
			if err != nil {
				log.WarnContext(r.Context(), "invalid principal in session", "principal", principalStr, "error", err)
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid session data"})
				return
			}

			ctx := WithPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
