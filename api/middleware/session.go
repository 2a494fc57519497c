package middleware

import (
	"net/http"

	"github.com/carebridge/eldercare-backend/pkg/auth/session"
	"github.com/carebridge/eldercare-backend/pkg/enums"
	"github.com/carebridge/eldercare-backend/pkg/logger"
)

// RequireSession validates the session cookie and seeds the request context
// with its claims. Anonymous or expired sessions bounce to the login page.
func RequireSession(mgr *session.Manager, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := mgr.Current(r)
			if claims == nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			ctx := WithSession(r.Context(), claims)
			if logg != nil {
				ctx = logg.WithUserID(ctx, claims.UserID)
				ctx = logg.WithRole(ctx, string(claims.Role))
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route to one role. Signed-in visitors with the wrong
// role are sent back to the login page, matching the anonymous path.
func RequireRole(role enums.Role, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			current := RoleFromContext(r.Context())
			if current != role {
				if logg != nil {
					ctx := logg.WithFields(r.Context(), map[string]any{"required_role": string(role)})
					logg.Warn(ctx, "session.role_mismatch")
				}
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
