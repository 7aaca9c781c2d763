package middleware

import (
	"net/http"

	"github.com/kesava/telugu-word-analysis/internal/auth"
	"github.com/kesava/telugu-word-analysis/pkg/ctxutil"
)

// RequireRole rejects anonymous requests with 401 and callers holding a
// different role with 403. It must run after Auth.
func RequireRole(role string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := ctxutil.PrincipalFromCtx(r.Context())
			if !ok {
				w.Header().Set("WWW-Authenticate", "Bearer")
				writeError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if p.Role != role {
				writeError(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is RequireRole for the admin role.
func RequireAdmin() Middleware {
	return RequireRole(auth.RoleAdmin)
}
