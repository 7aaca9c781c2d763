package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/kesava/telugu-word-analysis/pkg/ctxutil"
)

type tokenValidator interface {
	Validate(token string) (subject, role string, err error)
}

// Auth resolves a bearer token into a ctxutil.Principal. Requests without a
// bearer token pass through anonymously; an invalid token is rejected with
// 401.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			subject, role, err := validator.Validate(token)
			if err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
				writeError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			p := ctxutil.Principal{Subject: subject, Role: role}
			if h, ok := r.Context().Value(principalHolderKey{}).(*principalHolder); ok {
				h.principal = p
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithPrincipal(r.Context(), p)))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

type principalHolderKey struct{}

// principalHolder lets Logger see the principal resolved further down the
// chain.
type principalHolder struct {
	principal ctxutil.Principal
}

func withPrincipalHolder(ctx context.Context, h *principalHolder) context.Context {
	return context.WithValue(ctx, principalHolderKey{}, h)
}
