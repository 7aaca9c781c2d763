// Package ctxutil stores request-scoped values in a context.Context.
package ctxutil

import "context"

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	principalKey ctxKey = "principal"
)

// Principal is the authenticated caller of a request.
type Principal struct {
	Subject string
	Role    string
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithPrincipal stores the authenticated caller in the context.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromCtx returns the authenticated caller. ok is false for
// anonymous requests or an empty subject.
func PrincipalFromCtx(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	if !ok || p.Subject == "" {
		return Principal{}, false
	}
	return p, true
}
