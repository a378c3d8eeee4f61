package inkwell

import (
	"context"
)

var identityCtxKey = &contextKey{"identity"}
var claimsCtxKey = &contextKey{"claims"}

type contextKey struct {
	name string
}

// WithIdentity sets the authenticated Identity in the given context. The
// binding is per request: every request execution path gets an independent
// context and the identity is discarded with it.
func WithIdentity(r context.Context, identity Identity) context.Context {
	return context.WithValue(r, identityCtxKey, identity)
}

// IdentityFromContext finds the authenticated Identity in the context.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	raw, ok := ctx.Value(identityCtxKey).(Identity)
	return raw, ok
}

// WithClaimsContext sets the AuthClaims in the given context
func WithClaimsContext(r context.Context, claims AuthClaims) context.Context {
	return context.WithValue(r, claimsCtxKey, claims)
}

// GetClaims extracts the AuthClaims from the standard context
func GetClaims(ctx context.Context) (AuthClaims, bool) {
	raw, ok := ctx.Value(claimsCtxKey).(AuthClaims)
	return raw, ok
}

// EnrichContext binds validated claims and the identity derived from them to
// the request context. Called exactly once per request by the JWT middleware.
func EnrichContext(ctx context.Context, claims AuthClaims) context.Context {
	ctx = WithClaimsContext(ctx, claims)
	return WithIdentity(ctx, IdentityFromClaims(claims))
}
