package httpx

import "context"

// Principal is the authenticated identity attached to a request after the
// access token has been verified. The token is decoded exactly once at the
// boundary; everything downstream works from this typed value.
type Principal struct {
	UserID string
	Email  string
	Role   string
}

type ctxKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// PrincipalFromContext returns the request principal, if any.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(ctxKey{}).(Principal)
	return p, ok
}
