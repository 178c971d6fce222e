package gatekit

import "context"

// Context keys for GateKit values.
type contextKey string

const (
	contextKeyPrincipal contextKey = "gatekit:principal"
	contextKeyChecker   contextKey = "gatekit:checker"
)

// WithPrincipal adds a principal to the context. This is set by the
// identity-resolution layer once per request.
func WithPrincipal(ctx context.Context, principal Principal) context.Context {
	return context.WithValue(ctx, contextKeyPrincipal, principal)
}

// GetPrincipal retrieves the principal from context. Returns the
// anonymous principal if not set: an unresolved identity and an
// anonymous visitor are treated the same.
func GetPrincipal(ctx context.Context) Principal {
	if v := ctx.Value(contextKeyPrincipal); v != nil {
		if p, ok := v.(Principal); ok {
			return p
		}
	}
	return Anonymous()
}

// HasPrincipal reports whether a principal was explicitly set on the
// context.
func HasPrincipal(ctx context.Context) bool {
	_, ok := ctx.Value(contextKeyPrincipal).(Principal)
	return ok
}

// WithChecker adds a Checker to the context. This is set by middleware
// and retrieved in handlers.
func WithChecker(ctx context.Context, checker *Checker) context.Context {
	return context.WithValue(ctx, contextKeyChecker, checker)
}

// GetChecker retrieves the Checker from context. Returns nil if not set.
func GetChecker(ctx context.Context) *Checker {
	if v := ctx.Value(contextKeyChecker); v != nil {
		if c, ok := v.(*Checker); ok {
			return c
		}
	}
	return nil
}

// FromContext retrieves the Checker from context.
// Alias for GetChecker for convenience.
func FromContext(ctx context.Context) *Checker {
	return GetChecker(ctx)
}
