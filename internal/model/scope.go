package model

import "context"

// Scope identifies the authenticated caller of an operation.
type Scope struct {
	UserID string
}

// IsAuthenticated reports whether the scope carries a user.
func (s Scope) IsAuthenticated() bool {
	return s.UserID != ""
}

type scopeCtxKey struct{}

// SetScopeToContext stores sc on ctx.
func SetScopeToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the Scope stored on ctx, or an empty Scope.
func GetScopeFromContext(ctx context.Context) Scope {
	sc, _ := ctx.Value(scopeCtxKey{}).(Scope)
	return sc
}
