package context

import (
	"context"
)

// UserContext contains authenticated caller information.
// The reporting API is read-only; the subject identifies the caller for
// logging only.
type UserContext struct {
	Subject string
	Email   string
}

type userContextKey struct{}

// WithUser adds UserContext to context.
func WithUser(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// GetUser returns UserContext from context.
func GetUser(ctx context.Context) *UserContext {
	if v, ok := ctx.Value(userContextKey{}).(*UserContext); ok {
		return v
	}
	return nil
}

// GetSubject returns the caller subject from context or empty string.
func GetSubject(ctx context.Context) string {
	if u := GetUser(ctx); u != nil {
		return u.Subject
	}
	return ""
}
