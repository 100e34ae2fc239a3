package auth

import (
	"context"
	"errors"

	"github.com/prova-app/prova-api/internal/user"
)

var ErrUnauthorized = errors.New("unauthorized")

type contextKey struct{}

var userContextKey = contextKey{}

func WithUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, userContextKey, u)
}

// GetUserFromContext returns the authenticated principal placed in the
// request context by the auth middleware.
func GetUserFromContext(ctx context.Context) (*user.User, error) {
	u, ok := ctx.Value(userContextKey).(*user.User)
	if !ok || u == nil {
		return nil, ErrUnauthorized
	}
	return u, nil
}
