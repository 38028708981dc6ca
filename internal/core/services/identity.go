package services

import (
	"context"

	"github.com/vncsmyrnk/polly/internal/core/domain"
)

type userCtxKey struct{}

// ContextWithUser attaches the identity resolved from the session.
func ContextWithUser(ctx context.Context, user *domain.User) context.Context {
	if user == nil {
		return ctx
	}
	return context.WithValue(ctx, userCtxKey{}, user)
}

// CurrentUser returns the signed-in user, or nil for anonymous requests.
func CurrentUser(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userCtxKey{}).(*domain.User)
	return user
}

// RequireUser is CurrentUser for paths that must not run anonymously.
func RequireUser(ctx context.Context) (*domain.User, error) {
	user := CurrentUser(ctx)
	if user == nil || user.ID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	return user, nil
}
