package ports

import (
	"context"

	"github.com/vncsmyrnk/polly/internal/core/domain"
)

// SessionVerifier turns the session cookie value into an identity.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (*domain.User, error)
}
