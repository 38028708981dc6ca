package google

import (
	"context"
	"errors"

	"github.com/vncsmyrnk/polly/internal/core/domain"
	"github.com/vncsmyrnk/polly/internal/core/ports"
	"google.golang.org/api/idtoken"
)

// Validator matches idtoken.Validate.
type Validator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

type Verifier struct {
	clientID string
	validate Validator
}

func NewVerifier(clientID string) ports.SessionVerifier {
	return &Verifier{clientID: clientID, validate: idtoken.Validate}
}

func NewVerifierWithValidator(clientID string, validate Validator) *Verifier {
	return &Verifier{clientID: clientID, validate: validate}
}

func (v *Verifier) Verify(ctx context.Context, token string) (*domain.User, error) {
	payload, err := v.validate(ctx, token, v.clientID)
	if err != nil {
		return nil, err
	}
	if payload.Subject == "" {
		return nil, errors.New("subject not found in token")
	}
	// email is absent when the token was issued without the email scope.
	email, _ := payload.Claims["email"].(string)
	return &domain.User{ID: payload.Subject, Email: email}, nil
}
