package auth

import (
	"context"

	"github.com/google/uuid"
)

// TokenPair is the access/refresh credential returned on login.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

//go:generate minimock -i TokenIssuer -o ./mocks/token_issuer_mock.go -n TokenIssuerMock -p mocks

// TokenIssuer abstracts token creation and refresh-token validation (e.g., JWT).
// It allows use cases to stay framework-agnostic.
type TokenIssuer interface {
	Issue(ctx context.Context, user User) (TokenPair, error)
	// ParseRefresh returns the user id carried by a valid refresh token.
	ParseRefresh(ctx context.Context, token string) (uuid.UUID, error)
}
