// internal/adapters/inventoryapi/token.go
package inventoryapi

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ammerola/meta4-erp/internal/core/domain"
	"github.com/ammerola/meta4-erp/internal/core/ports"
)

// BearerTokens picks the token for an upstream call: the caller's token
// carried in the context, else the configured service token.
type BearerTokens struct {
	service string
	parser  *jwt.Parser
	now     func() time.Time
}

// Statically assert that *BearerTokens implements the TokenSource interface.
var _ ports.TokenSource = (*BearerTokens)(nil)

// NewBearerTokens creates a token source. serviceToken may be empty.
func NewBearerTokens(serviceToken string) *BearerTokens {
	return &BearerTokens{
		service: serviceToken,
		parser:  jwt.NewParser(),
		now:     time.Now,
	}
}

// Token returns the bearer token, "" when there is none, or an
// ErrUnauthorized error when the chosen token has expired
func (b *BearerTokens) Token(ctx context.Context) (string, error) {
	token, ok := ports.TokenFromContext(ctx)
	if !ok {
		token = b.service
	}
	if token == "" {
		return "", nil
	}
	if b.expired(token) {
		return "", fmt.Errorf("%w: bearer token expired", domain.ErrUnauthorized)
	}
	return token, nil
}

// expired inspects the exp claim without verifying the signature; the
// upstream owns the secret. Opaque tokens are never treated as expired.
func (b *BearerTokens) expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := b.parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !b.now().Before(exp.Time)
}
