package auth

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/artisio/marketplace-api/internal/core/domain"
)

// UserResolver is the slice of the credential store the gate needs.
type UserResolver interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// Gate decides whether a request is admitted. It composes token verification
// with a credential-store lookup and returns the resolved identity; the
// transport layer decides how to continue. Every admission is evaluated
// independently per request; nothing is cached.
type Gate struct {
	tokens *TokenService
	users  UserResolver
	log    zerolog.Logger
}

func NewGate(tokens *TokenService, users UserResolver, log zerolog.Logger) *Gate {
	return &Gate{tokens: tokens, users: users, log: log}
}

// Admit verifies the token and resolves the bound identity. All failure
// modes (expired token, malformed token, identity deleted after issuance)
// collapse to domain.ErrUnauthorized so callers cannot leak which one
// occurred; the distinction survives only in logs.
func (g *Gate) Admit(ctx context.Context, token string) (*domain.User, error) {
	userID, err := g.tokens.Verify(token)
	if err != nil {
		g.log.Debug().Err(err).Msg("token rejected")
		return nil, domain.ErrUnauthorized
	}

	user, err := g.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			g.log.Debug().Str("user_id", userID).Msg("token subject no longer exists")
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	return user, nil
}
