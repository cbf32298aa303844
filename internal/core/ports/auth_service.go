package ports

import (
	"context"

	"github.com/artisio/marketplace-api/internal/core/domain"
)

// AuthService implements signup and login. Logout is purely a transport
// concern (clearing the carried cookie) and has no service-side state.
type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token.
	// Fails with domain.ErrUserNotFound for an unknown email and
	// domain.ErrInvalidCredentials for a wrong password.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// ProfileService exposes the auxiliary account features.
type ProfileService interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	Update(ctx context.Context, userID string, update ProfileUpdate) (*domain.User, error)
	// View returns a public artist profile and registers a view by viewerKey.
	View(ctx context.Context, userID, viewerKey string) (*domain.User, error)
}
