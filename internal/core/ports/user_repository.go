package ports

import (
	"context"

	"github.com/artisio/marketplace-api/internal/core/domain"
)

// ProfileUpdate carries the mutable profile fields. Nil means "leave as is".
type ProfileUpdate struct {
	Bio       *string
	AvatarURL *string
}

// UserRepository defines persistence for marketplace accounts. Email
// uniqueness is enforced by the store at write time.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrUserExists when the email
	// is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail resolves a user including the password hash, for login.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*domain.User, error)
	// IncrementViews bumps the profile view counter.
	IncrementViews(ctx context.Context, id string) error
}
