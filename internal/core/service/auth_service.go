package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/artisio/marketplace-api/internal/auth"
	"github.com/artisio/marketplace-api/internal/core/domain"
	"github.com/artisio/marketplace-api/internal/core/ports"
)

// AuthService implements signup and login on top of the password hasher,
// the token issuer, and the user repository.
type AuthService struct {
	repo   ports.UserRepository
	tokens *auth.TokenService
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *auth.TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, log: log}
}

// Signup registers a new account. The password is hashed exactly once, here.
// Emails are normalised to lower case before the uniqueness check; two
// concurrent signups with the same email race at the unique index and the
// loser surfaces domain.ErrUserExists.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        normalizeEmail(email),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("new user created")
	return created, nil
}

// Login verifies credentials and issues a 7-day bearer token. Unknown email
// and wrong password stay distinguishable here; the transport reports 404
// and 401 respectively at login time only.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return "", nil, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return token, user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
