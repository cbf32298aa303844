package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/artisio/marketplace-api/internal/auth"
	"github.com/artisio/marketplace-api/internal/core/domain"
	"github.com/artisio/marketplace-api/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by id
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = fmt.Sprintf("user_%d", r.nextID)
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id string, update ports.ProfileUpdate) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if update.Bio != nil {
		u.Bio = *update.Bio
	}
	if update.AvatarURL != nil {
		u.AvatarURL = *update.AvatarURL
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) IncrementViews(_ context.Context, id string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Views++
	return nil
}

func newAuthService(repo ports.UserRepository) *AuthService {
	return NewAuthService(repo, auth.NewTokenService("secret", time.Hour), zerolog.Nop())
}

func TestAuthService_Signup_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	user, err := svc.Signup(context.Background(), "Ann Lee", "ann@x.com", "secret1")
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if user.PasswordHash == "secret1" {
		t.Fatalf("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestAuthService_Signup_NormalizesEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	user, err := svc.Signup(context.Background(), "Ann Lee", "  Ann@X.Com ", "secret1")
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if user.Email != "ann@x.com" {
		t.Fatalf("expected lowercased email, got %q", user.Email)
	}
}

func TestAuthService_Signup_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	original, err := svc.Signup(context.Background(), "Ann Lee", "ann@x.com", "secret1")
	if err != nil {
		t.Fatalf("first signup failed: %v", err)
	}

	if _, err := svc.Signup(context.Background(), "Imposter", "ANN@x.com", "other99"); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	// Original record unchanged by the rejected duplicate.
	stored, err := repo.FindByID(context.Background(), original.ID)
	if err != nil {
		t.Fatalf("find original: %v", err)
	}
	if stored.Name != "Ann Lee" {
		t.Fatalf("original record mutated: %+v", stored)
	}
}

func TestAuthService_Signup_MissingFields(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, err := svc.Signup(context.Background(), "", "ann@x.com", "secret1"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Signup(context.Background(), "Ann Lee", "ann@x.com", "secret1"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "ann@x.com", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}
	if user == nil || user.Name != "Ann Lee" {
		t.Fatalf("unexpected user: %+v", user)
	}

	userID, err := auth.NewTokenService("secret", time.Hour).Verify(token)
	if err != nil || userID != user.ID {
		t.Fatalf("token does not bind user: id=%q err=%v", userID, err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	_, _ = svc.Signup(context.Background(), "Ann Lee", "ann@x.com", "secret1")
	if _, _, err := svc.Login(context.Background(), "ann@x.com", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, _, err := svc.Login(context.Background(), "ghost@x.com", "secret1"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
