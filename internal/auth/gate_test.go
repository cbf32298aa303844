package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/artisio/marketplace-api/internal/core/domain"
)

type stubResolver struct {
	users map[string]*domain.User
	err   error
}

func (r *stubResolver) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func TestGate_Admit_Success(t *testing.T) {
	tokens := NewTokenService("secret", time.Hour)
	resolver := &stubResolver{users: map[string]*domain.User{
		"user_1": {ID: "user_1", Name: "Ann Lee", Email: "ann@x.com"},
	}}
	gate := NewGate(tokens, resolver, zerolog.Nop())

	token, err := tokens.Issue("user_1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	user, err := gate.Admit(context.Background(), token)
	if err != nil {
		t.Fatalf("Admit returned error: %v", err)
	}
	if user.Name != "Ann Lee" {
		t.Fatalf("unexpected identity: %+v", user)
	}
}

// Every rejection mode must be indistinguishable to the caller.
func TestGate_Admit_RejectionsCollapse(t *testing.T) {
	tokens := NewTokenService("secret", time.Hour)
	resolver := &stubResolver{users: map[string]*domain.User{}}
	gate := NewGate(tokens, resolver, zerolog.Nop())

	deletedUserToken, err := tokens.Issue("user_gone")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	expiredToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user_1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	cases := map[string]string{
		"malformed":    "garbage",
		"expired":      expiredToken,
		"deleted user": deletedUserToken,
	}
	for name, token := range cases {
		if _, err := gate.Admit(context.Background(), token); !errors.Is(err, domain.ErrUnauthorized) {
			t.Fatalf("%s: expected ErrUnauthorized, got %v", name, err)
		}
	}
}

func TestGate_Admit_StoreFailurePropagates(t *testing.T) {
	tokens := NewTokenService("secret", time.Hour)
	storeErr := errors.New("mongo unreachable")
	gate := NewGate(tokens, &stubResolver{err: storeErr}, zerolog.Nop())

	token, err := tokens.Issue("user_1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if _, err := gate.Admit(context.Background(), token); !errors.Is(err, storeErr) {
		t.Fatalf("expected infrastructure error to propagate, got %v", err)
	}
}
