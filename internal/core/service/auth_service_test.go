package service

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newAuthFixture(t *testing.T) (*AuthService, *UserService) {
	t.Helper()
	users := newMockUserRepo()
	tokens := newMockTokenStore()
	return NewAuthService(users, tokens, time.Hour), NewUserService(users)
}

func TestLogin_IssuesUsableToken(t *testing.T) {
	auth, users := newAuthFixture(t)
	ctx := context.Background()

	registered, err := users.Register(ctx, RegisterInput{Username: "alice", Password: "secret123"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, err := auth.Login(ctx, "alice", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	user, err := auth.Authenticate(ctx, token)
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if user.ID != registered.ID {
		t.Errorf("expected user %s, got %s", registered.ID, user.ID)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	auth, users := newAuthFixture(t)
	ctx := context.Background()

	if _, err := users.Register(ctx, RegisterInput{Username: "alice", Password: "secret123"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := auth.Login(ctx, "alice", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got: %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	auth, _ := newAuthFixture(t)

	_, err := auth.Login(context.Background(), "nobody", "pw")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got: %v", err)
	}
}

func TestAuthenticate_BadTokens(t *testing.T) {
	auth, _ := newAuthFixture(t)
	ctx := context.Background()

	if _, err := auth.Authenticate(ctx, ""); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("empty token: expected ErrUnauthenticated, got: %v", err)
	}
	if _, err := auth.Authenticate(ctx, "made-up-token"); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("unknown token: expected ErrUnauthenticated, got: %v", err)
	}
}

func TestLogout_RevokesToken(t *testing.T) {
	auth, users := newAuthFixture(t)
	ctx := context.Background()

	if _, err := users.Register(ctx, RegisterInput{Username: "alice", Password: "secret123"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	token, err := auth.Login(ctx, "alice", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := auth.Logout(ctx, token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	if _, err := auth.Authenticate(ctx, token); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated after logout, got: %v", err)
	}
}
