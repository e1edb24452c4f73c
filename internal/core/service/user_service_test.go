package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestRegister_Success(t *testing.T) {
	users := newMockUserRepo()
	svc := NewUserService(users)

	user, err := svc.Register(context.Background(), RegisterInput{
		Username:   "alice",
		Password:   "secret123",
		Email:      "alice@example.edu",
		SchoolName: "State University",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if user.ID == "" {
		t.Error("expected non-empty user ID")
	}
	if user.PasswordHash == "secret123" {
		t.Error("password stored in clear")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")) != nil {
		t.Error("stored hash does not verify against the password")
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	users := newMockUserRepo()
	svc := NewUserService(users)

	ctx := context.Background()
	if _, err := svc.Register(ctx, RegisterInput{Username: "alice", Password: "pw1"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, err := svc.Register(ctx, RegisterInput{Username: "alice", Password: "pw2"})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got: %v", err)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	svc := NewUserService(newMockUserRepo())

	_, err := svc.GetUser(context.Background(), "no-such-user")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}

func TestDeleteUser_SelfOnly(t *testing.T) {
	users := newMockUserRepo()
	svc := NewUserService(users)

	ctx := context.Background()
	alice, err := svc.Register(ctx, RegisterInput{Username: "alice", Password: "pw"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.DeleteUser(ctx, "bob", alice.ID); !errors.Is(err, ErrNotOwner) {
		t.Errorf("expected ErrNotOwner, got: %v", err)
	}

	if err := svc.DeleteUser(ctx, alice.ID, alice.ID); err != nil {
		t.Fatalf("self delete failed: %v", err)
	}

	if _, err := svc.GetUser(ctx, alice.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected user to be gone, got: %v", err)
	}
}
