package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rl1809/campus-market/internal/core/domain"
	"github.com/rl1809/campus-market/internal/port"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrNotOwner      = errors.New("not the resource owner")
	ErrUsernameTaken = errors.New("username already taken")
)

type UserService struct {
	users port.UserRepository
}

func NewUserService(users port.UserRepository) *UserService {
	return &UserService{users: users}
}

type RegisterInput struct {
	Username   string
	Password   string
	Email      string
	SchoolName string
	Profile    string
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	existing, err := s.users.GetUserByUsername(ctx, in.Username)
	if err != nil {
		return nil, fmt.Errorf("lookup username: %w", err)
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Email:        in.Email,
		SchoolName:   in.SchoolName,
		Profile:      in.Profile,
		CreatedAt:    time.Now(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		// The unique index backstops the pre-check when two registrations race.
		if errors.Is(err, domain.ErrUsernameTaken) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return &user, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.ListUsers(ctx)
}

// DeleteUser removes an account together with its items and related orders.
// Users may only delete themselves.
func (s *UserService) DeleteUser(ctx context.Context, actingUserID, id string) error {
	if actingUserID != id {
		return ErrNotOwner
	}
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return ErrNotFound
	}
	return s.users.DeleteUser(ctx, id)
}
