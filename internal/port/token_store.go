package port

import (
	"context"
	"time"
)

type TokenStore interface {
	// SaveToken binds token to userID for ttl, returns false if the token
	// already exists.
	SaveToken(ctx context.Context, token, userID string, ttl time.Duration) (bool, error)

	// GetUserID resolves a token to a user ID; empty string when the token
	// is unknown or expired.
	GetUserID(ctx context.Context, token string) (string, error)

	// DeleteToken revokes a token. Deleting an unknown token is not an error.
	DeleteToken(ctx context.Context, token string) error
}
