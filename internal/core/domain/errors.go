package domain

import "errors"

// Persistence-boundary errors. Adapters return these; services translate
// them into caller-facing errors.
var (
	// ErrItemUnavailable is returned by the order repository when the
	// conditional status update matched no row: the item was already sold
	// (possibly by a concurrent buyer) or does not exist.
	ErrItemUnavailable = errors.New("item unavailable")

	// ErrCategoryInUse blocks deletion of a category still referenced by items.
	ErrCategoryInUse = errors.New("category referenced by items")

	// ErrUsernameTaken is returned when the unique username constraint fails.
	ErrUsernameTaken = errors.New("username already taken")
)
