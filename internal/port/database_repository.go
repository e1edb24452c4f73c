package port

import (
	"context"

	"github.com/rl1809/campus-market/internal/core/domain"
)

type UserRepository interface {
	// CreateUser persists a new user; returns domain.ErrUsernameTaken on a
	// duplicate username.
	CreateUser(ctx context.Context, user domain.User) error

	// GetUserByID returns nil when no such user exists.
	GetUserByID(ctx context.Context, id string) (*domain.User, error)

	// GetUserByUsername returns nil when no such user exists.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	ListUsers(ctx context.Context) ([]domain.User, error)

	// DeleteUser removes the user and cascades to their items and the
	// orders touching those items, in one transaction.
	DeleteUser(ctx context.Context, id string) error
}

type CategoryRepository interface {
	CreateCategory(ctx context.Context, category domain.Category) error

	// GetCategoryByID returns nil when no such category exists.
	GetCategoryByID(ctx context.Context, id string) (*domain.Category, error)

	ListCategories(ctx context.Context) ([]domain.Category, error)

	// DeleteCategory fails with domain.ErrCategoryInUse while any item
	// references the category.
	DeleteCategory(ctx context.Context, id string) error
}

type ItemRepository interface {
	CreateItem(ctx context.Context, item domain.Item) error

	// GetItemByID returns nil when no such item exists.
	GetItemByID(ctx context.Context, id string) (*domain.Item, error)

	// ListAvailableItems returns available items newest first, optionally
	// restricted to one category (empty categoryID means all).
	ListAvailableItems(ctx context.Context, categoryID string) ([]domain.Item, error)

	ListItemsByOwner(ctx context.Context, ownerID string) ([]domain.Item, error)

	// UpdateItem rewrites the mutable listing fields; status is not touched.
	UpdateItem(ctx context.Context, item domain.Item) error

	// DeleteItem removes the item and any order referencing it.
	DeleteItem(ctx context.Context, id string) error

	// UpdateItemStatus is an atomic compare-and-set on the status column.
	// It reports false when the current status did not match expected.
	UpdateItemStatus(ctx context.Context, id string, expected, next domain.ItemStatus) (bool, error)
}

type OrderRepository interface {
	// CreateOrder flips the item available->sold and inserts the order as a
	// single transaction. Returns domain.ErrItemUnavailable when the item is
	// missing or no longer available; no partial state is left behind.
	CreateOrder(ctx context.Context, order domain.Order) error

	// GetOrderByID returns nil when no such order exists.
	GetOrderByID(ctx context.Context, id string) (*domain.Order, error)

	// ListOrdersForUser returns orders where the user is the buyer or owns
	// the referenced item, newest first.
	ListOrdersForUser(ctx context.Context, userID string) ([]domain.Order, error)
}
