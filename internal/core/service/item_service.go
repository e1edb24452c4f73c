package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rl1809/campus-market/internal/core/domain"
	"github.com/rl1809/campus-market/internal/port"
)

type ItemService struct {
	items      port.ItemRepository
	categories port.CategoryRepository
}

func NewItemService(items port.ItemRepository, categories port.CategoryRepository) *ItemService {
	return &ItemService{items: items, categories: categories}
}

type ItemInput struct {
	Title       string
	Description string
	Price       decimal.Decimal
	CategoryID  string
}

// CreateItem lists a new item for sale, owned by the acting user.
func (s *ItemService) CreateItem(ctx context.Context, ownerID string, in ItemInput) (*domain.Item, error) {
	category, err := s.categories.GetCategoryByID(ctx, in.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("load category: %w", err)
	}
	if category == nil {
		return nil, ErrNotFound
	}

	item := domain.Item{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Status:      domain.ItemStatusAvailable,
		OwnerID:     ownerID,
		CategoryID:  in.CategoryID,
		CreatedAt:   time.Now(),
	}

	if err := s.items.CreateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return &item, nil
}

// ListItems returns items still for sale, newest first. An empty categoryID
// means all categories.
func (s *ItemService) ListItems(ctx context.Context, categoryID string) ([]domain.Item, error) {
	return s.items.ListAvailableItems(ctx, categoryID)
}

func (s *ItemService) ListItemsByOwner(ctx context.Context, ownerID string) ([]domain.Item, error) {
	return s.items.ListItemsByOwner(ctx, ownerID)
}

func (s *ItemService) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	item, err := s.items.GetItemByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load item: %w", err)
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

// UpdateItem rewrites the listing fields. Only the owner may update, and the
// sale status is never touched here: it belongs to order placement.
func (s *ItemService) UpdateItem(ctx context.Context, actingUserID, id string, in ItemInput) (*domain.Item, error) {
	item, err := s.items.GetItemByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load item: %w", err)
	}
	if item == nil {
		return nil, ErrNotFound
	}
	if item.OwnerID != actingUserID {
		return nil, ErrNotOwner
	}

	category, err := s.categories.GetCategoryByID(ctx, in.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("load category: %w", err)
	}
	if category == nil {
		return nil, ErrNotFound
	}

	item.Title = in.Title
	item.Description = in.Description
	item.Price = in.Price
	item.CategoryID = in.CategoryID

	if err := s.items.UpdateItem(ctx, *item); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	return item, nil
}

// DeleteItem removes a listing and, if it was sold, the order against it.
// Only the owner may delete.
func (s *ItemService) DeleteItem(ctx context.Context, actingUserID, id string) error {
	item, err := s.items.GetItemByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load item: %w", err)
	}
	if item == nil {
		return ErrNotFound
	}
	if item.OwnerID != actingUserID {
		return ErrNotOwner
	}
	return s.items.DeleteItem(ctx, id)
}
