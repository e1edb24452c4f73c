package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rl1809/campus-market/internal/core/domain"
	"github.com/rl1809/campus-market/internal/port"
)

var (
	ErrItemNotPurchasable = errors.New("item not purchasable")
	ErrSelfPurchase       = errors.New("cannot purchase own listing")
)

type OrderService struct {
	items  port.ItemRepository
	orders port.OrderRepository
}

func NewOrderService(items port.ItemRepository, orders port.OrderRepository) *OrderService {
	return &OrderService{items: items, orders: orders}
}

// PlaceOrder attempts to buy an item on behalf of buyerID. The pre-checks
// here are advisory; the repository's conditional update is what actually
// decides a race between two buyers, so a loser surfaces as
// ErrItemNotPurchasable exactly like an item that was sold long ago.
func (s *OrderService) PlaceOrder(ctx context.Context, buyerID, itemID string) (*domain.Order, error) {
	item, err := s.items.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("load item: %w", err)
	}
	if item == nil || item.Status != domain.ItemStatusAvailable {
		return nil, ErrItemNotPurchasable
	}
	if item.OwnerID == buyerID {
		return nil, ErrSelfPurchase
	}

	order := domain.Order{
		ID:        uuid.New().String(),
		ItemID:    itemID,
		BuyerID:   buyerID,
		Status:    domain.OrderStatusInProgress,
		CreatedAt: time.Now(),
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		if errors.Is(err, domain.ErrItemUnavailable) {
			return nil, ErrItemNotPurchasable
		}
		return nil, fmt.Errorf("create order: %w", err)
	}

	return &order, nil
}

// ListOrders returns the orders visible to userID: those they bought and
// those against items they own.
func (s *OrderService) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orders.ListOrdersForUser(ctx, userID)
}

// GetOrder returns one order, or ErrNotFound when it does not exist or the
// acting user is neither its buyer nor the seller of its item.
func (s *OrderService) GetOrder(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}
	if order == nil {
		return nil, ErrNotFound
	}
	if order.BuyerID != userID {
		item, err := s.items.GetItemByID(ctx, order.ItemID)
		if err != nil {
			return nil, fmt.Errorf("load item: %w", err)
		}
		if item == nil || item.OwnerID != userID {
			return nil, ErrNotFound
		}
	}
	return order, nil
}
