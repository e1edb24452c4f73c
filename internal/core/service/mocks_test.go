package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rl1809/campus-market/internal/core/domain"
)

// Mock UserRepository
type mockUserRepo struct {
	mu    sync.Mutex
	users map[string]domain.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]domain.User)}
}

func (m *mockUserRepo) CreateUser(ctx context.Context, user domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Username == user.Username {
			return domain.ErrUsernameTaken
		}
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user, ok := m.users[id]; ok {
		return &user, nil
	}
	return nil, nil
}

func (m *mockUserRepo) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Username == username {
			return &user, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	users := make([]domain.User, 0, len(m.users))
	for _, user := range m.users {
		users = append(users, user)
	}
	return users, nil
}

func (m *mockUserRepo) DeleteUser(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
	return nil
}

// Mock TokenStore (TTL is recorded but never enforced)
type mockTokenStore struct {
	mu     sync.Mutex
	tokens map[string]string
}

func newMockTokenStore() *mockTokenStore {
	return &mockTokenStore{tokens: make(map[string]string)}
}

func (m *mockTokenStore) SaveToken(ctx context.Context, token, userID string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.tokens[token]; exists {
		return false, nil
	}
	m.tokens[token] = userID
	return true, nil
}

func (m *mockTokenStore) GetUserID(ctx context.Context, token string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tokens[token], nil
}

func (m *mockTokenStore) DeleteToken(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, token)
	return nil
}

// Mock CategoryRepository
type mockCategoryRepo struct {
	mu         sync.Mutex
	categories map[string]domain.Category
	items      *mockItemRepo // for the delete restriction
}

func newMockCategoryRepo(items *mockItemRepo) *mockCategoryRepo {
	return &mockCategoryRepo{categories: make(map[string]domain.Category), items: items}
}

func (m *mockCategoryRepo) CreateCategory(ctx context.Context, category domain.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories[category.ID] = category
	return nil
}

func (m *mockCategoryRepo) GetCategoryByID(ctx context.Context, id string) (*domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if category, ok := m.categories[id]; ok {
		return &category, nil
	}
	return nil, nil
}

func (m *mockCategoryRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	categories := make([]domain.Category, 0, len(m.categories))
	for _, category := range m.categories {
		categories = append(categories, category)
	}
	return categories, nil
}

func (m *mockCategoryRepo) DeleteCategory(ctx context.Context, id string) error {
	if m.items != nil {
		m.items.mu.Lock()
		for _, item := range m.items.items {
			if item.CategoryID == id {
				m.items.mu.Unlock()
				return domain.ErrCategoryInUse
			}
		}
		m.items.mu.Unlock()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.categories, id)
	return nil
}

// Mock ItemRepository
type mockItemRepo struct {
	mu    sync.Mutex
	items map[string]domain.Item
}

func newMockItemRepo() *mockItemRepo {
	return &mockItemRepo{items: make(map[string]domain.Item)}
}

func (m *mockItemRepo) CreateItem(ctx context.Context, item domain.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[item.ID] = item
	return nil
}

func (m *mockItemRepo) GetItemByID(ctx context.Context, id string) (*domain.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if item, ok := m.items[id]; ok {
		return &item, nil
	}
	return nil, nil
}

func (m *mockItemRepo) ListAvailableItems(ctx context.Context, categoryID string) ([]domain.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var items []domain.Item
	for _, item := range m.items {
		if item.Status != domain.ItemStatusAvailable {
			continue
		}
		if categoryID != "" && item.CategoryID != categoryID {
			continue
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (m *mockItemRepo) ListItemsByOwner(ctx context.Context, ownerID string) ([]domain.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var items []domain.Item
	for _, item := range m.items {
		if item.OwnerID == ownerID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (m *mockItemRepo) UpdateItem(ctx context.Context, item domain.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.items[item.ID]
	if !ok {
		return nil
	}
	stored.Title = item.Title
	stored.Description = item.Description
	stored.Price = item.Price
	stored.CategoryID = item.CategoryID
	m.items[item.ID] = stored
	return nil
}

func (m *mockItemRepo) DeleteItem(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	return nil
}

func (m *mockItemRepo) UpdateItemStatus(ctx context.Context, id string, expected, next domain.ItemStatus) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok || item.Status != expected {
		return false, nil
	}
	item.Status = next
	m.items[id] = item
	return true, nil
}

// Mock OrderRepository. CreateOrder mirrors the real adapter: the item flip
// is a compare-and-set, and the order is stored only when it wins.
type mockOrderRepo struct {
	mu     sync.Mutex
	items  *mockItemRepo
	orders map[string]domain.Order
}

func newMockOrderRepo(items *mockItemRepo) *mockOrderRepo {
	return &mockOrderRepo{items: items, orders: make(map[string]domain.Order)}
}

func (m *mockOrderRepo) CreateOrder(ctx context.Context, order domain.Order) error {
	ok, err := m.items.UpdateItemStatus(ctx, order.ItemID, domain.ItemStatusAvailable, domain.ItemStatusSold)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrItemUnavailable
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[order.ID] = order
	return nil
}

func (m *mockOrderRepo) GetOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if order, ok := m.orders[id]; ok {
		return &order, nil
	}
	return nil, nil
}

func (m *mockOrderRepo) ListOrdersForUser(ctx context.Context, userID string) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var orders []domain.Order
	for _, order := range m.orders {
		if order.BuyerID == userID {
			orders = append(orders, order)
			continue
		}
		if item, _ := m.items.GetItemByID(ctx, order.ItemID); item != nil && item.OwnerID == userID {
			orders = append(orders, order)
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}
