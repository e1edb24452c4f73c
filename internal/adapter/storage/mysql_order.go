package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rl1809/campus-market/internal/core/domain"
)

// CreateOrder performs the purchase transaction: a conditional update flips
// the item available->sold, and the order row is inserted only when that
// update reported exactly one row. Two concurrent buyers therefore cannot
// both win; the loser's update matches nothing and the whole transaction
// rolls back with ErrItemUnavailable.
func (m *MySQLAdapter) CreateOrder(ctx context.Context, order domain.Order) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE items SET status = ? WHERE id = ? AND status = ?`,
		domain.ItemStatusSold, order.ItemID, domain.ItemStatusAvailable,
	)
	if err != nil {
		return fmt.Errorf("update item status: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrItemUnavailable
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, item_id, buyer_id, status, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		order.ID, order.ItemID, order.BuyerID, order.Status, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	return tx.Commit()
}

func (m *MySQLAdapter) GetOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	err := m.db.QueryRowContext(ctx, `
		SELECT id, item_id, buyer_id, status, created_at
		FROM orders WHERE id = ?`, id,
	).Scan(&order.ID, &order.ItemID, &order.BuyerID, &order.Status, &order.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query order: %w", err)
	}
	return &order, nil
}

func (m *MySQLAdapter) ListOrdersForUser(ctx context.Context, userID string) ([]domain.Order, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT o.id, o.item_id, o.buyer_id, o.status, o.created_at
		FROM orders o
		JOIN items i ON i.id = o.item_id
		WHERE o.buyer_id = ? OR i.owner_id = ?
		ORDER BY o.created_at DESC`, userID, userID)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.ItemID, &order.BuyerID,
			&order.Status, &order.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}
