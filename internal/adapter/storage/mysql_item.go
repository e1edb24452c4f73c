package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rl1809/campus-market/internal/core/domain"
)

const itemColumns = `id, title, description, price, status, owner_id, category_id, created_at`

func (m *MySQLAdapter) CreateItem(ctx context.Context, item domain.Item) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO items (`+itemColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Title, item.Description, item.Price, item.Status,
		item.OwnerID, item.CategoryID, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

func (m *MySQLAdapter) GetItemByID(ctx context.Context, id string) (*domain.Item, error) {
	var item domain.Item
	err := m.db.QueryRowContext(ctx, `
		SELECT `+itemColumns+` FROM items WHERE id = ?`, id,
	).Scan(&item.ID, &item.Title, &item.Description, &item.Price, &item.Status,
		&item.OwnerID, &item.CategoryID, &item.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query item: %w", err)
	}
	return &item, nil
}

func (m *MySQLAdapter) ListAvailableItems(ctx context.Context, categoryID string) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE status = ?`
	args := []any{domain.ItemStatusAvailable}
	if categoryID != "" {
		query += ` AND category_id = ?`
		args = append(args, categoryID)
	}
	query += ` ORDER BY created_at DESC`

	return m.listItems(ctx, query, args...)
}

func (m *MySQLAdapter) ListItemsByOwner(ctx context.Context, ownerID string) ([]domain.Item, error) {
	return m.listItems(ctx, `
		SELECT `+itemColumns+` FROM items WHERE owner_id = ?
		ORDER BY created_at DESC`, ownerID)
}

func (m *MySQLAdapter) listItems(ctx context.Context, query string, args ...any) ([]domain.Item, error) {
	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.Price,
			&item.Status, &item.OwnerID, &item.CategoryID, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (m *MySQLAdapter) UpdateItem(ctx context.Context, item domain.Item) error {
	_, err := m.db.ExecContext(ctx, `
		UPDATE items SET title = ?, description = ?, price = ?, category_id = ?
		WHERE id = ?`,
		item.Title, item.Description, item.Price, item.CategoryID, item.ID,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// DeleteItem cascades to the order referencing the item, if any.
func (m *MySQLAdapter) DeleteItem(ctx context.Context, id string) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE item_id = ?`, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	return tx.Commit()
}

// UpdateItemStatus is the bare compare-and-set on the status column. Order
// placement runs the same conditional update inside its transaction; this
// standalone form exists for callers that only need the flip.
func (m *MySQLAdapter) UpdateItemStatus(ctx context.Context, id string, expected, next domain.ItemStatus) (bool, error) {
	result, err := m.db.ExecContext(ctx, `
		UPDATE items SET status = ? WHERE id = ? AND status = ?`,
		next, id, expected,
	)
	if err != nil {
		return false, fmt.Errorf("update item status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return rows == 1, nil
}
