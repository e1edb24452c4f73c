package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rl1809/campus-market/internal/core/domain"
)

func (m *MySQLAdapter) CreateUser(ctx context.Context, user domain.User) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO users (id, username, password_hash, email, school_name, profile, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		user.ID, user.Username, user.PasswordHash, user.Email,
		user.SchoolName, user.Profile, user.CreatedAt,
	)
	if isDuplicateEntry(err) {
		return domain.ErrUsernameTaken
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (m *MySQLAdapter) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	return m.getUser(ctx, `WHERE id = ?`, id)
}

func (m *MySQLAdapter) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return m.getUser(ctx, `WHERE username = ?`, username)
}

func (m *MySQLAdapter) getUser(ctx context.Context, where string, arg any) (*domain.User, error) {
	var user domain.User
	err := m.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, email, school_name, profile, created_at
		FROM users `+where, arg,
	).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Email,
		&user.SchoolName, &user.Profile, &user.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &user, nil
}

func (m *MySQLAdapter) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, username, password_hash, email, school_name, profile, created_at
		FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Email,
			&user.SchoolName, &user.Profile, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// DeleteUser cascades explicitly: first the orders the user placed or that
// touch their items, then their items, then the user row itself.
func (m *MySQLAdapter) DeleteUser(ctx context.Context, id string) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		DELETE o FROM orders o
		JOIN items i ON i.id = o.item_id
		WHERE o.buyer_id = ? OR i.owner_id = ?`, id, id)
	if err != nil {
		return fmt.Errorf("delete orders: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM items WHERE owner_id = ?`, id); err != nil {
		return fmt.Errorf("delete items: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	return tx.Commit()
}
