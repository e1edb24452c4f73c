package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

const mysqlErrDuplicateEntry = 1062

type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

// Migrate creates the schema. The foreign keys and the UNIQUE item_id on
// orders backstop the invariants the adapter enforces explicitly: at most
// one order per item, no order without its item.
func (m *MySQLAdapter) Migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id CHAR(36) PRIMARY KEY,
			username VARCHAR(150) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			school_name VARCHAR(100) NOT NULL,
			profile TEXT,
			created_at DATETIME(6) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id CHAR(36) PRIMARY KEY,
			name VARCHAR(50) NOT NULL UNIQUE,
			description VARCHAR(255) NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS items (
			id CHAR(36) PRIMARY KEY,
			title VARCHAR(100) NOT NULL,
			description TEXT NOT NULL,
			price DECIMAL(10,2) NOT NULL,
			status VARCHAR(10) NOT NULL,
			owner_id CHAR(36) NOT NULL,
			category_id CHAR(36) NOT NULL,
			created_at DATETIME(6) NOT NULL,
			INDEX idx_items_status_created (status, created_at),
			INDEX idx_items_owner (owner_id),
			CONSTRAINT fk_items_owner FOREIGN KEY (owner_id) REFERENCES users(id),
			CONSTRAINT fk_items_category FOREIGN KEY (category_id) REFERENCES categories(id)
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id CHAR(36) PRIMARY KEY,
			item_id CHAR(36) NOT NULL UNIQUE,
			buyer_id CHAR(36) NOT NULL,
			status VARCHAR(20) NOT NULL,
			created_at DATETIME(6) NOT NULL,
			INDEX idx_orders_buyer (buyer_id),
			CONSTRAINT fk_orders_item FOREIGN KEY (item_id) REFERENCES items(id),
			CONSTRAINT fk_orders_buyer FOREIGN KEY (buyer_id) REFERENCES users(id)
		)`,
	}

	for _, stmt := range stmts {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry
}
