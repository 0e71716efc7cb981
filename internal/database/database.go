package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func New(connStr string) (*sql.DB, error) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS transactions (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	type TEXT NOT NULL,
	amount NUMERIC(18,2) NOT NULL,
	currency TEXT NOT NULL DEFAULT 'USD',
	category TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	date TIMESTAMPTZ NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ,
	deleted_at TIMESTAMPTZ
);

CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions (date) WHERE deleted_at IS NULL;

CREATE TABLE IF NOT EXISTS budgets (
	id UUID PRIMARY KEY,
	user_id TEXT NOT NULL,
	method TEXT NOT NULL,
	frequency TEXT NOT NULL,
	start_date TIMESTAMPTZ NOT NULL,
	end_date TIMESTAMPTZ NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_budgets_user_period ON budgets (user_id, start_date, end_date);

CREATE TABLE IF NOT EXISTS budget_categories (
	id UUID PRIMARY KEY,
	budget_id UUID NOT NULL REFERENCES budgets (id) ON DELETE CASCADE,
	name TEXT NOT NULL,
	bucket TEXT NOT NULL,
	allocated NUMERIC(18,2) NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS category_mappings (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	raw_pattern TEXT NOT NULL UNIQUE,
	category TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Migrate applies the schema. Statements are idempotent so the call is safe
// on every startup.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}

	return nil
}
