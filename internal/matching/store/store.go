package store

import (
	"context"
	"database/sql"
	"fmt"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// FindCategory returns the category of the longest pattern contained in the
// description, preferring the most recently learned mapping on ties.
func (s *Store) FindCategory(ctx context.Context, description string) (string, error) {
	query := `
		SELECT category
		FROM category_mappings
		WHERE $1 ILIKE '%' || raw_pattern || '%'
		ORDER BY LENGTH(raw_pattern) DESC, created_at DESC
		LIMIT 1
	`

	var categoryKey string

	err := s.db.QueryRowContext(ctx, query, description).Scan(&categoryKey)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}

		return "", fmt.Errorf("finding category: %w", err)
	}

	return categoryKey, nil
}

func (s *Store) CreateMapping(ctx context.Context, rawPattern, categoryKey string) error {
	query := `
		INSERT INTO category_mappings (raw_pattern, category, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (raw_pattern) DO UPDATE SET category = EXCLUDED.category
	`

	_, err := s.db.ExecContext(ctx, query, rawPattern, categoryKey)
	if err != nil {
		return fmt.Errorf("creating mapping: %w", err)
	}

	return nil
}
