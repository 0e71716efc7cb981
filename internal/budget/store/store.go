package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/peopleperf/dailyowo/internal/budget"
	"github.com/peopleperf/dailyowo/internal/category"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreateBudget writes the budget and its categories atomically. Custom
// allocations are persisted through the category rows; the method's
// allocation map is not stored separately.
func (s *Store) CreateBudget(ctx context.Context, b *budget.Budget) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	budgetQuery := `
		INSERT INTO budgets (id, user_id, method, frequency, start_date, end_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`

	err = dbTx.QueryRowContext(ctx, budgetQuery,
		b.ID,
		b.UserID,
		b.Method.Type,
		b.Period.Frequency,
		b.Period.StartDate,
		b.Period.EndDate,
	).Scan(&b.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating budget: %w", err)
	}

	categoryQuery := `
		INSERT INTO budget_categories (id, budget_id, name, bucket, allocated)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, c := range b.Categories {
		if _, err := dbTx.ExecContext(ctx, categoryQuery, c.ID, b.ID, c.Name, c.Bucket, c.Allocated); err != nil {
			return fmt.Errorf("creating budget category: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing budget: %w", err)
	}

	return nil
}

const selectBudgetColumns = `b.id, b.user_id, b.method, b.frequency, b.start_date, b.end_date, b.created_at`

func (s *Store) GetBudget(ctx context.Context, id uuid.UUID) (*budget.Budget, error) {
	query := `SELECT ` + selectBudgetColumns + ` FROM budgets b WHERE b.id = $1`

	b, err := s.scanBudget(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, budget.ErrNotFound
		}

		return nil, fmt.Errorf("getting budget: %w", err)
	}

	if err := s.loadCategories(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// GetCurrentBudget returns the most recently created budget whose period
// covers asOf.
func (s *Store) GetCurrentBudget(ctx context.Context, userID string, asOf time.Time) (*budget.Budget, error) {
	query := `SELECT ` + selectBudgetColumns + `
		FROM budgets b
		WHERE b.user_id = $1 AND b.start_date <= $2 AND b.end_date > $2
		ORDER BY b.created_at DESC
		LIMIT 1`

	b, err := s.scanBudget(s.db.QueryRowContext(ctx, query, userID, asOf))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, budget.ErrNotFound
		}

		return nil, fmt.Errorf("getting current budget: %w", err)
	}

	if err := s.loadCategories(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *Store) ListBudgets(ctx context.Context, userID string) ([]*budget.Budget, error) {
	query := `SELECT ` + selectBudgetColumns + `
		FROM budgets b
		WHERE b.user_id = $1
		ORDER BY b.start_date DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing budgets: %w", err)
	}
	defer rows.Close()

	var budgets []*budget.Budget

	for rows.Next() {
		b, err := s.scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning budget: %w", err)
		}

		budgets = append(budgets, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating budget rows: %w", err)
	}

	for _, b := range budgets {
		if err := s.loadCategories(ctx, b); err != nil {
			return nil, err
		}
	}

	return budgets, nil
}

func (s *Store) DeleteBudget(ctx context.Context, id uuid.UUID) error {
	// budget_categories rows cascade.
	if _, err := s.db.ExecContext(ctx, `DELETE FROM budgets WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting budget: %w", err)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func (s *Store) scanBudget(sc scanner) (*budget.Budget, error) {
	var b budget.Budget

	var methodStr, frequencyStr string

	if err := sc.Scan(
		&b.ID, &b.UserID, &methodStr, &frequencyStr,
		&b.Period.StartDate, &b.Period.EndDate, &b.CreatedAt,
	); err != nil {
		return nil, err
	}

	b.Method.Type = budget.MethodType(methodStr)
	b.Period.Frequency = budget.Frequency(frequencyStr)

	return &b, nil
}

func (s *Store) loadCategories(ctx context.Context, b *budget.Budget) error {
	query := `
		SELECT id, name, bucket, allocated
		FROM budget_categories
		WHERE budget_id = $1
		ORDER BY name ASC
	`

	rows, err := s.db.QueryContext(ctx, query, b.ID)
	if err != nil {
		return fmt.Errorf("loading budget categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c budget.Category

		var bucketStr string

		if err := rows.Scan(&c.ID, &c.Name, &bucketStr, &c.Allocated); err != nil {
			return fmt.Errorf("scanning budget category: %w", err)
		}

		c.Bucket = category.Bucket(bucketStr)
		b.Categories = append(b.Categories, c)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating category rows: %w", err)
	}

	return nil
}
