package export

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/peopleperf/dailyowo/internal/transaction"
)

// Mock Repository
type mockRepo struct {
	listTransactionsFunc func(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error)
}

func (m *mockRepo) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	return nil
}

func (m *mockRepo) GetTransaction(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	return nil, nil
}

func (m *mockRepo) UpdateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	return nil
}

func (m *mockRepo) ListTransactions(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	if m.listTransactionsFunc != nil {
		return m.listTransactionsFunc(ctx, filter)
	}

	return nil, nil
}
func (m *mockRepo) DeleteTransaction(ctx context.Context, id uuid.UUID) error { return nil }

func (m *mockRepo) BeginImport(ctx context.Context, minDate, maxDate time.Time) (transaction.ImportTx, error) {
	return nil, nil
}

func TestService_WriteCSV(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	repo := &mockRepo{
		listTransactionsFunc: func(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
			return []*transaction.Transaction{
				{
					ID:          uuid.New(),
					Type:        transaction.TypeExpense,
					Amount:      decimal.NewFromFloat(42.5),
					Currency:    "EUR",
					Category:    "groceries",
					Description: "Supermarket",
					Date:        date,
				},
				{
					ID:          uuid.New(),
					Type:        transaction.TypeIncome,
					Amount:      decimal.NewFromInt(5000),
					Currency:    "EUR",
					Category:    "salary",
					Description: "March salary",
					Date:        date,
				},
			}, nil
		},
	}

	service := NewService(transaction.NewService(repo))

	var buf bytes.Buffer

	count, err := service.WriteCSV(context.Background(), transaction.ListFilter{}, &buf)
	if err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	if count != 2 {
		t.Fatalf("expected 2 transactions written, got %d", count)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}

	if lines[0] != "Date,Type,Amount,Currency,Category,Description" {
		t.Errorf("unexpected header: %s", lines[0])
	}

	if lines[1] != "2024-03-15,expense,42.50,EUR,groceries,Supermarket" {
		t.Errorf("unexpected row: %s", lines[1])
	}

	if lines[2] != "2024-03-15,income,5000.00,EUR,salary,March salary" {
		t.Errorf("unexpected row: %s", lines[2])
	}
}

func TestService_WriteCSV_Empty(t *testing.T) {
	service := NewService(transaction.NewService(&mockRepo{}))

	var buf bytes.Buffer

	count, err := service.WriteCSV(context.Background(), transaction.ListFilter{}, &buf)
	if err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	if count != 0 {
		t.Fatalf("expected 0 transactions, got %d", count)
	}

	if strings.TrimSpace(buf.String()) != "Date,Type,Amount,Currency,Category,Description" {
		t.Errorf("expected header only, got %q", buf.String())
	}
}
