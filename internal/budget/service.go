package budget

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/peopleperf/dailyowo/internal/transaction"
)

// ErrNotFound is returned when no budget exists for the requested period.
var ErrNotFound = errors.New("budget not found")

type Repository interface {
	CreateBudget(ctx context.Context, b *Budget) error
	GetBudget(ctx context.Context, id uuid.UUID) (*Budget, error)
	GetCurrentBudget(ctx context.Context, userID string, asOf time.Time) (*Budget, error)
	ListBudgets(ctx context.Context, userID string) ([]*Budget, error)
	DeleteBudget(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	UserID    string
	Method    Method
	Income    decimal.Decimal
	Frequency Frequency
	StartDate time.Time
}

// CreateFromMethod derives a budget from the method and persists it.
func (s *Service) CreateFromMethod(ctx context.Context, params CreateParams) (*Budget, error) {
	period := NewPeriod(params.Frequency, params.StartDate)

	b, err := NewFromMethod(params.Method, params.Income, period, params.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateBudget(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// Current returns the budget whose period covers asOf, or ErrNotFound.
func (s *Service) Current(ctx context.Context, userID string, asOf time.Time) (*Budget, error) {
	return s.repo.GetCurrentBudget(ctx, userID, asOf)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Budget, error) {
	return s.repo.GetBudget(ctx, id)
}

func (s *Service) List(ctx context.Context, userID string) ([]*Budget, error) {
	return s.repo.ListBudgets(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteBudget(ctx, id)
}

// Report evaluates the user's current budget against the given transactions.
// A missing budget is not an error: the evaluation runs with a nil budget
// and yields the zeroed sentinel report.
func (s *Service) Report(ctx context.Context, userID string, asOf time.Time, txs []transaction.Transaction) (Report, error) {
	current, err := s.repo.GetCurrentBudget(ctx, userID, asOf)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Evaluate(txs, nil), nil
		}

		return Report{}, err
	}

	return Evaluate(txs, current), nil
}
