package budget

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/peopleperf/dailyowo/internal/budget"
)

type categoryResponse struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Bucket     string          `json:"bucket"`
	Allocated  decimal.Decimal `json:"allocated"`
	Spent      decimal.Decimal `json:"spent"`
	OverBudget bool            `json:"over_budget"`
}

type budgetResponse struct {
	ID          uuid.UUID                  `json:"id"`
	UserID      string                     `json:"user_id"`
	Method      budget.MethodType          `json:"method"`
	Allocations map[string]decimal.Decimal `json:"allocations,omitempty"`
	Frequency   budget.Frequency           `json:"frequency"`
	StartDate   time.Time                  `json:"start_date"`
	EndDate     time.Time                  `json:"end_date"`
	Categories  []categoryResponse         `json:"categories"`
	CreatedAt   time.Time                  `json:"created_at"`
}

type healthResponse struct {
	Score       int           `json:"score"`
	Status      budget.Status `json:"status"`
	Suggestions []string      `json:"suggestions,omitempty"`
}

type alertResponse struct {
	Category string          `json:"category"`
	Overage  decimal.Decimal `json:"overage"`
	Severity budget.Severity `json:"severity"`
}

type reportResponse struct {
	CurrentBudget  *budgetResponse `json:"current_budget,omitempty"`
	TotalIncome    decimal.Decimal `json:"total_income"`
	TotalAllocated decimal.Decimal `json:"total_allocated"`
	TotalSpent     decimal.Decimal `json:"total_spent"`
	Unallocated    decimal.Decimal `json:"unallocated"`
	Health         healthResponse  `json:"health"`
	Alerts         []alertResponse `json:"alerts,omitempty"`
}

func toBudgetResponse(b *budget.Budget) budgetResponse {
	categories := make([]categoryResponse, 0, len(b.Categories))
	for _, c := range b.Categories {
		categories = append(categories, categoryResponse{
			ID:         c.ID,
			Name:       c.Name,
			Bucket:     string(c.Bucket),
			Allocated:  c.Allocated,
			Spent:      c.Spent,
			OverBudget: c.OverBudget,
		})
	}

	return budgetResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		Method:      b.Method.Type,
		Allocations: b.Method.Allocations,
		Frequency:   b.Period.Frequency,
		StartDate:   b.Period.StartDate,
		EndDate:     b.Period.EndDate,
		Categories:  categories,
		CreatedAt:   b.CreatedAt,
	}
}

func toReportResponse(rep budget.Report) reportResponse {
	resp := reportResponse{
		TotalIncome:    rep.TotalIncome,
		TotalAllocated: rep.TotalAllocated,
		TotalSpent:     rep.TotalSpent,
		Unallocated:    rep.Unallocated,
		Health: healthResponse{
			Score:       rep.Health.Score,
			Status:      rep.Health.Status,
			Suggestions: rep.Health.Suggestions,
		},
	}

	if rep.CurrentBudget != nil {
		b := toBudgetResponse(rep.CurrentBudget)
		resp.CurrentBudget = &b
	}

	for _, a := range rep.Alerts {
		resp.Alerts = append(resp.Alerts, alertResponse{
			Category: a.Category,
			Overage:  a.Overage,
			Severity: a.Severity,
		})
	}

	return resp
}
