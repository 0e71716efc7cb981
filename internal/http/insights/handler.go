package insights

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/peopleperf/dailyowo/internal/networth"
	"github.com/peopleperf/dailyowo/internal/report"
	"github.com/peopleperf/dailyowo/internal/transaction"
)

// Handler serves the derived insight reports. Every endpoint loads the
// transaction history and runs one of the pure calculators over it; nothing
// here is persisted.
type Handler struct {
	txSvc *transaction.Service
}

func NewHandler(txSvc *transaction.Service) *Handler {
	return &Handler{txSvc: txSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/networth", h.netWorth)
	r.Get("/income", h.income)
	r.Get("/expenses", h.expenses)
	r.Get("/savings", h.savings)
	r.Get("/health", h.health)
}

type goalResponse struct {
	Type          networth.GoalType `json:"type"`
	Name          string            `json:"name"`
	CurrentAmount decimal.Decimal   `json:"current_amount"`
	TargetAmount  decimal.Decimal   `json:"target_amount"`
	Progress      float64           `json:"progress"`
	IsCompleted   bool              `json:"is_completed"`
}

type netWorthResponse struct {
	TotalAssets      decimal.Decimal `json:"total_assets"`
	TotalLiabilities decimal.Decimal `json:"total_liabilities"`
	NetWorth         decimal.Decimal `json:"net_worth"`
	SavingsGoals     []goalResponse  `json:"savings_goals"`
	GrowthPercentage float64         `json:"growth_percentage"`
}

func (h *Handler) netWorth(w http.ResponseWriter, r *http.Request) {
	txs, err := h.txSvc.List(r.Context(), transaction.ListFilter{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	opts := networth.Options{AsOf: queryDate(r, "as_of")}

	if s := r.URL.Query().Get("monthly_expenses"); s != "" {
		if d, err := decimal.NewFromString(s); err == nil {
			opts.MonthlyExpenses = d
		}
	}

	if s := r.URL.Query().Get("prior_net_worth"); s != "" {
		if d, err := decimal.NewFromString(s); err == nil {
			opts.PriorNetWorth = d
		}
	}

	summary := networth.Calculate(deref(txs), opts)

	goals := make([]goalResponse, 0, len(summary.SavingsGoals))
	for _, g := range summary.SavingsGoals {
		goals = append(goals, goalResponse{
			Type:          g.Type,
			Name:          g.Name,
			CurrentAmount: g.CurrentAmount,
			TargetAmount:  g.TargetAmount,
			Progress:      g.Progress,
			IsCompleted:   g.IsCompleted,
		})
	}

	encode(w, netWorthResponse{
		TotalAssets:      summary.TotalAssets,
		TotalLiabilities: summary.TotalLiabilities,
		NetWorth:         summary.NetWorth,
		SavingsGoals:     goals,
		GrowthPercentage: summary.GrowthPercentage,
	})
}

type incomeResponse struct {
	Total            decimal.Decimal            `json:"total"`
	ByCategory       map[string]decimal.Decimal `json:"by_category"`
	MonthlyIncome    decimal.Decimal            `json:"monthly_income"`
	GrowthPercentage float64                    `json:"growth_percentage"`
}

func (h *Handler) income(w http.ResponseWriter, r *http.Request) {
	txs, start, end, ok := h.load(w, r)
	if !ok {
		return
	}

	rep := report.Income(txs, start, end)

	encode(w, incomeResponse{
		Total:            rep.Total,
		ByCategory:       rep.ByCategory,
		MonthlyIncome:    rep.MonthlyIncome,
		GrowthPercentage: rep.GrowthPercentage,
	})
}

type natureResponse struct {
	Essential     decimal.Decimal `json:"essential"`
	Fixed         decimal.Decimal `json:"fixed"`
	Variable      decimal.Decimal `json:"variable"`
	Discretionary decimal.Decimal `json:"discretionary"`
}

type expenseResponse struct {
	Total            decimal.Decimal            `json:"total"`
	ByCategory       map[string]decimal.Decimal `json:"by_category"`
	ByNature         natureResponse             `json:"by_nature"`
	MonthlyExpenses  decimal.Decimal            `json:"monthly_expenses"`
	GrowthPercentage float64                    `json:"growth_percentage"`
}

func (h *Handler) expenses(w http.ResponseWriter, r *http.Request) {
	txs, start, end, ok := h.load(w, r)
	if !ok {
		return
	}

	rep := report.Expenses(txs, start, end)

	encode(w, expenseResponse{
		Total:      rep.Total,
		ByCategory: rep.ByCategory,
		ByNature: natureResponse{
			Essential:     rep.ByNature.Essential,
			Fixed:         rep.ByNature.Fixed,
			Variable:      rep.ByNature.Variable,
			Discretionary: rep.ByNature.Discretionary,
		},
		MonthlyExpenses:  rep.MonthlyExpenses,
		GrowthPercentage: rep.GrowthPercentage,
	})
}

type savingsResponse struct {
	Rate           float64         `json:"rate"`
	TotalSavings   decimal.Decimal `json:"total_savings"`
	MonthlySavings decimal.Decimal `json:"monthly_savings"`
	Streak         int             `json:"streak"`
}

func (h *Handler) savings(w http.ResponseWriter, r *http.Request) {
	txs, start, end, ok := h.load(w, r)
	if !ok {
		return
	}

	rep := report.Savings(txs, start, end)

	encode(w, savingsResponse{
		Rate:           rep.Rate,
		TotalSavings:   rep.TotalSavings,
		MonthlySavings: rep.MonthlySavings,
		Streak:         rep.Streak,
	})
}

type healthBreakdownResponse struct {
	NetWorth    float64 `json:"net_worth"`
	SavingsRate float64 `json:"savings_rate"`
	DebtRatio   float64 `json:"debt_ratio"`
}

type healthResponse struct {
	Overall         int                     `json:"overall"`
	Breakdown       healthBreakdownResponse `json:"breakdown"`
	Recommendations []string                `json:"recommendations"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	txs, start, end, ok := h.load(w, r)
	if !ok {
		return
	}

	rep := report.FinancialHealth(txs, start, end)

	encode(w, healthResponse{
		Overall: rep.Overall,
		Breakdown: healthBreakdownResponse{
			NetWorth:    rep.Breakdown.NetWorth,
			SavingsRate: rep.Breakdown.SavingsRate,
			DebtRatio:   rep.Breakdown.DebtRatio,
		},
		Recommendations: rep.Recommendations,
	})
}

// load fetches the full transaction history and resolves the report window.
// The window defaults to the current calendar month to date.
func (h *Handler) load(w http.ResponseWriter, r *http.Request) ([]transaction.Transaction, time.Time, time.Time, bool) {
	txs, err := h.txSvc.List(r.Context(), transaction.ListFilter{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, time.Time{}, time.Time{}, false
	}

	end := queryDate(r, "end_date")
	if end.IsZero() {
		end = time.Now()
	}

	start := queryDate(r, "start_date")
	if start.IsZero() {
		start = time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, end.Location())
	}

	return deref(txs), start, end, true
}

func queryDate(r *http.Request, name string) time.Time {
	if s := r.URL.Query().Get(name); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			return t
		}
	}

	return time.Time{}
}

func encode(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func deref(txs []*transaction.Transaction) []transaction.Transaction {
	out := make([]transaction.Transaction, len(txs))
	for i, t := range txs {
		out[i] = *t
	}

	return out
}
