package budget

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/peopleperf/dailyowo/internal/budget"
	"github.com/peopleperf/dailyowo/internal/transaction"
)

const defaultUserID = "default"

type Handler struct {
	svc   *budget.Service
	txSvc *transaction.Service
}

func NewHandler(svc *budget.Service, txSvc *transaction.Service) *Handler {
	return &Handler{svc: svc, txSvc: txSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/current", h.current)
	r.Get("/report", h.report)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
}

type createBudgetRequest struct {
	UserID      string                     `json:"user_id"`
	Method      budget.MethodType          `json:"method"`
	Allocations map[string]decimal.Decimal `json:"allocations,omitempty"`
	Income      decimal.Decimal            `json:"income"`
	Frequency   budget.Frequency           `json:"frequency"`
	StartDate   time.Time                  `json:"start_date"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.UserID == "" {
		req.UserID = defaultUserID
	}

	b, err := h.svc.CreateFromMethod(r.Context(), budget.CreateParams{
		UserID: req.UserID,
		Method: budget.Method{
			Type:        req.Method,
			Allocations: req.Allocations,
		},
		Income:    req.Income,
		Frequency: req.Frequency,
		StartDate: req.StartDate,
	})
	if err != nil {
		if errors.Is(err, budget.ErrUnsupportedMethod) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toBudgetResponse(b)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	budgets, err := h.svc.List(r.Context(), userID(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]budgetResponse, 0, len(budgets))
	for _, b := range budgets {
		resp = append(resp, toBudgetResponse(b))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) current(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.Current(r.Context(), userID(r), asOf(r))
	if err != nil {
		if errors.Is(err, budget.ErrNotFound) {
			http.Error(w, "no budget for this period", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toBudgetResponse(b)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// report evaluates the current budget against the transactions in its
// period. Without a budget the evaluation still runs and returns the
// zeroed report rather than a 404.
func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	user := userID(r)
	at := asOf(r)

	filter := transaction.ListFilter{}

	current, err := h.svc.Current(r.Context(), user, at)
	if err == nil {
		filter.StartDate = &current.Period.StartDate
		filter.EndDate = &current.Period.EndDate
	} else if !errors.Is(err, budget.ErrNotFound) {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	txs, err := h.txSvc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	report, err := h.svc.Report(r.Context(), user, at, deref(txs))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toReportResponse(report)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	b, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, budget.ErrNotFound) {
			http.Error(w, "budget not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toBudgetResponse(b)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func userID(r *http.Request) string {
	if s := r.URL.Query().Get("user_id"); s != "" {
		return s
	}

	return defaultUserID
}

func asOf(r *http.Request) time.Time {
	if s := r.URL.Query().Get("as_of"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			return t
		}
	}

	return time.Now()
}

func deref(txs []*transaction.Transaction) []transaction.Transaction {
	out := make([]transaction.Transaction, len(txs))
	for i, t := range txs {
		out[i] = *t
	}

	return out
}
