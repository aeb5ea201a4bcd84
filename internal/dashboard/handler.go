// Package dashboard serves the aggregate numbers the office home screen
// shows: entity counts and the financial position across all transactions.
package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Handler struct {
	DB  *gorm.DB
	Log zerolog.Logger
}

func NewHandler(db *gorm.DB, log zerolog.Logger) *Handler {
	return &Handler{DB: db, Log: log}
}

type summary struct {
	Clients            int64 `json:"clients"`
	Transactions       int64 `json:"transactions"`
	ActiveTransactions int64 `json:"activeTransactions"`
	Tasks              int64 `json:"tasks"`
	OpenTasks          int64 `json:"openTasks"`
	Employees          int64 `json:"employees"`

	TotalFees      float64 `json:"totalFees"`
	TotalPaid      float64 `json:"totalPaid"`
	TotalRemaining float64 `json:"totalRemaining"`
}

// Summary handles GET /api/dashboard.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	var s summary

	counts := []struct {
		dst   *int64
		table string
		where string
		args  []any
	}{
		{&s.Clients, "clients", "", nil},
		{&s.Transactions, "transactions", "", nil},
		{&s.ActiveTransactions, "transactions", "status NOT IN ?", []any{[]string{"Completed", "Cancelled"}}},
		{&s.Tasks, "tasks", "", nil},
		{&s.OpenTasks, "tasks", "status NOT IN ?", []any{[]string{"Completed", "Cancelled"}}},
		{&s.Employees, "employees", "status = ?", []any{"active"}},
	}
	for _, c := range counts {
		q := h.DB.Table(c.table).Where("deleted_at IS NULL")
		if c.where != "" {
			q = q.Where(c.where, c.args...)
		}
		if err := q.Count(c.dst).Error; err != nil {
			h.Log.Error().Err(err).Str("table", c.table).Msg("dashboard count")
			http.Error(w, "failed to build dashboard", http.StatusInternalServerError)
			return
		}
	}

	var totals struct {
		Fees      float64
		Paid      float64
		Remaining float64
	}
	err := h.DB.Table("transactions").
		Where("deleted_at IS NULL").
		Select("COALESCE(SUM(total_fees),0) AS fees, COALESCE(SUM(paid_amount),0) AS paid, COALESCE(SUM(remaining_amount),0) AS remaining").
		Scan(&totals).Error
	if err != nil {
		h.Log.Error().Err(err).Msg("dashboard totals")
		http.Error(w, "failed to build dashboard", http.StatusInternalServerError)
		return
	}
	s.TotalFees = totals.Fees
	s.TotalPaid = totals.Paid
	s.TotalRemaining = totals.Remaining

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s)
}
