package payment

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/injaz-systems/office-api/internal/feeledger"
	"github.com/injaz-systems/office-api/internal/transaction"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Handler serves the payment routes.
type Handler struct {
	Repo         *Repository
	Transactions *transaction.Repository
	Log          zerolog.Logger
}

func NewHandler(db *gorm.DB, log zerolog.Logger) *Handler {
	return &Handler{
		Repo:         NewRepository(db),
		Transactions: transaction.NewRepository(db),
		Log:          log,
	}
}

type createDTO struct {
	TransactionID string                 `json:"transactionId"`
	PaymentDate   string                 `json:"paymentDate"`
	IsFollowUpFee bool                   `json:"isFollowUpFee"`
	Notes         string                 `json:"notes"`
	ReceivedByID  *uint                  `json:"receivedById"`
	Allocations   []feeledger.Allocation `json:"allocations"`
}

// CreateCash handles POST /api/payments/cash: applies the allocations to the
// transaction's fee ledger and records the payment. Ledger update, aggregate
// refresh and the payment row are committed atomically so two concurrent
// payments for the same transaction cannot lose each other's items.
func (h *Handler) CreateCash(w http.ResponseWriter, r *http.Request) {
	var dto createDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}

	date := time.Now()
	if dto.PaymentDate != "" {
		parsed, err := time.Parse("2006-01-02", dto.PaymentDate)
		if err != nil {
			http.Error(w, "invalid paymentDate, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		date = parsed
	}

	category := CategoryOfficeFees
	if dto.IsFollowUpFee {
		category = CategoryFollowUpFees
	}

	var created Payment
	var unmatched []feeledger.Allocation

	err := h.Repo.DB.Transaction(func(tx *gorm.DB) error {
		txRepo := &transaction.Repository{DB: tx}
		t, err := txRepo.FindByRef(dto.TransactionID)
		if err != nil {
			return err
		}

		res, err := feeledger.ApplyAllocations(t.Fees, dto.Allocations)
		if err != nil {
			return err
		}
		unmatched = res.Unmatched

		t.Fees = res.Structure
		t.RefreshAggregate()
		if err := txRepo.Update(tx, t); err != nil {
			return err
		}

		created = Payment{
			Amount:        res.TotalAllocated,
			Date:          date,
			Method:        "Cash",
			Category:      category,
			IsFollowUpFee: dto.IsFollowUpFee,
			Notes:         dto.Notes,
			TransactionID: t.ID,
			ReceivedByID:  dto.ReceivedByID,
			Allocations:   dto.Allocations,
		}
		return h.Repo.Create(tx, &created)
	})
	if err != nil {
		switch {
		case errors.Is(err, feeledger.ErrNothingAllocated):
			http.Error(w, feeledger.ErrNothingAllocated.Error(), http.StatusBadRequest)
		case errors.Is(err, gorm.ErrRecordNotFound):
			http.Error(w, "transaction not found", http.StatusNotFound)
		default:
			h.Log.Error().Err(err).Msg("create cash payment")
			http.Error(w, "failed to record payment", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(struct {
		Payment
		UnmatchedAllocations []feeledger.Allocation `json:"unmatchedAllocations,omitempty"`
	}{created, unmatched})
}

// ListCash handles GET /api/payments/cash in the report shape the frontend
// lists expect.
func (h *Handler) ListCash(w http.ResponseWriter, r *http.Request) {
	payments, err := h.Repo.FindCash()
	if err != nil {
		h.Log.Error().Err(err).Msg("list cash payments")
		http.Error(w, "failed to fetch payments", http.StatusInternalServerError)
		return
	}

	type entry struct {
		ID            uint    `json:"id"`
		Amount        float64 `json:"amount"`
		PaymentDate   string  `json:"paymentDate"`
		PaymentFor    string  `json:"paymentFor"`
		IsFollowUpFee bool    `json:"isFollowUpFee"`
		Notes         string  `json:"notes"`
		HasReceipt    bool    `json:"hasReceipt"`
		TransactionID uint    `json:"transactionId"`
	}
	out := make([]entry, 0, len(payments))
	for _, p := range payments {
		paymentFor := p.Category
		if paymentFor == "" {
			paymentFor = CategoryOfficeFees
		}
		out = append(out, entry{
			ID:            p.ID,
			Amount:        p.Amount,
			PaymentDate:   p.Date.Format("2006-01-02"),
			PaymentFor:    paymentFor,
			IsFollowUpFee: p.IsFollowUpFee,
			Notes:         p.Notes,
			HasReceipt:    p.ReceiptImage != "",
			TransactionID: p.TransactionID,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

// ListByTransaction handles GET /api/payments/transaction/{ref}, where ref
// is a transaction id or code.
func (h *Handler) ListByTransaction(w http.ResponseWriter, r *http.Request) {
	t, err := h.Transactions.FindByRef(mux.Vars(r)["ref"])
	if err != nil {
		http.Error(w, "transaction not found", http.StatusNotFound)
		return
	}
	payments, err := h.Repo.FindByTransaction(t.ID)
	if err != nil {
		h.Log.Error().Err(err).Msg("list transaction payments")
		http.Error(w, "failed to fetch transaction payments", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payments)
}
