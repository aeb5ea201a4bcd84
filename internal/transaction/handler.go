package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/injaz-systems/office-api/internal/feeledger"
	"github.com/injaz-systems/office-api/internal/sequence"
	"github.com/injaz-systems/office-api/internal/transactiontype"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Handler serves the transaction routes.
type Handler struct {
	Repo  *Repository
	Types *transactiontype.Repository
	Log   zerolog.Logger
}

func NewHandler(db *gorm.DB, log zerolog.Logger) *Handler {
	return &Handler{
		Repo:  NewRepository(db),
		Types: transactiontype.NewRepository(db),
		Log:   log,
	}
}

// Create handles POST /api/transactions. The fee ledger is seeded from, in
// order: explicit costDetails, explicit fees, the type's template. The
// aggregate columns are always recomputed from the resulting structure.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto createDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if dto.ClientID == 0 || dto.Title == "" {
		http.Error(w, "clientId and title are required", http.StatusBadRequest)
		return
	}

	fees := feeledger.Normalize(dto.CostDetails)
	if len(fees) == 0 {
		fees = feeledger.Normalize(dto.Fees)
	}
	if len(fees) == 0 && dto.Type != nil {
		t, err := h.Types.FindByID(*dto.Type)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "failed to load transaction type", http.StatusInternalServerError)
			return
		}
		if t != nil {
			fees = t.TemplateStructure()
		}
	}

	t := Transaction{
		Title:                 dto.Title,
		ClientID:              dto.ClientID,
		TransactionTypeID:     dto.Type,
		Priority:              defaultStr(dto.Priority, "متوسط"),
		Description:           dto.Description,
		Category:              dto.Category,
		ProjectClassification: dto.ProjectClassification,
		Status:                defaultStr(dto.Status, "Draft"),
		StatusColor:           defaultStr(dto.StatusColor, "#6b7280"),
		Location:              dto.Location,
		DeedNumber:            dto.DeedNumber,
		Progress:              dto.Progress,
		Fees:                  fees,
	}
	t.RefreshAggregate()

	// code reservation and insert share the tx so an insert failure does not
	// burn a code
	err := h.Repo.DB.Transaction(func(tx *gorm.DB) error {
		code, err := sequence.Next(tx, sequence.TransactionPrefix(sequence.CurrentYear()), sequence.TransactionWidth)
		if err != nil {
			return err
		}
		t.Code = code
		return h.Repo.Create(tx, &t)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			http.Error(w, "duplicate transaction data", http.StatusBadRequest)
			return
		}
		h.Log.Error().Err(err).Msg("create transaction")
		http.Error(w, "failed to create transaction", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(t)
}

// List handles GET /api/transactions. Rows written before the aggregate
// columns existed carry zeros; they are backfilled from the structure on the
// way out.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.FindAll()
	if err != nil {
		h.Log.Error().Err(err).Msg("list transactions")
		http.Error(w, "failed to list transactions", http.StatusInternalServerError)
		return
	}
	for i := range list {
		backfillAggregate(&list[i])
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// Get handles GET /api/transactions/{id}. The response always carries the
// categorized ledger in costDetails, expanding the type template when the
// transaction itself has no fees yet.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid transaction id", http.StatusBadRequest)
		return
	}
	t, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "transaction not found", http.StatusNotFound)
		return
	}

	costs := t.Fees
	if len(costs) == 0 && t.TransactionType != nil {
		costs = t.TransactionType.TemplateStructure()
	}
	if costs == nil {
		costs = feeledger.Structure{}
	}

	total, paid, remaining := t.TotalFees, t.PaidAmount, t.RemainingAmount
	if total == 0 && len(costs) > 0 {
		agg := feeledger.ComputeAggregate(costs)
		total, paid, remaining = agg.Total, agg.Paid, agg.Remaining
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(struct {
		*Transaction
		TotalFees       float64             `json:"totalFees"`
		PaidAmount      float64             `json:"paidAmount"`
		RemainingAmount float64             `json:"remainingAmount"`
		CostDetails     feeledger.Structure `json:"costDetails"`
	}{t, total, paid, remaining, costs})
}

// Update handles PUT /api/transactions/{id}. Two fee scenarios: a type
// change without explicit costs reseeds the ledger from the new type's
// template; explicit costDetails replace it outright. Both recompute the
// aggregate. Id, code and client are immutable.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid transaction id", http.StatusBadRequest)
		return
	}
	t, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "transaction not found", http.StatusNotFound)
		return
	}

	var dto updateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}

	newTypeID := dto.Type
	if newTypeID == nil {
		newTypeID = dto.TransactionTypeID
	}
	if newTypeID != nil {
		t.TransactionTypeID = newTypeID
		t.TransactionType = nil
		if len(dto.CostDetails) == 0 {
			typ, err := h.Types.FindByID(*newTypeID)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				http.Error(w, "failed to load transaction type", http.StatusInternalServerError)
				return
			}
			if typ != nil {
				if template := typ.TemplateStructure(); len(template) > 0 {
					t.Fees = template
					t.RefreshAggregate()
				}
			}
		}
	}

	if len(dto.CostDetails) > 0 {
		t.Fees = feeledger.Normalize(dto.CostDetails)
		t.RefreshAggregate()
	}

	applyStr(&t.Title, dto.Title)
	applyStr(&t.Priority, dto.Priority)
	applyStr(&t.Description, dto.Description)
	applyStr(&t.Category, dto.Category)
	applyStr(&t.ProjectClassification, dto.ProjectClassification)
	applyStr(&t.Status, dto.Status)
	applyStr(&t.StatusColor, dto.StatusColor)
	applyStr(&t.Location, dto.Location)
	applyStr(&t.DeedNumber, dto.DeedNumber)
	if dto.Progress != nil {
		t.Progress = *dto.Progress
	}

	if err := h.Repo.Update(h.Repo.DB, t); err != nil {
		h.Log.Error().Err(err).Msg("update transaction")
		http.Error(w, "failed to update transaction", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(t)
}

// Delete handles DELETE /api/transactions/{id}, removing tasks, payments and
// staff links with it.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid transaction id", http.StatusBadRequest)
		return
	}
	if _, err := h.Repo.FindByID(uint(id)); err != nil {
		http.Error(w, "transaction not found", http.StatusNotFound)
		return
	}
	if err := h.Repo.DeleteCascade(uint(id)); err != nil {
		h.Log.Error().Err(err).Msg("delete transaction")
		http.Error(w, "failed to delete transaction", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "transaction and related records deleted"})
}

// UpdateStaff handles PUT /api/transactions/{id}/staff: replace-all
// assignment.
func (h *Handler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid transaction id", http.StatusBadRequest)
		return
	}
	var dto staffDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}

	staff := make([]StaffAssignment, 0, len(dto.Staff))
	for _, s := range dto.Staff {
		staff = append(staff, StaffAssignment{EmployeeID: s.EmployeeID, Role: s.Role})
	}
	if err := h.Repo.ReplaceStaff(uint(id), staff); err != nil {
		h.Log.Error().Err(err).Msg("update transaction staff")
		http.Error(w, "failed to update staff", http.StatusInternalServerError)
		return
	}

	t, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "transaction not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(t)
}

func backfillAggregate(t *Transaction) {
	if t.TotalFees == 0 && len(t.Fees) > 0 {
		t.RefreshAggregate()
	}
}

func defaultStr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func applyStr(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
