package transactiontype

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/injaz-systems/office-api/internal/feeledger"
	"github.com/injaz-systems/office-api/internal/sequence"
	"gorm.io/gorm"
)

// Handler serves the transaction-type catalog routes.
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

type upsertDTO struct {
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	IsActive      *bool               `json:"isActive"`
	Category      string              `json:"category"`
	CategoryAr    string              `json:"categoryAr"`
	Duration      int                 `json:"duration"`
	EstimatedCost float64             `json:"estimatedCost"`
	Complexity    string              `json:"complexity"`
	Fees          []feeledger.FlatFee `json:"fees"`
	DefaultCosts  feeledger.Structure `json:"defaultCosts"`
	Tasks         json.RawMessage     `json:"tasks"`
	Stages        json.RawMessage     `json:"stages"`
	Documents     []string            `json:"documents"`
	Authorities   []string            `json:"authorities"`
	Warnings      []string            `json:"warnings"`
	Notes         []string            `json:"notes"`
}

// Create handles POST /api/transactions/types. The TT- code is generated,
// never taken from the payload.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto upsertDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if dto.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	code, err := sequence.Next(h.Repo.DB, sequence.TransactionTypePrefix, sequence.TransactionTypeWidth)
	if err != nil {
		http.Error(w, "failed to generate type code", http.StatusInternalServerError)
		return
	}

	active := true
	if dto.IsActive != nil {
		active = *dto.IsActive
	}

	t := TransactionType{
		Code:          code,
		Name:          dto.Name,
		Description:   dto.Description,
		IsActive:      active,
		Category:      dto.Category,
		CategoryAr:    dto.CategoryAr,
		Duration:      dto.Duration,
		EstimatedCost: dto.EstimatedCost,
		Complexity:    dto.Complexity,
		Fees:          dto.Fees,
		DefaultCosts:  dto.DefaultCosts,
		Tasks:         dto.Tasks,
		Stages:        dto.Stages,
		Documents:     dto.Documents,
		Authorities:   dto.Authorities,
		Warnings:      dto.Warnings,
		Notes:         dto.Notes,
	}
	if err := h.Repo.Create(&t); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			http.Error(w, fmt.Sprintf("type name %q is already in use", dto.Name), http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to create transaction type", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(t)
}

// ListFull handles GET /api/transactions/types/full.
func (h *Handler) ListFull(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.FindAll()
	if err != nil {
		http.Error(w, "failed to list transaction types", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// ListSimple handles GET /api/transactions/types: active types as
// {id, name: "Name (CODE)"} for dropdowns.
func (h *Handler) ListSimple(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.FindActive()
	if err != nil {
		http.Error(w, "failed to list transaction types", http.StatusInternalServerError)
		return
	}
	type entry struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
	out := make([]entry, 0, len(list))
	for _, t := range list {
		out = append(out, entry{ID: t.ID, Name: fmt.Sprintf("%s (%s)", t.Name, t.Code)})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

// Update handles PUT /api/transactions/types/{id}. The code is immutable.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid type id", http.StatusBadRequest)
		return
	}
	t, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "transaction type not found", http.StatusNotFound)
		return
	}

	var dto upsertDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if dto.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	t.Name = dto.Name
	t.Description = dto.Description
	if dto.IsActive != nil {
		t.IsActive = *dto.IsActive
	}
	t.Category = dto.Category
	t.CategoryAr = dto.CategoryAr
	t.Duration = dto.Duration
	t.EstimatedCost = dto.EstimatedCost
	t.Complexity = dto.Complexity
	t.Fees = dto.Fees
	t.DefaultCosts = dto.DefaultCosts
	t.Tasks = dto.Tasks
	t.Stages = dto.Stages
	t.Documents = dto.Documents
	t.Authorities = dto.Authorities
	t.Warnings = dto.Warnings
	t.Notes = dto.Notes

	if err := h.Repo.Update(t); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			http.Error(w, fmt.Sprintf("type name %q is already in use", dto.Name), http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to update transaction type", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(t)
}

// Delete handles DELETE /api/transactions/types/{id}. Types still referenced
// by transactions cannot be removed.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid type id", http.StatusBadRequest)
		return
	}
	t, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "transaction type not found", http.StatusNotFound)
		return
	}

	inUse, err := h.Repo.InUse(t.ID)
	if err != nil {
		http.Error(w, "failed to check type usage", http.StatusInternalServerError)
		return
	}
	if inUse {
		http.Error(w, "type is in use by existing transactions; reassign them first", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Delete(t); err != nil {
		http.Error(w, "failed to delete transaction type", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// TemplateFees handles GET /api/transactions/types/{id}/template-fees:
// the categorized fee template a new transaction of this type would get.
func (h *Handler) TemplateFees(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid type id", http.StatusBadRequest)
		return
	}
	t, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "transaction type not found", http.StatusNotFound)
		return
	}

	template := t.TemplateStructure()
	if template == nil {
		template = feeledger.Structure{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(template)
}
