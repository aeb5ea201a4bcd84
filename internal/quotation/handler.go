package quotation

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/injaz-systems/office-api/internal/auth"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Handler struct {
	Repo *Repository
	Log  zerolog.Logger
}

func NewHandler(db *gorm.DB, log zerolog.Logger) *Handler {
	return &Handler{Repo: NewRepository(db), Log: log}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var q Quotation
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if q.Number == "" || q.Title == "" || q.ClientID == 0 {
		http.Error(w, "number, title and clientId are required", http.StatusBadRequest)
		return
	}
	q.ID = 0
	q.Client = nil
	if q.Status == "" {
		q.Status = "pending"
	}
	if q.TaxRate == 0 {
		q.TaxRate = 15
	}
	q.Recalculate()
	if creator, ok := auth.EmployeeID(r.Context()); ok {
		q.CreatedByID = &creator
	}
	if err := h.Repo.Create(&q); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			http.Error(w, "quotation number already exists", http.StatusBadRequest)
			return
		}
		h.Log.Error().Err(err).Msg("create quotation")
		http.Error(w, "failed to create quotation", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(q)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var (
		list []Quotation
		err  error
	)
	if cid := r.URL.Query().Get("clientId"); cid != "" {
		id, convErr := strconv.Atoi(cid)
		if convErr != nil {
			http.Error(w, "invalid clientId", http.StatusBadRequest)
			return
		}
		list, err = h.Repo.FindByClient(uint(id))
	} else {
		list, err = h.Repo.FindAll()
	}
	if err != nil {
		h.Log.Error().Err(err).Msg("list quotations")
		http.Error(w, "failed to list quotations", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid quotation id", http.StatusBadRequest)
		return
	}
	q, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "quotation not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(q)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid quotation id", http.StatusBadRequest)
		return
	}
	q, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "quotation not found", http.StatusNotFound)
		return
	}

	var dto struct {
		Title      *string    `json:"title"`
		Items      []LineItem `json:"items"`
		TaxRate    *float64   `json:"taxRate"`
		Status     *string    `json:"status"`
		ValidUntil *time.Time `json:"validUntil"`
		Notes      *string    `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if dto.Title != nil {
		q.Title = *dto.Title
	}
	if dto.Items != nil {
		q.Items = dto.Items
	}
	if dto.TaxRate != nil {
		q.TaxRate = *dto.TaxRate
	}
	if dto.Status != nil {
		q.Status = *dto.Status
	}
	if dto.ValidUntil != nil {
		q.ValidUntil = dto.ValidUntil
	}
	if dto.Notes != nil {
		q.Notes = *dto.Notes
	}
	q.Recalculate()

	if err := h.Repo.Update(q); err != nil {
		h.Log.Error().Err(err).Msg("update quotation")
		http.Error(w, "failed to update quotation", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(q)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid quotation id", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Delete(uint(id)); err != nil {
		h.Log.Error().Err(err).Msg("delete quotation")
		http.Error(w, "failed to delete quotation", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
