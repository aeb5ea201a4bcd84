package contract

import (
	"encoding/json"
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
	var c Contract
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if c.Title == "" || c.ClientID == 0 {
		http.Error(w, "title and clientId are required", http.StatusBadRequest)
		return
	}
	c.ID = 0
	c.Client = nil
	if c.Status == "" {
		c.Status = "draft"
	}
	if creator, ok := auth.EmployeeID(r.Context()); ok {
		c.CreatedByID = &creator
	}
	if err := h.Repo.Create(&c); err != nil {
		h.Log.Error().Err(err).Msg("create contract")
		http.Error(w, "failed to create contract", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var (
		list []Contract
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
		h.Log.Error().Err(err).Msg("list contracts")
		http.Error(w, "failed to list contracts", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid contract id", http.StatusBadRequest)
		return
	}
	c, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "contract not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid contract id", http.StatusBadRequest)
		return
	}
	c, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "contract not found", http.StatusNotFound)
		return
	}

	var dto struct {
		Title     *string    `json:"title"`
		Value     *float64   `json:"value"`
		Status    *string    `json:"status"`
		StartDate *time.Time `json:"startDate"`
		EndDate   *time.Time `json:"endDate"`
		SignedAt  *time.Time `json:"signedAt"`
		Terms     *string    `json:"terms"`
		Notes     *string    `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if dto.Title != nil {
		c.Title = *dto.Title
	}
	if dto.Value != nil {
		c.Value = *dto.Value
	}
	if dto.Status != nil {
		c.Status = *dto.Status
	}
	if dto.StartDate != nil {
		c.StartDate = dto.StartDate
	}
	if dto.EndDate != nil {
		c.EndDate = dto.EndDate
	}
	if dto.SignedAt != nil {
		c.SignedAt = dto.SignedAt
	}
	if dto.Terms != nil {
		c.Terms = *dto.Terms
	}
	if dto.Notes != nil {
		c.Notes = *dto.Notes
	}

	if err := h.Repo.Update(c); err != nil {
		h.Log.Error().Err(err).Msg("update contract")
		http.Error(w, "failed to update contract", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid contract id", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Delete(uint(id)); err != nil {
		h.Log.Error().Err(err).Msg("delete contract")
		http.Error(w, "failed to delete contract", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
