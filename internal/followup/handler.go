package followup

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
	var a Agent
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if a.Name == "" || a.Phone == "" {
		http.Error(w, "name and phone are required", http.StatusBadRequest)
		return
	}

	exists, err := h.Repo.Exists(a.NationalID, a.CommercialRegister)
	if err != nil {
		http.Error(w, "failed to check existing agents", http.StatusInternalServerError)
		return
	}
	if exists {
		http.Error(w, "agent already registered with this national id or commercial register", http.StatusBadRequest)
		return
	}

	a.ID = 0
	if a.Status == "" {
		a.Status = "active"
	}
	if err := h.Repo.Create(&a); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			http.Error(w, "agent already registered", http.StatusBadRequest)
			return
		}
		h.Log.Error().Err(err).Msg("create agent")
		http.Error(w, "failed to create agent", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(a)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.FindAll()
	if err != nil {
		h.Log.Error().Err(err).Msg("list agents")
		http.Error(w, "failed to list agents", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid agent id", http.StatusBadRequest)
		return
	}
	a, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "agent not found", http.StatusNotFound)
		return
	}
	stats, err := h.Repo.StatsFor(a.ID)
	if err != nil {
		h.Log.Error().Err(err).Msg("agent stats")
		http.Error(w, "failed to load agent stats", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"agent": a, "stats": stats})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid agent id", http.StatusBadRequest)
		return
	}
	a, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "agent not found", http.StatusNotFound)
		return
	}

	var dto struct {
		Name               *string  `json:"name"`
		Phone              *string  `json:"phone"`
		Email              *string  `json:"email"`
		Specialization     []string `json:"specialization"`
		GovernmentEntities []string `json:"governmentEntities"`
		Status             *string  `json:"status"`
		Notes              *string  `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if dto.Name != nil {
		a.Name = *dto.Name
	}
	if dto.Phone != nil {
		a.Phone = *dto.Phone
	}
	if dto.Email != nil {
		a.Email = *dto.Email
	}
	if dto.Specialization != nil {
		a.Specialization = dto.Specialization
	}
	if dto.GovernmentEntities != nil {
		a.GovernmentEntities = dto.GovernmentEntities
	}
	if dto.Status != nil {
		a.Status = *dto.Status
	}
	if dto.Notes != nil {
		a.Notes = *dto.Notes
	}

	if err := h.Repo.Update(a); err != nil {
		h.Log.Error().Err(err).Msg("update agent")
		http.Error(w, "failed to update agent", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(a)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid agent id", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Delete(uint(id)); err != nil {
		h.Log.Error().Err(err).Msg("delete agent")
		http.Error(w, "failed to delete agent", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
