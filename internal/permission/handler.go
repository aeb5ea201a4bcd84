package permission

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
	var p Permission
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if p.Code == "" || p.Name == "" {
		http.Error(w, "code and name are required", http.StatusBadRequest)
		return
	}
	p.ID = 0
	if err := h.Repo.Create(&p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			http.Error(w, "permission code already exists", http.StatusBadRequest)
			return
		}
		h.Log.Error().Err(err).Msg("create permission")
		http.Error(w, "failed to create permission", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var (
		list []Permission
		err  error
	)
	if screen := r.URL.Query().Get("screenId"); screen != "" {
		list, err = h.Repo.FindByScreen(screen)
	} else {
		list, err = h.Repo.FindAll()
	}
	if err != nil {
		h.Log.Error().Err(err).Msg("list permissions")
		http.Error(w, "failed to list permissions", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid permission id", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "permission not found", http.StatusNotFound)
		return
	}

	var dto struct {
		Name       *string `json:"name"`
		NameEn     *string `json:"nameEn"`
		Level      *int    `json:"level"`
		ScreenID   *string `json:"screenId"`
		ScreenName *string `json:"screenName"`
		ActionType *string `json:"actionType"`
		ModifiedBy *string `json:"modifiedBy"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if dto.Name != nil {
		p.Name = *dto.Name
	}
	if dto.NameEn != nil {
		p.NameEn = *dto.NameEn
	}
	if dto.Level != nil {
		p.Level = *dto.Level
	}
	if dto.ScreenID != nil {
		p.ScreenID = *dto.ScreenID
	}
	if dto.ScreenName != nil {
		p.ScreenName = *dto.ScreenName
	}
	if dto.ActionType != nil {
		p.ActionType = *dto.ActionType
	}
	if dto.ModifiedBy != nil {
		p.ModifiedBy = *dto.ModifiedBy
	}

	if err := h.Repo.Update(p); err != nil {
		h.Log.Error().Err(err).Msg("update permission")
		http.Error(w, "failed to update permission", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid permission id", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Delete(uint(id)); err != nil {
		h.Log.Error().Err(err).Msg("delete permission")
		http.Error(w, "failed to delete permission", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
