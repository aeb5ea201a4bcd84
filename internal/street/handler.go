package street

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/injaz-systems/office-api/internal/sequence"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Handler struct {
	DB   *gorm.DB
	Repo *Repository
	Log  zerolog.Logger
}

func NewHandler(db *gorm.DB, log zerolog.Logger) *Handler {
	return &Handler{DB: db, Repo: NewRepository(db), Log: log}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var s Street
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if s.NameAr == "" {
		http.Error(w, "nameAr is required", http.StatusBadRequest)
		return
	}
	s.ID = 0
	if s.Status == "" {
		s.Status = "active"
	}
	if s.Latitude == 0 && s.Longitude == 0 {
		s.Latitude = DefaultLatitude
		s.Longitude = DefaultLongitude
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		code, err := sequence.Next(tx, sequence.StreetPrefix(sequence.CurrentYear()), sequence.StreetWidth)
		if err != nil {
			return err
		}
		s.Code = code
		return tx.Create(&s).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			http.Error(w, "street already exists", http.StatusBadRequest)
			return
		}
		h.Log.Error().Err(err).Msg("create street")
		http.Error(w, "failed to create street", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(s)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.Repo.Find(Filter{
		Sector:   q.Get("sector"),
		District: q.Get("district"),
		Type:     q.Get("type"),
		Status:   q.Get("status"),
	})
	if err != nil {
		h.Log.Error().Err(err).Msg("list streets")
		http.Error(w, "failed to list streets", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid street id", http.StatusBadRequest)
		return
	}
	s, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "street not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid street id", http.StatusBadRequest)
		return
	}
	s, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "street not found", http.StatusNotFound)
		return
	}

	var dto struct {
		NameAr            *string        `json:"nameAr"`
		NameEn            *string        `json:"nameEn"`
		Sector            *string        `json:"sector"`
		District          *string        `json:"district"`
		Type              *string        `json:"type"`
		Status            *string        `json:"status"`
		WidthMeters       *float64       `json:"widthMeters"`
		Latitude          *float64       `json:"latitude"`
		Longitude         *float64       `json:"longitude"`
		RegulationDetails map[string]any `json:"regulationDetails"`
		Notes             *string        `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if dto.NameAr != nil {
		s.NameAr = *dto.NameAr
	}
	if dto.NameEn != nil {
		s.NameEn = *dto.NameEn
	}
	if dto.Sector != nil {
		s.Sector = *dto.Sector
	}
	if dto.District != nil {
		s.District = *dto.District
	}
	if dto.Type != nil {
		s.Type = *dto.Type
	}
	if dto.Status != nil {
		s.Status = *dto.Status
	}
	if dto.WidthMeters != nil {
		s.WidthMeters = *dto.WidthMeters
	}
	if dto.Latitude != nil {
		s.Latitude = *dto.Latitude
	}
	if dto.Longitude != nil {
		s.Longitude = *dto.Longitude
	}
	if dto.RegulationDetails != nil {
		s.RegulationDetails = dto.RegulationDetails
	}
	if dto.Notes != nil {
		s.Notes = *dto.Notes
	}

	if err := h.Repo.Update(s); err != nil {
		h.Log.Error().Err(err).Msg("update street")
		http.Error(w, "failed to update street", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid street id", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Delete(uint(id)); err != nil {
		h.Log.Error().Err(err).Msg("delete street")
		http.Error(w, "failed to delete street", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
