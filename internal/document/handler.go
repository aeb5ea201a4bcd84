package document

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/injaz-systems/office-api/internal/auth"
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
	var d Document
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if d.Title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}
	d.ID = 0
	if uploader, ok := auth.EmployeeID(r.Context()); ok {
		d.UploadedByID = &uploader
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		code, err := sequence.Next(tx, sequence.DocumentPrefix, sequence.DocumentWidth)
		if err != nil {
			return err
		}
		d.Code = code
		return tx.Create(&d).Error
	})
	if err != nil {
		h.Log.Error().Err(err).Msg("create document")
		http.Error(w, "failed to create document", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(d)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var (
		list []Document
		err  error
	)
	switch {
	case r.URL.Query().Get("clientId") != "":
		id, convErr := strconv.Atoi(r.URL.Query().Get("clientId"))
		if convErr != nil {
			http.Error(w, "invalid clientId", http.StatusBadRequest)
			return
		}
		list, err = h.Repo.FindByClient(uint(id))
	case r.URL.Query().Get("transactionId") != "":
		id, convErr := strconv.Atoi(r.URL.Query().Get("transactionId"))
		if convErr != nil {
			http.Error(w, "invalid transactionId", http.StatusBadRequest)
			return
		}
		list, err = h.Repo.FindByTransaction(uint(id))
	default:
		list, err = h.Repo.FindAll()
	}
	if err != nil {
		h.Log.Error().Err(err).Msg("list documents")
		http.Error(w, "failed to list documents", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid document id", http.StatusBadRequest)
		return
	}
	d, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "document not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(d)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid document id", http.StatusBadRequest)
		return
	}
	d, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "document not found", http.StatusNotFound)
		return
	}

	var dto struct {
		Title         *string `json:"title"`
		Category      *string `json:"category"`
		ClientID      *uint   `json:"clientId"`
		TransactionID *uint   `json:"transactionId"`
		Notes         *string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if dto.Title != nil {
		d.Title = *dto.Title
	}
	if dto.Category != nil {
		d.Category = *dto.Category
	}
	if dto.ClientID != nil {
		d.ClientID = dto.ClientID
	}
	if dto.TransactionID != nil {
		d.TransactionID = dto.TransactionID
	}
	if dto.Notes != nil {
		d.Notes = *dto.Notes
	}

	if err := h.Repo.Update(d); err != nil {
		h.Log.Error().Err(err).Msg("update document")
		http.Error(w, "failed to update document", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(d)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid document id", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Delete(uint(id)); err != nil {
		h.Log.Error().Err(err).Msg("delete document")
		http.Error(w, "failed to delete document", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
