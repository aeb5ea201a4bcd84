package task

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

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

type upsertDTO struct {
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Status        string     `json:"status"`
	Priority      string     `json:"priority"`
	DueDate       *time.Time `json:"dueDate"`
	TransactionID *uint      `json:"transactionId"`
	AssigneeID    *uint      `json:"assigneeId"`
	AgentID       *uint      `json:"agentId"`
	Notes         string     `json:"notes"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto upsertDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if dto.Title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}

	t := Task{
		Title:         dto.Title,
		Description:   dto.Description,
		Status:        StatusNew,
		Priority:      dto.Priority,
		DueDate:       dto.DueDate,
		TransactionID: dto.TransactionID,
		AssigneeID:    dto.AssigneeID,
		AgentID:       dto.AgentID,
		Notes:         dto.Notes,
	}
	if dto.Status != "" {
		t.Status = NormalizeStatus(dto.Status)
	}
	if t.Priority == "" {
		t.Priority = "متوسط"
	}
	if creator, ok := auth.EmployeeID(r.Context()); ok {
		t.CreatedByID = &creator
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		code, err := sequence.Next(tx, sequence.TaskPrefix(sequence.CurrentYear()), sequence.TaskWidth)
		if err != nil {
			return err
		}
		t.Code = code
		return tx.Create(&t).Error
	})
	if err != nil {
		h.Log.Error().Err(err).Msg("create task")
		http.Error(w, "failed to create task", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(t)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var (
		list []Task
		err  error
	)
	if txID := r.URL.Query().Get("transactionId"); txID != "" {
		id, convErr := strconv.Atoi(txID)
		if convErr != nil {
			http.Error(w, "invalid transactionId", http.StatusBadRequest)
			return
		}
		list, err = h.Repo.FindByTransaction(uint(id))
	} else {
		list, err = h.Repo.FindAll()
	}
	if err != nil {
		h.Log.Error().Err(err).Msg("list tasks")
		http.Error(w, "failed to list tasks", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// Mine handles GET /api/tasks/mine: the caller's assigned tasks.
func (h *Handler) Mine(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.EmployeeID(r.Context())
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}
	list, err := h.Repo.FindByAssignee(id)
	if err != nil {
		h.Log.Error().Err(err).Msg("list my tasks")
		http.Error(w, "failed to list tasks", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid task id", http.StatusBadRequest)
		return
	}
	t, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "task not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(t)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid task id", http.StatusBadRequest)
		return
	}
	t, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "task not found", http.StatusNotFound)
		return
	}

	var dto struct {
		Title       *string    `json:"title"`
		Description *string    `json:"description"`
		Status      *string    `json:"status"`
		Priority    *string    `json:"priority"`
		DueDate     *time.Time `json:"dueDate"`
		AssigneeID  *uint      `json:"assigneeId"`
		Notes       *string    `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if dto.Title != nil {
		t.Title = *dto.Title
	}
	if dto.Description != nil {
		t.Description = *dto.Description
	}
	if dto.Status != nil {
		next := NormalizeStatus(*dto.Status)
		if next == StatusCompleted && t.Status != StatusCompleted {
			now := time.Now()
			t.CompletedAt = &now
		}
		t.Status = next
	}
	if dto.Priority != nil {
		t.Priority = *dto.Priority
	}
	if dto.DueDate != nil {
		t.DueDate = dto.DueDate
	}
	if dto.AssigneeID != nil {
		t.AssigneeID = dto.AssigneeID
	}
	if dto.Notes != nil {
		t.Notes = *dto.Notes
	}

	if err := h.Repo.Update(t); err != nil {
		h.Log.Error().Err(err).Msg("update task")
		http.Error(w, "failed to update task", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(t)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid task id", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "task not found", http.StatusNotFound)
			return
		}
		h.Log.Error().Err(err).Msg("delete task")
		http.Error(w, "failed to delete task", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
