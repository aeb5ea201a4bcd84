package employee

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/injaz-systems/office-api/internal/auth"
	"github.com/injaz-systems/office-api/internal/utils"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Handler serves the employee and login routes.
type Handler struct {
	Repo *Repository
	Log  zerolog.Logger
}

func NewHandler(db *gorm.DB, log zerolog.Logger) *Handler {
	return &Handler{Repo: NewRepository(db), Log: log}
}

type registerDTO struct {
	Name       string  `json:"name"`
	NameEn     string  `json:"nameEn"`
	NationalID string  `json:"nationalId"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Password   string  `json:"password"`
	Position   string  `json:"position"`
	Department string  `json:"department"`
	HireDate   string  `json:"hireDate"`
	BaseSalary float64 `json:"baseSalary"`
	Type       string  `json:"type"`
	Status     string  `json:"status"`

	Nationality string `json:"nationality"`
	GosiNumber  string `json:"gosiNumber"`
	IqamaNumber string `json:"iqamaNumber"`
}

// Register handles POST /api/auth/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto registerDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if dto.Name == "" || dto.Email == "" || dto.Password == "" || dto.NationalID == "" || dto.Phone == "" {
		http.Error(w, "name, email, password, nationalId and phone are required", http.StatusBadRequest)
		return
	}

	exists, err := h.Repo.Exists(dto.NationalID, dto.Email, dto.Phone)
	if err != nil {
		http.Error(w, "failed to check existing employees", http.StatusInternalServerError)
		return
	}
	if exists {
		http.Error(w, "employee already registered with this national id, email or phone", http.StatusBadRequest)
		return
	}

	hash, err := utils.HashPassword(dto.Password)
	if err != nil {
		http.Error(w, "failed to hash password", http.StatusInternalServerError)
		return
	}

	hireDate := time.Now()
	if dto.HireDate != "" {
		if parsed, err := time.Parse("2006-01-02", dto.HireDate); err == nil {
			hireDate = parsed
		}
	}

	e := Employee{
		// last six digits of the clock, matching the legacy registration codes
		Code:       fmt.Sprintf("EMP-%06d", time.Now().UnixMilli()%1000000),
		Name:       dto.Name,
		NameEn:     dto.NameEn,
		NationalID: dto.NationalID,
		Email:      dto.Email,
		Phone:      dto.Phone,
		Password:   hash,
		Position:   defaultStr(dto.Position, "مهندس"),
		Department: defaultStr(dto.Department, "الإدارة الهندسية"),
		HireDate:   hireDate,
		BaseSalary: dto.BaseSalary,
		Type:       dto.Type,
		Status:     defaultStr(dto.Status, StatusActive),

		Nationality: dto.Nationality,
		GosiNumber:  dto.GosiNumber,
		IqamaNumber: dto.IqamaNumber,
	}
	if err := h.Repo.Create(&e); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			http.Error(w, "employee already registered", http.StatusBadRequest)
			return
		}
		h.Log.Error().Err(err).Msg("register employee")
		http.Error(w, "failed to create employee", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{"message": "employee account created", "employee": e})
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}

	e, err := h.Repo.FindByEmail(dto.Email)
	if err != nil || !utils.CheckPassword(e.Password, dto.Password) {
		http.Error(w, "invalid email or password", http.StatusUnauthorized)
		return
	}
	if e.Status != StatusActive {
		http.Error(w, "account is disabled", http.StatusForbidden)
		return
	}
	if e.FrozenUntil != nil && e.FrozenUntil.After(time.Now()) {
		http.Error(w, "account is frozen: "+e.FrozenReason, http.StatusForbidden)
		return
	}

	token, err := auth.GenerateToken(e.ID)
	if err != nil {
		h.Log.Error().Err(err).Msg("generate token")
		http.Error(w, "failed to issue token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"token": token, "employee": e})
}

// Me handles GET /api/employees/me.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.EmployeeID(r.Context())
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}
	e, err := h.Repo.FindByID(id)
	if err != nil {
		http.Error(w, "employee not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(e)
}

// List handles GET /api/employees.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.FindAll()
	if err != nil {
		h.Log.Error().Err(err).Msg("list employees")
		http.Error(w, "failed to list employees", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// Get handles GET /api/employees/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid employee id", http.StatusBadRequest)
		return
	}
	e, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "employee not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(e)
}

// Update handles PUT /api/employees/{id}. Password, email and national id
// are not updatable through this route.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid employee id", http.StatusBadRequest)
		return
	}
	e, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "employee not found", http.StatusNotFound)
		return
	}

	var dto struct {
		Name              *string    `json:"name"`
		NameEn            *string    `json:"nameEn"`
		Phone             *string    `json:"phone"`
		Position          *string    `json:"position"`
		Department        *string    `json:"department"`
		BaseSalary        *float64   `json:"baseSalary"`
		JobLevel          *string    `json:"jobLevel"`
		Type              *string    `json:"type"`
		Status            *string    `json:"status"`
		Nationality       *string    `json:"nationality"`
		GosiNumber        *string    `json:"gosiNumber"`
		IqamaNumber       *string    `json:"iqamaNumber"`
		PerformanceRating *float64   `json:"performanceRating"`
		FrozenUntil       *time.Time `json:"frozenUntil"`
		FrozenReason      *string    `json:"frozenReason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}

	applyStr(&e.Name, dto.Name)
	applyStr(&e.NameEn, dto.NameEn)
	applyStr(&e.Phone, dto.Phone)
	applyStr(&e.Position, dto.Position)
	applyStr(&e.Department, dto.Department)
	applyStr(&e.JobLevel, dto.JobLevel)
	applyStr(&e.Type, dto.Type)
	applyStr(&e.Status, dto.Status)
	applyStr(&e.Nationality, dto.Nationality)
	applyStr(&e.GosiNumber, dto.GosiNumber)
	applyStr(&e.IqamaNumber, dto.IqamaNumber)
	applyStr(&e.FrozenReason, dto.FrozenReason)
	if dto.BaseSalary != nil {
		e.BaseSalary = *dto.BaseSalary
	}
	if dto.PerformanceRating != nil {
		e.PerformanceRating = *dto.PerformanceRating
	}
	if dto.FrozenUntil != nil {
		e.FrozenUntil = dto.FrozenUntil
	}

	if err := h.Repo.Update(e); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			http.Error(w, "phone already in use", http.StatusBadRequest)
			return
		}
		h.Log.Error().Err(err).Msg("update employee")
		http.Error(w, "failed to update employee", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(e)
}

// Delete handles DELETE /api/employees/{id}: the row is archived, not
// removed, because transactions and tasks keep referencing it.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid employee id", http.StatusBadRequest)
		return
	}
	e, err := h.Repo.Archive(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "employee not found", http.StatusNotFound)
			return
		}
		h.Log.Error().Err(err).Msg("archive employee")
		http.Error(w, "failed to archive employee", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"message": "employee archived", "employee": e})
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
