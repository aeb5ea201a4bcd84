package role

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/injaz-systems/office-api/internal/permission"
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

type upsertDTO struct {
	Code             string   `json:"code"`
	NameAr           string   `json:"nameAr"`
	NameEn           string   `json:"nameEn"`
	Level            int      `json:"level"`
	Department       string   `json:"department"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
	PermissionIDs    []uint   `json:"permissionIds"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto upsertDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if dto.Code == "" || dto.NameAr == "" {
		http.Error(w, "code and nameAr are required", http.StatusBadRequest)
		return
	}

	role := JobRole{
		Code:             dto.Code,
		NameAr:           dto.NameAr,
		NameEn:           dto.NameEn,
		Level:            dto.Level,
		Department:       dto.Department,
		Description:      dto.Description,
		Responsibilities: dto.Responsibilities,
	}
	if err := h.Repo.Create(&role); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			http.Error(w, "role code already exists", http.StatusBadRequest)
			return
		}
		h.Log.Error().Err(err).Msg("create role")
		http.Error(w, "failed to create role", http.StatusInternalServerError)
		return
	}
	if len(dto.PermissionIDs) > 0 {
		if err := h.Repo.ReplacePermissions(&role, dto.PermissionIDs); err != nil {
			h.Log.Error().Err(err).Msg("attach role permissions")
			http.Error(w, "failed to attach permissions", http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(role)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.FindAll()
	if err != nil {
		h.Log.Error().Err(err).Msg("list roles")
		http.Error(w, "failed to list roles", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid role id", http.StatusBadRequest)
		return
	}
	role, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "role not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(role)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid role id", http.StatusBadRequest)
		return
	}
	role, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "role not found", http.StatusNotFound)
		return
	}

	var dto struct {
		NameAr           *string  `json:"nameAr"`
		NameEn           *string  `json:"nameEn"`
		Level            *int     `json:"level"`
		Department       *string  `json:"department"`
		Description      *string  `json:"description"`
		Responsibilities []string `json:"responsibilities"`
		PermissionIDs    []uint   `json:"permissionIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if dto.NameAr != nil {
		role.NameAr = *dto.NameAr
	}
	if dto.NameEn != nil {
		role.NameEn = *dto.NameEn
	}
	if dto.Level != nil {
		role.Level = *dto.Level
	}
	if dto.Department != nil {
		role.Department = *dto.Department
	}
	if dto.Description != nil {
		role.Description = *dto.Description
	}
	if dto.Responsibilities != nil {
		role.Responsibilities = dto.Responsibilities
	}

	if err := h.Repo.Update(role); err != nil {
		h.Log.Error().Err(err).Msg("update role")
		http.Error(w, "failed to update role", http.StatusInternalServerError)
		return
	}
	if dto.PermissionIDs != nil {
		if err := h.Repo.ReplacePermissions(role, dto.PermissionIDs); err != nil {
			h.Log.Error().Err(err).Msg("replace role permissions")
			http.Error(w, "failed to replace permissions", http.StatusInternalServerError)
			return
		}
	}

	updated, err := h.Repo.FindByID(role.ID)
	if err != nil {
		http.Error(w, "role not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(updated)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid role id", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Delete(uint(id)); err != nil {
		h.Log.Error().Err(err).Msg("delete role")
		http.Error(w, "failed to delete role", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AssignEmployee handles POST /api/roles/{id}/assign.
func (h *Handler) AssignEmployee(w http.ResponseWriter, r *http.Request) {
	roleID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid role id", http.StatusBadRequest)
		return
	}
	if _, err := h.Repo.FindByID(uint(roleID)); err != nil {
		http.Error(w, "role not found", http.StatusNotFound)
		return
	}

	var dto struct {
		EmployeeID uint   `json:"employeeId"`
		AssignedBy string `json:"assignedBy"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if dto.EmployeeID == 0 {
		http.Error(w, "employeeId is required", http.StatusBadRequest)
		return
	}

	a, err := h.Repo.Assign(dto.EmployeeID, uint(roleID), dto.AssignedBy)
	if err != nil {
		h.Log.Error().Err(err).Msg("assign role")
		http.Error(w, "failed to assign role", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(a)
}

// EmployeePermissions handles GET /api/employees/{id}/permissions.
func (h *Handler) EmployeePermissions(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid employee id", http.StatusBadRequest)
		return
	}
	perms, err := h.Repo.PermissionsForEmployee(uint(id))
	if err != nil {
		h.Log.Error().Err(err).Msg("resolve employee permissions")
		http.Error(w, "failed to resolve permissions", http.StatusInternalServerError)
		return
	}
	if perms == nil {
		perms = []permission.Permission{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(perms)
}
