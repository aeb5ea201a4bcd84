package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/injaz-systems/office-api/internal/activity"
	"github.com/injaz-systems/office-api/internal/auth"
	"github.com/injaz-systems/office-api/internal/sequence"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Handler serves the client routes.
type Handler struct {
	Repo     *Repository
	Activity *activity.Repository
	Log      zerolog.Logger
}

func NewHandler(db *gorm.DB, log zerolog.Logger) *Handler {
	return &Handler{
		Repo:     NewRepository(db),
		Activity: activity.NewRepository(db),
		Log:      log,
	}
}

type createDTO struct {
	Mobile         string         `json:"mobile"`
	Email          string         `json:"email"`
	IDNumber       string         `json:"idNumber"`
	Name           *Name          `json:"name"`
	NameAr         string         `json:"nameAr"`
	Contact        map[string]any `json:"contact"`
	Address        map[string]any `json:"address"`
	Identification map[string]any `json:"identification"`
	Type           string         `json:"type"`
	Category       string         `json:"category"`
	Nationality    string         `json:"nationality"`
	Occupation     string         `json:"occupation"`
	Company        string         `json:"company"`
	TaxNumber      string         `json:"taxNumber"`
	Rating         string         `json:"rating"`
	SecretRating   *float64       `json:"secretRating"`
	Notes          string         `json:"notes"`
	IsActive       *bool          `json:"isActive"`
}

// Create handles POST /api/clients. The quick-add form sends only nameAr;
// the full form sends the structured name blob.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto createDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}

	name := Name{}
	if dto.Name != nil && !dto.Name.IsZero() {
		name = *dto.Name
	} else if dto.NameAr != "" {
		name = Name{AR: dto.NameAr, EN: dto.NameAr}
	} else {
		http.Error(w, "client name is required", http.StatusBadRequest)
		return
	}
	if dto.Mobile == "" || dto.IDNumber == "" || dto.Type == "" {
		http.Error(w, "mobile, idNumber and type are required", http.StatusBadRequest)
		return
	}

	code, err := sequence.Next(h.Repo.DB, sequence.ClientPrefix(sequence.CurrentYear()), sequence.ClientWidth)
	if err != nil {
		http.Error(w, "failed to generate client code", http.StatusInternalServerError)
		return
	}

	contact := dto.Contact
	if contact == nil {
		contact = map[string]any{"mobile": dto.Mobile, "email": dto.Email}
	}
	identification := dto.Identification
	if identification == nil {
		identification = map[string]any{"idNumber": dto.IDNumber, "idType": "NationalID"}
	}

	secretRating := 50.0
	if dto.SecretRating != nil {
		secretRating = *dto.SecretRating
	}
	active := true
	if dto.IsActive != nil {
		active = *dto.IsActive
	}

	c := Client{
		Code:           code,
		Mobile:         dto.Mobile,
		Email:          dto.Email,
		IDNumber:       dto.IDNumber,
		Name:           name,
		Contact:        contact,
		Address:        dto.Address,
		Identification: identification,
		Type:           dto.Type,
		Category:       dto.Category,
		Nationality:    dto.Nationality,
		Occupation:     dto.Occupation,
		Company:        dto.Company,
		TaxNumber:      dto.TaxNumber,
		Rating:         dto.Rating,
		SecretRating:   secretRating,
		Notes:          dto.Notes,
		IsActive:       active,
		Grade:          GradeC,
	}
	c.CompletionPercentage = CompletionPercentage(&c)

	if err := h.Repo.Create(&c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			http.Error(w, "mobile or id number already registered", http.StatusBadRequest)
			return
		}
		h.Log.Error().Err(err).Msg("create client")
		http.Error(w, "failed to create client", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

// List handles GET /api/clients?search=&limit=.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	list, err := h.Repo.Search(r.URL.Query().Get("search"), limit)
	if err != nil {
		h.Log.Error().Err(err).Msg("list clients")
		http.Error(w, "failed to list clients", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// Get handles GET /api/clients/{id}, including the activity history.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}
	c, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "client not found", http.StatusNotFound)
		return
	}

	history, err := h.Activity.ForClient(c.ID)
	if err != nil {
		h.Log.Error().Err(err).Uint("client", c.ID).Msg("load activity log")
		history = nil
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(struct {
		*Client
		ActivityLogs []activity.Log `json:"activityLogs"`
	}{c, history})
}

// Update handles PUT /api/clients/{id}: merges the payload over the stored
// row, then recomputes completion and grade.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}
	c, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "client not found", http.StatusNotFound)
		return
	}

	var dto createDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}

	if dto.Mobile != "" {
		c.Mobile = dto.Mobile
	}
	if dto.Email != "" {
		c.Email = dto.Email
	}
	if dto.IDNumber != "" {
		c.IDNumber = dto.IDNumber
	}
	if dto.Name != nil && !dto.Name.IsZero() {
		c.Name = *dto.Name
	}
	if dto.Contact != nil {
		c.Contact = merge(c.Contact, dto.Contact)
	}
	if dto.Address != nil {
		c.Address = merge(c.Address, dto.Address)
	}
	if dto.Identification != nil {
		c.Identification = merge(c.Identification, dto.Identification)
	}
	if dto.Type != "" {
		c.Type = dto.Type
	}
	if dto.Category != "" {
		c.Category = dto.Category
	}
	if dto.Nationality != "" {
		c.Nationality = dto.Nationality
	}
	if dto.Occupation != "" {
		c.Occupation = dto.Occupation
	}
	if dto.Company != "" {
		c.Company = dto.Company
	}
	if dto.TaxNumber != "" {
		c.TaxNumber = dto.TaxNumber
	}
	if dto.Rating != "" {
		c.Rating = dto.Rating
	}
	if dto.SecretRating != nil {
		c.SecretRating = *dto.SecretRating
	}
	if dto.Notes != "" {
		c.Notes = dto.Notes
	}
	if dto.IsActive != nil {
		c.IsActive = *dto.IsActive
	}

	c.CompletionPercentage = CompletionPercentage(c)
	c.Grade, c.GradeScore = ComputeGrade(c)

	if err := h.Repo.Update(c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			http.Error(w, "mobile, email or id number already in use", http.StatusBadRequest)
			return
		}
		h.Log.Error().Err(err).Msg("update client")
		http.Error(w, "failed to update client", http.StatusInternalServerError)
		return
	}

	h.record(r, "تعديل عميل", fmt.Sprintf("تم تحديث بيانات العميل %q.", c.Name.Full()), "تعديل بيانات", c.ID)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// Delete handles DELETE /api/clients/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}
	c, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "client not found", http.StatusNotFound)
		return
	}

	h.record(r, "حذف عميل", fmt.Sprintf("تم حذف العميل %q (الكود: %s).", c.Name.Full(), c.Code), "حذف", c.ID)

	if err := h.Repo.Delete(c); err != nil {
		h.Log.Error().Err(err).Msg("delete client")
		http.Error(w, "failed to delete client", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "client deleted"})
}

// ListSimple handles GET /api/clients/simple: a capped dropdown list.
func (h *Handler) ListSimple(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.SearchActive(r.URL.Query().Get("search"), 50)
	if err != nil {
		http.Error(w, "failed to list clients", http.StatusInternalServerError)
		return
	}
	type entry struct {
		ID         uint   `json:"id"`
		Name       string `json:"name"`
		ClientCode string `json:"clientCode"`
		Mobile     string `json:"mobile"`
		IDNumber   string `json:"idNumber"`
	}
	out := make([]entry, 0, len(list))
	for _, c := range list {
		out = append(out, entry{
			ID:         c.ID,
			Name:       fmt.Sprintf("%s (%s)", c.Name.Full(), c.Code),
			ClientCode: c.Code,
			Mobile:     c.Mobile,
			IDNumber:   c.IDNumber,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

// record writes an activity entry; failures are logged, never surfaced.
func (h *Handler) record(r *http.Request, action, description, category string, clientID uint) {
	entry := &activity.Log{
		Action:      action,
		Description: description,
		Category:    category,
		ClientID:    &clientID,
	}
	if performer, ok := auth.EmployeeID(r.Context()); ok {
		entry.PerformedByID = &performer
	}
	if err := h.Activity.Record(entry); err != nil {
		h.Log.Error().Err(err).Msg("record activity")
	}
}

func merge(base, overlay map[string]any) map[string]any {
	if base == nil {
		return overlay
	}
	out := make(map[string]any, len(base)+len(overlay))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overlay {
		out[k] = v
	}
	return out
}
