package medical

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tailtime/internal/middleware"
	"tailtime/internal/platform/respond"
	"tailtime/internal/platform/validation"
)

// RegisterRoutes monta /add y /{userID} bajo /api/medical.
func RegisterRoutes(r chi.Router, svc *Service, log *zap.Logger, loc *time.Location) {
	h := &handler{svc: svc, log: log, loc: loc}

	r.Post("/add", h.create)
	r.Get("/{userID}", h.list)
}

type handler struct {
	svc *Service
	log *zap.Logger
	loc *time.Location
}

type createRecordRequest struct {
	UserID      string `json:"userId" validate:"required"`
	Category    string `json:"category" validate:"required,oneof=vaccine medication vital visit"`
	Title       string `json:"title" validate:"required"`
	DateGiven   string `json:"dateGiven"`
	NextDueDate string `json:"nextDueDate"`
	Notes       string `json:"notes"`
	Value       string `json:"value"`
}

type recordResponse struct {
	ID          string     `json:"_id"`
	UserID      string     `json:"userId"`
	Category    Category   `json:"category"`
	Title       string     `json:"title"`
	DateGiven   time.Time  `json:"dateGiven"`
	NextDueDate *time.Time `json:"nextDueDate,omitempty"`
	Notes       string     `json:"notes"`
	Value       string     `json:"value"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// create godoc
// @Summary Agregar registro médico
// @Description Vacuna, medicación, signo vital o visita. dateGiven por defecto es ahora.
// @Tags medical
// @Accept json
// @Produce json
// @Param payload body createRecordRequest true "Registro"
// @Success 201 {object} recordResponse
// @Failure 400 {object} respond.MessageBody "validación"
// @Router /medical/add [post]
func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.DecodeError(w, err)
		return
	}
	if err := validation.Struct(req); err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())
		return
	}
	if !middleware.CanActAs(w, r, req.UserID) {
		return
	}

	in := CreateInput{
		UserID:   req.UserID,
		Category: Category(req.Category),
		Title:    req.Title,
		Notes:    req.Notes,
		Value:    req.Value,
	}
	if strings.TrimSpace(req.DateGiven) != "" {
		t, err := validation.ParseDate(req.DateGiven, h.loc)
		if err != nil {
			respond.Message(w, http.StatusBadRequest, "dateGiven must be RFC3339 or YYYY-MM-DD")
			return
		}
		in.DateGiven = &t
	}
	if strings.TrimSpace(req.NextDueDate) != "" {
		t, err := validation.ParseDate(req.NextDueDate, h.loc)
		if err != nil {
			respond.Message(w, http.StatusBadRequest, "nextDueDate must be RFC3339 or YYYY-MM-DD")
			return
		}
		in.NextDueDate = &t
	}

	rec, err := h.svc.Create(r.Context(), in)
	if err != nil {
		h.fail(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toRecordResponse(rec))
}

// list godoc
// @Summary Historial médico
// @Description Registros del usuario, más recientes primero.
// @Tags medical
// @Produce json
// @Param userID path string true "ID del usuario"
// @Param category query string false "vaccine | medication | vital | visit"
// @Success 200 {array} recordResponse
// @Failure 400 {object} respond.MessageBody "categoría inválida"
// @Router /medical/{userID} [get]
func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if !middleware.CanActAs(w, r, userID) {
		return
	}

	category := Category(strings.TrimSpace(r.URL.Query().Get("category")))
	items, err := h.svc.ListByUser(r.Context(), userID, category)
	if err != nil {
		h.fail(w, err)
		return
	}

	out := make([]recordResponse, 0, len(items))
	for _, rec := range items {
		out = append(out, toRecordResponse(rec))
	}
	respond.JSON(w, http.StatusOK, out)
}

func (h *handler) fail(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidInput) {
		respond.Message(w, http.StatusBadRequest, err.Error())
		return
	}
	h.log.Error("medical: storage failure", zap.Error(err))
	respond.Message(w, http.StatusInternalServerError, respond.ServerError)
}

func toRecordResponse(r Record) recordResponse {
	return recordResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		Category:    r.Category,
		Title:       r.Title,
		DateGiven:   r.DateGiven,
		NextDueDate: r.NextDueDate,
		Notes:       r.Notes,
		Value:       r.Value,
		CreatedAt:   r.CreatedAt,
	}
}
