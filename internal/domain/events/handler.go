package events

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tailtime/internal/middleware"
	"tailtime/internal/platform/respond"
	"tailtime/internal/platform/validation"
)

// RegisterRoutes monta las rutas bajo /api/events.
// GET /{id} recibe un userID; PUT y DELETE /{id} un eventID (chi no admite dos nombres en el mismo nivel).
func RegisterRoutes(r chi.Router, svc *Service, log *zap.Logger, loc *time.Location) {
	h := &handler{svc: svc, log: log, loc: loc}

	r.Post("/add", h.create)
	r.Get("/{id}", h.list)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.remove)
}

type handler struct {
	svc *Service
	log *zap.Logger
	loc *time.Location
}

type createEventRequest struct {
	UserID string `json:"userId" validate:"required"`
	Title  string `json:"title" validate:"required"`
	Date   string `json:"date" validate:"required"` // RFC3339 o YYYY-MM-DD
	Type   string `json:"type" validate:"omitempty,oneof=vet grooming medication other"`
}

type updateEventRequest struct {
	Title       *string `json:"title"`
	Date        *string `json:"date"`
	Type        *string `json:"type" validate:"omitempty,oneof=vet grooming medication other"`
	IsCompleted *bool   `json:"isCompleted"`
}

type eventResponse struct {
	ID          string    `json:"_id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Type        EventType `json:"type"`
	IsCompleted bool      `json:"isCompleted"`
	CreatedAt   time.Time `json:"createdAt"`
}

// create godoc
// @Summary Agendar evento
// @Description Crea un evento de cuidado. type por defecto es other.
// @Tags events
// @Accept json
// @Produce json
// @Param payload body createEventRequest true "Evento"
// @Success 201 {object} eventResponse
// @Failure 400 {object} respond.MessageBody "validación"
// @Failure 403 {object} respond.MessageBody "forbidden"
// @Router /events/add [post]
func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
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

	date, err := validation.ParseDate(req.Date, h.loc)
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "date must be RFC3339 or YYYY-MM-DD")
		return
	}

	e, err := h.svc.Create(r.Context(), CreateInput{
		UserID: req.UserID,
		Title:  req.Title,
		Date:   date,
		Type:   EventType(req.Type),
	})
	if err != nil {
		h.fail(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toEventResponse(e))
}

// list godoc
// @Summary Eventos del usuario
// @Description Lista eventos ordenados por fecha ascendente.
// @Tags events
// @Produce json
// @Param id path string true "ID del usuario"
// @Param types query string false "CSV de tipos (ej: vet,grooming)"
// @Param from query string false "Fecha mínima (RFC3339 o YYYY-MM-DD)"
// @Param to query string false "Fecha máxima (RFC3339 o YYYY-MM-DD)"
// @Param pending query bool false "Solo no completados"
// @Param limit query int false "Máximo de eventos (1-200)"
// @Success 200 {array} eventResponse
// @Failure 400 {object} respond.MessageBody "Parámetros de filtro inválidos"
// @Router /events/{id} [get]
func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if !middleware.CanActAs(w, r, userID) {
		return
	}

	filter, err := h.parseListFilter(r)
	if err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := h.svc.ListByUser(r.Context(), userID, filter)
	if err != nil {
		h.fail(w, err)
		return
	}

	out := make([]eventResponse, 0, len(items))
	for _, e := range items {
		out = append(out, toEventResponse(e))
	}
	respond.JSON(w, http.StatusOK, out)
}

// update godoc
// @Summary Actualizar evento
// @Description Update parcial (title, date, type, isCompleted).
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "ID del evento"
// @Param payload body updateEventRequest true "Campos a modificar"
// @Success 200 {object} eventResponse
// @Failure 404 {object} respond.MessageBody "Event not found"
// @Router /events/{id} [put]
func (h *handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.authorizeEvent(w, r)
	if !ok {
		return
	}

	var req updateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.DecodeError(w, err)
		return
	}
	if err := validation.Struct(req); err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	in := UpdateInput{
		Title:       req.Title,
		IsCompleted: req.IsCompleted,
	}
	if req.Date != nil {
		t, err := validation.ParseDate(*req.Date, h.loc)
		if err != nil {
			respond.Message(w, http.StatusBadRequest, "date must be RFC3339 or YYYY-MM-DD")
			return
		}
		in.Date = &t
	}
	if req.Type != nil {
		t := EventType(*req.Type)
		in.Type = &t
	}

	e, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		h.fail(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toEventResponse(e))
}

// remove godoc
// @Summary Borrar evento
// @Tags events
// @Produce json
// @Param id path string true "ID del evento"
// @Success 200 {object} respond.MessageBody "Event removed"
// @Failure 404 {object} respond.MessageBody "Event not found"
// @Router /events/{id} [delete]
func (h *handler) remove(w http.ResponseWriter, r *http.Request) {
	id, ok := h.authorizeEvent(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.fail(w, err)
		return
	}

	respond.Message(w, http.StatusOK, "Event removed")
}

// authorizeEvent: con claims, el evento tiene que ser del usuario.
func (h *handler) authorizeEvent(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")

	if _, ok := middleware.GetClaims(r.Context()); !ok {
		return id, true
	}

	e, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return "", false
	}
	return id, middleware.CanActAs(w, r, e.UserID)
}

func (h *handler) parseListFilter(r *http.Request) (ListFilter, error) {
	q := r.URL.Query()
	var filter ListFilter

	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			filter.Limit = n
		}
	}

	// types=vet,grooming
	if v := strings.TrimSpace(q.Get("types")); v != "" {
		for _, p := range strings.Split(v, ",") {
			t := EventType(strings.TrimSpace(p))
			if t == "" {
				continue
			}
			if !t.Valid() {
				return ListFilter{}, errors.Errorf("unknown event type %q", t)
			}
			filter.Types = append(filter.Types, t)
		}
	}

	if v := strings.TrimSpace(q.Get("from")); v != "" {
		t, err := validation.ParseDate(v, h.loc)
		if err != nil {
			return ListFilter{}, errors.New("from must be RFC3339 or YYYY-MM-DD")
		}
		filter.From = &t
	}
	if v := strings.TrimSpace(q.Get("to")); v != "" {
		t, err := validation.ParseDate(v, h.loc)
		if err != nil {
			return ListFilter{}, errors.New("to must be RFC3339 or YYYY-MM-DD")
		}
		filter.To = &t
	}

	if v := q.Get("pending"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return ListFilter{}, errors.New("pending must be a boolean")
		}
		filter.Pending = b
	}

	return filter, nil
}

func (h *handler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Message(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		respond.Message(w, http.StatusNotFound, err.Error())
	default:
		h.log.Error("events: storage failure", zap.Error(err))
		respond.Message(w, http.StatusInternalServerError, respond.ServerError)
	}
}

func toEventResponse(e Event) eventResponse {
	return eventResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		Title:       e.Title,
		Date:        e.Date,
		Type:        e.Type,
		IsCompleted: e.IsCompleted,
		CreatedAt:   e.CreatedAt,
	}
}
