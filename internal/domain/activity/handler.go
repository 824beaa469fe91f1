package activity

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tailtime/internal/domain/pets"
	"tailtime/internal/middleware"
	"tailtime/internal/platform/respond"
	"tailtime/internal/platform/validation"
)

const dateOnly = "2006-01-02"

// RegisterRoutes cuelga de /api/pets, junto a las rutas de mascota.
func RegisterRoutes(r chi.Router, svc *Service, log *zap.Logger) {
	h := &handler{svc: svc, log: log}

	r.Post("/log-activity", h.logActivity)
	r.Get("/weekly-stats/{userID}/{type}", h.weeklyStats)
	r.Get("/activity/{userID}", h.list)
	r.Get("/activity/{userID}/export", h.export)
	r.Post("/rebuild-daily/{userID}", h.rebuildDaily)
}

type handler struct {
	svc *Service
	log *zap.Logger
}

type logRequest struct {
	UserID   string   `json:"userId" validate:"required"`
	Type     string   `json:"type" validate:"required,oneof=walk sleep meal"`
	SubType  string   `json:"subType"`
	Value    *float64 `json:"value" validate:"required,gte=0"`
	Duration *float64 `json:"duration" validate:"omitempty,gte=0"`
	Date     string   `json:"date"` // RFC3339; vacío = ahora
	Notes    string   `json:"notes"`
}

type logResponse struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"userId"`
	Type      Type      `json:"type"`
	SubType   string    `json:"subType"`
	Value     float64   `json:"value"`
	Duration  float64   `json:"duration"`
	Date      time.Time `json:"date"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

type dayTotalResponse struct {
	DayOfWeek int     `json:"_id"` // 1 = domingo
	Total     float64 `json:"total"`
}

// logActivity godoc
// @Summary Registrar actividad
// @Description Agrega una entrada al historial (walk, sleep, meal). Si la fecha cae hoy, actualiza los contadores diarios de la mascota del usuario: walk suma duration, sleep suma value, meal suma 1. Si el usuario no tiene mascota la entrada se guarda igual.
// @Tags activity
// @Accept json
// @Produce json
// @Param payload body logRequest true "Entrada de actividad"
// @Success 201 {object} logResponse
// @Failure 400 {object} respond.MessageBody "validación"
// @Failure 403 {object} respond.MessageBody "forbidden"
// @Failure 500 {object} respond.MessageBody "Server Error"
// @Router /pets/log-activity [post]
func (h *handler) logActivity(w http.ResponseWriter, r *http.Request) {
	var req logRequest
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

	in := LogInput{
		UserID:  req.UserID,
		Type:    Type(req.Type),
		SubType: req.SubType,
		Value:   req.Value,
		Notes:   req.Notes,
	}
	if req.Duration != nil {
		in.Duration = *req.Duration
	}
	if strings.TrimSpace(req.Date) != "" {
		t, err := validation.ParseDate(req.Date, h.svc.Location())
		if err != nil {
			respond.Message(w, http.StatusBadRequest, "date must be RFC3339 or YYYY-MM-DD")
			return
		}
		in.Date = &t
	}

	l, err := h.svc.Log(r.Context(), in)
	if err != nil {
		h.fail(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toLogResponse(l))
}

// weeklyStats godoc
// @Summary Estadística semanal
// @Description Totales de los últimos 7 días agrupados por día de semana (1 = domingo). walk suma minutos, meal cuenta entradas, el resto suma value. Los días sin datos no aparecen.
// @Tags activity
// @Produce json
// @Param userID path string true "ID del usuario"
// @Param type path string true "Tipo de actividad"
// @Success 200 {array} dayTotalResponse
// @Failure 500 {object} respond.MessageBody "Server Error"
// @Router /pets/weekly-stats/{userID}/{type} [get]
func (h *handler) weeklyStats(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if !middleware.CanActAs(w, r, userID) {
		return
	}

	rows, err := h.svc.WeeklyStats(r.Context(), userID, chi.URLParam(r, "type"))
	if err != nil {
		h.fail(w, err)
		return
	}

	out := make([]dayTotalResponse, 0, len(rows))
	for _, d := range rows {
		out = append(out, dayTotalResponse{DayOfWeek: d.DayOfWeek, Total: d.Total})
	}
	respond.JSON(w, http.StatusOK, out)
}

// list godoc
// @Summary Historial de actividad
// @Description Entradas del usuario ordenadas por fecha ascendente. from/to son inclusivos; una fecha YYYY-MM-DD en to cubre el día completo.
// @Tags activity
// @Produce json
// @Param userID path string true "ID del usuario"
// @Param type query string false "walk | sleep | meal"
// @Param from query string false "RFC3339 o YYYY-MM-DD"
// @Param to query string false "RFC3339 o YYYY-MM-DD"
// @Success 200 {array} logResponse
// @Failure 400 {object} respond.MessageBody "filtro inválido"
// @Router /pets/activity/{userID} [get]
func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if !middleware.CanActAs(w, r, userID) {
		return
	}

	f, ok := h.parseFilter(w, r)
	if !ok {
		return
	}

	logs, err := h.svc.List(r.Context(), userID, f)
	if err != nil {
		h.fail(w, err)
		return
	}

	out := make([]logResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, toLogResponse(l))
	}
	respond.JSON(w, http.StatusOK, out)
}

// export godoc
// @Summary Exportar historial
// @Description Igual que el historial pero como planilla .xlsx (hoja "Activity").
// @Tags activity
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param userID path string true "ID del usuario"
// @Param type query string false "walk | sleep | meal"
// @Param from query string false "RFC3339 o YYYY-MM-DD"
// @Param to query string false "RFC3339 o YYYY-MM-DD"
// @Success 200 {file} file
// @Router /pets/activity/{userID}/export [get]
func (h *handler) export(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if !middleware.CanActAs(w, r, userID) {
		return
	}

	f, ok := h.parseFilter(w, r)
	if !ok {
		return
	}

	data, err := h.svc.Export(r.Context(), userID, f)
	if err != nil {
		h.fail(w, err)
		return
	}

	name := fmt.Sprintf("activity-%s.xlsx", time.Now().In(h.svc.Location()).Format(dateOnly))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// rebuildDaily godoc
// @Summary Recalcular contadores del día
// @Description Recalcula dailyWalkMinutes, dailySleep y dailyMeals desde el historial de hoy y los pisa en la mascota.
// @Tags activity
// @Produce json
// @Param userID path string true "ID del usuario"
// @Success 200 {object} pets.PetResponse
// @Failure 404 {object} respond.MessageBody "pet not found"
// @Router /pets/rebuild-daily/{userID} [post]
func (h *handler) rebuildDaily(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if !middleware.CanActAs(w, r, userID) {
		return
	}

	p, err := h.svc.RebuildDaily(r.Context(), userID)
	if err != nil {
		h.fail(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, pets.Response(p))
}

func (h *handler) parseFilter(w http.ResponseWriter, r *http.Request) (Filter, bool) {
	q := r.URL.Query()
	f := Filter{Type: Type(strings.TrimSpace(q.Get("type")))}

	if raw := strings.TrimSpace(q.Get("from")); raw != "" {
		t, err := validation.ParseDate(raw, h.svc.Location())
		if err != nil {
			respond.Message(w, http.StatusBadRequest, "from must be RFC3339 or YYYY-MM-DD")
			return Filter{}, false
		}
		f.From = t
	}
	if raw := strings.TrimSpace(q.Get("to")); raw != "" {
		t, err := validation.ParseDate(raw, h.svc.Location())
		if err != nil {
			respond.Message(w, http.StatusBadRequest, "to must be RFC3339 or YYYY-MM-DD")
			return Filter{}, false
		}
		if len(raw) == len(dateOnly) {
			t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		f.To = t
	}
	return f, true
}

func (h *handler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, pets.ErrInvalidInput):
		respond.Message(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, pets.ErrNotFound):
		respond.Message(w, http.StatusNotFound, err.Error())
	default:
		h.log.Error("activity: storage failure", zap.Error(err))
		respond.Message(w, http.StatusInternalServerError, respond.ServerError)
	}
}

func toLogResponse(l Log) logResponse {
	return logResponse{
		ID:        l.ID,
		UserID:    l.UserID,
		Type:      l.Type,
		SubType:   l.SubType,
		Value:     l.Value,
		Duration:  l.Duration,
		Date:      l.Date,
		Notes:     l.Notes,
		CreatedAt: l.CreatedAt,
	}
}
