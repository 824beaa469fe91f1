package pets

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

// RegisterRoutes monta las rutas de mascota bajo el router que recibe (/api/pets).
// Las rutas de actividad comparten el mismo prefijo y se registran aparte.
func RegisterRoutes(r chi.Router, svc *Service, log *zap.Logger) {
	h := &handler{svc: svc, log: log}

	r.Post("/add", h.create)
	r.Put("/update/{petID}", h.update)
	r.Put("/tasks/{petID}", h.setTasks)
	r.Post("/photo/{petID}", h.uploadPhoto)

	// Dashboard: mascota del usuario (o null)
	r.Get("/{userID}", h.getByOwner)
}

type handler struct {
	svc *Service
	log *zap.Logger
}

type createPetRequest struct {
	OwnerID string   `json:"ownerId"`
	PetName string   `json:"petName" validate:"required"`
	Species string   `json:"species" validate:"required"`
	Breed   string   `json:"breed"`
	Age     *float64 `json:"age" validate:"omitempty,gte=0"`
	Weight  *float64 `json:"weight" validate:"omitempty,gte=0"`
}

type updatePetRequest struct {
	// nil = no tocar
	PetName *string  `json:"petName"`
	Species *string  `json:"species"`
	Breed   *string  `json:"breed"`
	Age     *float64 `json:"age" validate:"omitempty,gte=0"`
	Weight  *float64 `json:"weight" validate:"omitempty,gte=0"`
}

type tasksRequest struct {
	Breakfast   *bool `json:"breakfast"`
	MorningWalk *bool `json:"morningWalk"`
	Dinner      *bool `json:"dinner"`
	Medication  *bool `json:"medication"`
}

type photoRequest struct {
	// data URL: "data:image/png;base64,...."
	Image string `json:"image" validate:"required"`
}

type tasksResponse struct {
	Breakfast   bool `json:"breakfast"`
	MorningWalk bool `json:"morningWalk"`
	Dinner      bool `json:"dinner"`
	Medication  bool `json:"medication"`
}

// PetResponse es la forma JSON de la mascota; la reusa activity (rebuild-daily).
type PetResponse struct {
	ID               string        `json:"_id"`
	OwnerID          string        `json:"ownerId"`
	PetName          string        `json:"petName"`
	Species          string        `json:"species"`
	Breed            string        `json:"breed"`
	Age              float64       `json:"age"`
	Weight           float64       `json:"weight"`
	PhotoURL         string        `json:"photoUrl"`
	Tasks            tasksResponse `json:"tasks"`
	DailySteps       int           `json:"dailySteps"`
	DailySleep       float64       `json:"dailySleep"`
	DailyMeals       int           `json:"dailyMeals"`
	DailyWalkMinutes float64       `json:"dailyWalkMinutes"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// create godoc
// @Summary Registrar mascota
// @Description Crea la mascota del usuario. Un usuario tiene una sola mascota; los contadores diarios arrancan en 0.
// @Tags pets
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param payload body createPetRequest true "Datos de la mascota"
// @Success 201 {object} PetResponse
// @Failure 400 {object} respond.MessageBody "validación / pet already exists for owner"
// @Failure 403 {object} respond.MessageBody "forbidden"
// @Router /pets/add [post]
func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	var req createPetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.DecodeError(w, err)
		return
	}

	// Si hay claims y no mandan ownerId, la mascota es del usuario autenticado.
	if strings.TrimSpace(req.OwnerID) == "" {
		if claims, ok := middleware.GetClaims(r.Context()); ok {
			req.OwnerID = claims.UserID
		}
	}
	if strings.TrimSpace(req.OwnerID) == "" {
		respond.Message(w, http.StatusBadRequest, "ownerId is required")
		return
	}
	if err := validation.Struct(req); err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())
		return
	}
	if !middleware.CanActAs(w, r, req.OwnerID) {
		return
	}

	in := CreateInput{
		Name:    req.PetName,
		Species: req.Species,
		Breed:   req.Breed,
	}
	if req.Age != nil {
		in.Age = *req.Age
	}
	if req.Weight != nil {
		in.Weight = *req.Weight
	}

	p, err := h.svc.Create(r.Context(), req.OwnerID, in)
	if err != nil {
		h.fail(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, Response(p))
}

// getByOwner godoc
// @Summary Mascota del usuario
// @Description Devuelve la mascota del usuario con sus contadores del día, o null si todavía no registró ninguna.
// @Tags pets
// @Produce json
// @Param userID path string true "ID del usuario"
// @Success 200 {object} PetResponse
// @Failure 403 {object} respond.MessageBody "forbidden"
// @Failure 500 {object} respond.MessageBody "Server Error"
// @Router /pets/{userID} [get]
func (h *handler) getByOwner(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if !middleware.CanActAs(w, r, userID) {
		return
	}

	p, err := h.svc.GetByOwner(r.Context(), userID)
	if errors.Is(err, ErrNotFound) {
		respond.JSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		h.fail(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, Response(p))
}

// update godoc
// @Summary Actualizar mascota
// @Description Update parcial de petName, species, breed, age y weight.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body updatePetRequest true "Campos a modificar"
// @Success 200 {object} PetResponse
// @Failure 400 {object} respond.MessageBody "invalid input"
// @Failure 404 {object} respond.MessageBody "pet not found"
// @Router /pets/update/{petID} [put]
func (h *handler) update(w http.ResponseWriter, r *http.Request) {
	petID, ok := h.authorizePet(w, r)
	if !ok {
		return
	}

	var req updatePetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.DecodeError(w, err)
		return
	}
	if err := validation.Struct(req); err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.svc.Update(r.Context(), petID, UpdateInput{
		Name:    req.PetName,
		Species: req.Species,
		Breed:   req.Breed,
		Age:     req.Age,
		Weight:  req.Weight,
	})
	if err != nil {
		h.fail(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, Response(p))
}

// setTasks godoc
// @Summary Checklist diario
// @Description Marca o desmarca tareas del día (breakfast, morningWalk, dinner, medication). Se resetean a medianoche.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body tasksRequest true "Flags a modificar"
// @Success 200 {object} PetResponse
// @Failure 404 {object} respond.MessageBody "pet not found"
// @Router /pets/tasks/{petID} [put]
func (h *handler) setTasks(w http.ResponseWriter, r *http.Request) {
	petID, ok := h.authorizePet(w, r)
	if !ok {
		return
	}

	var req tasksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.DecodeError(w, err)
		return
	}

	p, err := h.svc.SetTasks(r.Context(), petID, TasksInput{
		Breakfast:   req.Breakfast,
		MorningWalk: req.MorningWalk,
		Dinner:      req.Dinner,
		Medication:  req.Medication,
	})
	if err != nil {
		h.fail(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, Response(p))
}

// uploadPhoto godoc
// @Summary Subir foto
// @Description Recibe la foto como data URL base64 y actualiza photoUrl.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body photoRequest true "Imagen"
// @Success 200 {object} PetResponse
// @Failure 400 {object} respond.MessageBody "invalid base64 image"
// @Failure 404 {object} respond.MessageBody "pet not found"
// @Failure 413 {object} respond.MessageBody "request body too large"
// @Failure 503 {object} respond.MessageBody "photo storage not configured"
// @Router /pets/photo/{petID} [post]
func (h *handler) uploadPhoto(w http.ResponseWriter, r *http.Request) {
	petID, ok := h.authorizePet(w, r)
	if !ok {
		return
	}

	var req photoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.DecodeError(w, err)
		return
	}
	if err := validation.Struct(req); err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.svc.UploadPhoto(r.Context(), petID, req.Image)
	if err != nil {
		h.fail(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, Response(p))
}

// authorizePet resuelve el owner de {petID} y chequea claims.
func (h *handler) authorizePet(w http.ResponseWriter, r *http.Request) (string, bool) {
	petID := chi.URLParam(r, "petID")

	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		return petID, true
	}

	owned, err := h.svc.IsOwnedBy(r.Context(), petID, claims.UserID)
	if err != nil {
		h.fail(w, err)
		return "", false
	}
	if !owned {
		respond.Message(w, http.StatusForbidden, "forbidden")
		return "", false
	}
	return petID, true
}

func (h *handler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidImage), errors.Is(err, ErrAlreadyExists):
		respond.Message(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		respond.Message(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrPhotosDisabled):
		respond.Message(w, http.StatusServiceUnavailable, err.Error())
	default:
		h.log.Error("pets: storage failure", zap.Error(err))
		respond.Message(w, http.StatusInternalServerError, respond.ServerError)
	}
}

func Response(p Pet) PetResponse {
	return PetResponse{
		ID:       p.ID,
		OwnerID:  p.OwnerUserID,
		PetName:  p.Name,
		Species:  p.Species,
		Breed:    p.Breed,
		Age:      p.Age,
		Weight:   p.Weight,
		PhotoURL: p.PhotoURL,
		Tasks: tasksResponse{
			Breakfast:   p.Tasks.Breakfast,
			MorningWalk: p.Tasks.MorningWalk,
			Dinner:      p.Tasks.Dinner,
			Medication:  p.Tasks.Medication,
		},
		DailySteps:       p.DailySteps,
		DailySleep:       p.Daily.SleepHours,
		DailyMeals:       p.Daily.Meals,
		DailyWalkMinutes: p.Daily.WalkMinutes,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
