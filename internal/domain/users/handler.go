package users

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

// RegisterAuthRoutes monta /register y /login (bajo /api/auth).
func RegisterAuthRoutes(r chi.Router, svc *Service, log *zap.Logger) {
	h := &handler{svc: svc, log: log}

	r.Post("/register", h.register)
	r.Post("/login", h.login)
}

// RegisterRoutes monta perfil y settings (bajo /api/user).
func RegisterRoutes(r chi.Router, svc *Service, log *zap.Logger) {
	h := &handler{svc: svc, log: log}

	r.Put("/settings", h.updateSettings)
	r.Put("/change-password", h.changePassword)
	r.Get("/{id}", h.get)
}

type handler struct {
	svc *Service
	log *zap.Logger
}

type registerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type settingsRequest struct {
	UserID   string         `json:"userId" validate:"required"`
	Settings map[string]any `json:"settings"`
}

type changePasswordRequest struct {
	UserID      string `json:"userId" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

type registerResponse struct {
	Msg    string `json:"msg"`
	UserID string `json:"userId"`
}

type loginUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type loginResponse struct {
	Msg   string    `json:"msg"`
	Token string    `json:"token"`
	User  loginUser `json:"user"`
}

type userResponse struct {
	ID        string         `json:"_id"`
	FullName  string         `json:"fullName"`
	Email     string         `json:"email"`
	Settings  map[string]any `json:"settings"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// register godoc
// @Summary Registro
// @Description Crea un usuario. El email se guarda en minúsculas y la password como hash bcrypt.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body registerRequest true "Datos de registro"
// @Success 201 {object} registerResponse
// @Failure 400 {object} respond.MessageBody "User already exists / validación"
// @Failure 500 {object} respond.MessageBody "Server Error"
// @Router /auth/register [post]
func (h *handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.DecodeError(w, err)
		return
	}
	// el service normaliza; aquí solo se recortan espacios para que pase la validación
	req.Email = strings.TrimSpace(req.Email)
	if err := validation.Struct(req); err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.svc.Register(r.Context(), RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.fail(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, registerResponse{Msg: "User Registered Successfully", UserID: u.ID})
}

// login godoc
// @Summary Login
// @Description Valida credenciales y devuelve un JWT (HS256, sub = id de usuario) para usar como Bearer.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} loginResponse
// @Failure 400 {object} respond.MessageBody "User does not exist / Invalid credentials"
// @Router /auth/login [post]
func (h *handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.DecodeError(w, err)
		return
	}
	// el service normaliza; aquí solo se recortan espacios para que pase la validación
	req.Email = strings.TrimSpace(req.Email)
	if err := validation.Struct(req); err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, loginResponse{
		Msg:   "Login Successful",
		Token: res.Token,
		User: loginUser{
			ID:    res.User.ID,
			Name:  res.User.FullName,
			Email: res.User.Email,
		},
	})
}

// get godoc
// @Summary Perfil
// @Description Usuario con sus settings, sin password.
// @Tags user
// @Produce json
// @Param id path string true "ID del usuario"
// @Success 200 {object} userResponse
// @Failure 404 {object} respond.MessageBody "User not found"
// @Router /user/{id} [get]
func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !middleware.CanActAs(w, r, id) {
		return
	}

	u, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toUserResponse(u))
}

// updateSettings godoc
// @Summary Actualizar settings
// @Description Reemplaza el mapa de settings del usuario.
// @Tags user
// @Accept json
// @Produce json
// @Param payload body settingsRequest true "userId + settings"
// @Success 200 {object} userResponse
// @Failure 404 {object} respond.MessageBody "User not found"
// @Router /user/settings [put]
func (h *handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
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

	u, err := h.svc.UpdateSettings(r.Context(), req.UserID, req.Settings)
	if err != nil {
		h.fail(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toUserResponse(u))
}

// changePassword godoc
// @Summary Cambiar password
// @Tags user
// @Accept json
// @Produce json
// @Param payload body changePasswordRequest true "userId + newPassword"
// @Success 200 {object} respond.MessageBody "Password Updated"
// @Failure 404 {object} respond.MessageBody "User not found"
// @Router /user/change-password [put]
func (h *handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
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

	if err := h.svc.ChangePassword(r.Context(), req.UserID, req.NewPassword); err != nil {
		h.fail(w, err)
		return
	}

	respond.Message(w, http.StatusOK, "Password Updated")
}

func (h *handler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrAlreadyExists),
		errors.Is(err, ErrUnknownEmail),
		errors.Is(err, ErrInvalidCredentials):
		respond.Message(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		respond.Message(w, http.StatusNotFound, err.Error())
	default:
		h.log.Error("users: storage failure", zap.Error(err))
		respond.Message(w, http.StatusInternalServerError, respond.ServerError)
	}
}

func toUserResponse(u User) userResponse {
	settings := u.Settings
	if settings == nil {
		settings = map[string]any{}
	}
	return userResponse{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Settings:  settings,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
