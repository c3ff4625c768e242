package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/skillpath/api/http/middleware"
	"github.com/artem13815/skillpath/api/http/presenter"
	"github.com/artem13815/skillpath/pkg/auth"
	"github.com/artem13815/skillpath/pkg/logging"
)

const (
	msgSignupFieldsRequired = "All fields are required"
	msgLoginFieldsRequired  = "Email and password are required"
	msgUserExists           = "User already exists"
	msgInvalidCredentials   = "Invalid credentials"
)

// AuthHandler serves the signup and login routes.
type AuthHandler struct {
	useCase auth.AuthUseCase
	log     logging.Logger
}

// NewAuthHandler returns a handler backed by the given auth use case.
func NewAuthHandler(useCase auth.AuthUseCase, log logging.Logger) *AuthHandler {
	return &AuthHandler{useCase: useCase, log: log}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles user registration.
// @Summary Register user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body signupRequest true "registration payload"
// @Success 200 {object} presenter.AuthResponse
// @Failure 400 {object} presenter.AuthResponse
// @Failure 500 {object} presenter.AuthResponse
// @Router  /auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		// An unreadable body is reported like a body with the fields missing.
		return presenter.AuthFail(c, http.StatusBadRequest, msgSignupFieldsRequired)
	}

	user, err := h.useCase.Signup(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrValidation):
			return presenter.AuthFail(c, http.StatusBadRequest, msgSignupFieldsRequired)
		case errors.Is(err, auth.ErrUserAlreadyExists):
			return presenter.AuthFail(c, http.StatusBadRequest, msgUserExists)
		default:
			h.log.Error(c.Context(), "signup failed", "request_id", middleware.RequestIDFrom(c), "error", err)
			return presenter.AuthFail(c, http.StatusInternalServerError, presenter.MsgServerError)
		}
	}
	return presenter.AuthOK(c, userView(user))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles user login.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} presenter.AuthResponse
// @Failure 400 {object} presenter.AuthResponse
// @Failure 500 {object} presenter.AuthResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.AuthFail(c, http.StatusBadRequest, msgLoginFieldsRequired)
	}

	user, err := h.useCase.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrValidation):
			return presenter.AuthFail(c, http.StatusBadRequest, msgLoginFieldsRequired)
		case errors.Is(err, auth.ErrInvalidCredentials):
			return presenter.AuthFail(c, http.StatusBadRequest, msgInvalidCredentials)
		default:
			h.log.Error(c.Context(), "login failed", "request_id", middleware.RequestIDFrom(c), "error", err)
			return presenter.AuthFail(c, http.StatusInternalServerError, presenter.MsgServerError)
		}
	}
	return presenter.AuthOK(c, userView(user))
}

func userView(u auth.User) presenter.UserView {
	return presenter.UserView{ID: u.ID, Name: u.Name, Email: u.Email}
}
