package presenter

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

const MsgServerError = "Server error"

type ErrorResponse struct {
	Message string `json:"message"`
}

// UserView is the public part of a user; the password hash never leaves the service.
type UserView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AuthResponse struct {
	Success bool      `json:"success"`
	User    *UserView `json:"user,omitempty"`
	Message string    `json:"message,omitempty"`
}

type RecommendationResponse struct {
	Recommendation string `json:"recommendation"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

func AuthOK(c *fiber.Ctx, user UserView) error {
	return JSON(c, http.StatusOK, AuthResponse{Success: true, User: &user})
}

func AuthFail(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, AuthResponse{Success: false, Message: message})
}

func Recommendation(c *fiber.Ctx, status int, text string) error {
	return JSON(c, status, RecommendationResponse{Recommendation: text})
}

// ErrorHandler renders errors that escape handlers (unknown routes, panics).
// Only fiber's own errors keep their message; anything else becomes a generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return Error(c, fe.Code, fe.Message)
	}
	return Error(c, http.StatusInternalServerError, MsgServerError)
}
