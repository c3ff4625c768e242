package auth

import (
	"context"
	"errors"
)

// Common errors used by repository/use cases
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStore              = errors.New("store error")
)

// UserRepository abstracts persistence concerns from the domain layer.
// Create must report a unique-email violation as ErrUserAlreadyExists.
type UserRepository interface {
	Create(ctx context.Context, user User) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
}
