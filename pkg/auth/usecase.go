package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor applied to new passwords.
const PasswordCost = bcrypt.DefaultCost

// maxPasswordBytes is the most bcrypt reads; longer passwords are cut to it
// on both signup and login, as classic bcrypt implementations do.
const maxPasswordBytes = 72

// AuthUseCase describes registration and credential verification.
// Neither call issues a session or token.
type AuthUseCase interface {
	Signup(ctx context.Context, name, email, password string) (User, error)
	Login(ctx context.Context, email, password string) (User, error)
}

type authService struct {
	repo UserRepository
	cost int
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(repo UserRepository) AuthUseCase {
	return &authService{repo: repo, cost: PasswordCost}
}

func (s *authService) Signup(ctx context.Context, name, email, password string) (User, error) {
	if blank(name) || blank(email) || blank(password) {
		return User{}, ErrValidation
	}

	// Best-effort check; the unique constraint on users.email is what actually
	// rejects concurrent duplicates.
	_, err := s.repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return User{}, ErrUserAlreadyExists
	case !errors.Is(err, ErrNotFound):
		return User{}, fmt.Errorf("%w: lookup user: %v", ErrStore, err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword(passwordBytes(password), s.cost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, User{
		Name:         name,
		Email:        email,
		PasswordHash: string(passwordHash),
	})
	if err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			return User{}, ErrUserAlreadyExists
		}
		return User{}, fmt.Errorf("%w: create user: %v", ErrStore, err)
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (User, error) {
	if blank(email) || blank(password) {
		return User{}, ErrValidation
	}
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, fmt.Errorf("%w: lookup user: %v", ErrStore, err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), passwordBytes(password)) != nil {
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}

func passwordBytes(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
