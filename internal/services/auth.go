package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("login or password is incorrect")
)

// AuthService authenticates the single admin account whose credentials
// come from configuration. The dashboard has no self-service users.
type AuthService struct {
	adminLogin        string
	adminPasswordHash string
}

func NewAuthService(adminLogin, adminPasswordHash string) *AuthService {
	return &AuthService{
		adminLogin:        adminLogin,
		adminPasswordHash: adminPasswordHash,
	}
}

// Login verifies the admin credentials. A missing configured hash rejects
// every attempt.
func (auth *AuthService) Login(_ context.Context, login, password string) error {
	if login == "" || password == "" {
		return ErrInvalidCredentials
	}

	if login != auth.adminLogin || auth.adminPasswordHash == "" {
		return ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(auth.adminPasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidCredentials
		}
		return err
	}

	return nil
}
