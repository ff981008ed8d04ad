package service

import (
	"context"
	"crypto/subtle"
	"errors"
)

var (
	ErrPasswordRequired = errors.New("password is required")
	ErrWrongPassword    = errors.New("invalid password")
)

// AuthService is the admin gate's credential check. There is a single
// process-wide secret fixed at startup; no per-user accounts, no issued-token
// bookkeeping.
type AuthService struct {
	adminPassword []byte
}

func NewAuthService(adminPassword string) *AuthService {
	return &AuthService{
		adminPassword: []byte(adminPassword),
	}
}

// Login checks the submitted password against the configured secret.
// Token minting is the caller's concern.
func (s *AuthService) Login(_ context.Context, password string) error {
	if password == "" {
		return ErrPasswordRequired
	}

	if subtle.ConstantTimeCompare([]byte(password), s.adminPassword) != 1 {
		return ErrWrongPassword
	}

	return nil
}
