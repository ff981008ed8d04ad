package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthService_Login(t *testing.T) {
	svc := NewAuthService("secret-pass1")

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"correct password", "secret-pass1", nil},
		{"wrong password", "wrong", ErrWrongPassword},
		{"prefix of the secret", "secret-pass", ErrWrongPassword},
		{"missing password", "", ErrPasswordRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Login(context.Background(), tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
