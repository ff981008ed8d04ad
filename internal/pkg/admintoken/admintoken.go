// Package admintoken mints and checks the opaque session token handed out by
// the admin login. Verification is stateless: a token is valid whenever its
// signature checks out, for as long as the signing key stays configured.
// There is deliberately no expiry and no server-side revocation.
package admintoken

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "federation-admin"

// Generate mints a signed token carrying the issue time and a random ID, so
// every login yields a distinct, unguessable token.
func Generate(signingKey []byte) (string, error) {
	jti := make([]byte, 16)
	if _, err := rand.Read(jti); err != nil {
		return "", fmt.Errorf("rand.Read -> %w", err)
	}

	claims := jwt.RegisteredClaims{
		Issuer:   issuer,
		Subject:  "admin",
		IssuedAt: jwt.NewNumericDate(time.Now()),
		ID:       hex.EncodeToString(jti),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	if err != nil {
		return "", fmt.Errorf("token.SignedString -> %w", err)
	}

	return token, nil
}

// Verify reports whether the token was minted with the given key. It never
// errors: malformed, missing, or tampered tokens all read as false.
func Verify(signingKey []byte, tokenString string) bool {
	if tokenString == "" {
		return false
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}

		return signingKey, nil
	})

	return err == nil && token.Valid
}
