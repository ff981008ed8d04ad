package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakha-fpv/federation-api/internal/api/handler/v1/response"
	"github.com/sakha-fpv/federation-api/internal/config"
	"github.com/sakha-fpv/federation-api/internal/pkg/admintoken"
	"github.com/sakha-fpv/federation-api/internal/service"
)

func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	conf := &config.APIConfig{TokenSigningKey: "test-signing-key"}
	handler := NewAuthHandler(conf, service.NewAuthService("secret-pass1"))

	router := gin.New()
	router.POST("/api/auth/login", handler.HandleLogin)
	router.GET("/api/auth/verify", handler.HandleVerify)

	return router
}

func TestAuthHandler_HandleLogin(t *testing.T) {
	router := authTestRouter()

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"correct password", `{"password":"secret-pass1"}`, http.StatusOK},
		{"wrong password", `{"password":"nope"}`, http.StatusUnauthorized},
		{"missing password", `{}`, http.StatusBadRequest},
		{"malformed body", `{"password":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAuthHandler_LoginThenVerify(t *testing.T) {
	router := authTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"password":"secret-pass1"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var login response.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	assert.True(t, login.Success)
	assert.Equal(t, "Login successful", login.Message)
	require.NotEmpty(t, login.Token)
	assert.True(t, admintoken.Verify([]byte("test-signing-key"), login.Token))

	verifyReq := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	verifyReq.Header.Set("Authorization", "Bearer "+login.Token)
	verifyRec := httptest.NewRecorder()
	router.ServeHTTP(verifyRec, verifyReq)

	require.Equal(t, http.StatusOK, verifyRec.Code)
	assert.JSONEq(t, `{"authenticated":true}`, verifyRec.Body.String())
}

func TestAuthHandler_HandleVerify_NeverErrors(t *testing.T) {
	router := authTestRouter()

	tests := []struct {
		name   string
		header string
	}{
		{"no token", ""},
		{"garbage token", "Bearer gibberish"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"authenticated":false}`, rec.Body.String())
		})
	}
}
