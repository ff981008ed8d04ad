package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakha-fpv/federation-api/internal/pkg/admintoken"
)

func adminTestRouter(signingKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/admin-only", NewAuthenticator(signingKey).RequireAdmin(), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return router
}

func TestRequireAdmin(t *testing.T) {
	const signingKey = "test-signing-key"

	token, err := admintoken.Generate([]byte(signingKey))
	require.NoError(t, err)
	foreign, err := admintoken.Generate([]byte("some-other-key"))
	require.NoError(t, err)

	router := adminTestRouter(signingKey)

	tests := []struct {
		name       string
		header     string
		query      string
		wantStatus int
	}{
		{"no token", "", "", http.StatusUnauthorized},
		{"valid bearer token", "Bearer " + token, "", http.StatusOK},
		{"valid query token", "", token, http.StatusOK},
		{"bearer token from another key", "Bearer " + foreign, "", http.StatusUnauthorized},
		{"garbage bearer token", "Bearer nonsense", "", http.StatusUnauthorized},
		{"token without bearer prefix", token, "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/admin-only"
			if tt.query != "" {
				target += "?token=" + tt.query
			}

			req := httptest.NewRequest(http.MethodGet, target, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"admin token is missing or invalid"}`, rec.Body.String())
			}
		})
	}
}

func TestTokenFromRequest_HeaderWinsOverQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodGet, "/?token=from-query", nil)
	ctx.Request.Header.Set("Authorization", "Bearer from-header")

	assert.Equal(t, "from-header", TokenFromRequest(ctx))
}
