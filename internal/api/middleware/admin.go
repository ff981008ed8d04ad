package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sakha-fpv/federation-api/internal/api/handler/v1/response"
	"github.com/sakha-fpv/federation-api/internal/pkg/admintoken"
)

// Authenticator guards the admin-only routes. It only checks that the bearer
// token was minted with the configured signing key; there is no session store
// behind it.
type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

func (a *Authenticator) RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !admintoken.Verify(a.signingKey, TokenFromRequest(ctx)) {
			response.RenderErr(ctx, response.ErrUnauthorized())

			return
		}

		ctx.Next()
	}
}

// TokenFromRequest pulls the admin token from the Authorization header,
// falling back to the token query parameter, as the admin console sends both
// forms.
func TokenFromRequest(ctx *gin.Context) string {
	header := ctx.GetHeader("Authorization")
	if token, found := strings.CutPrefix(header, "Bearer "); found {
		return token
	}

	return ctx.Query("token")
}
