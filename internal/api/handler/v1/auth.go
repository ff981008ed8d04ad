package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sakha-fpv/federation-api/internal/api/handler/v1/request"
	"github.com/sakha-fpv/federation-api/internal/api/handler/v1/response"
	"github.com/sakha-fpv/federation-api/internal/api/middleware"
	"github.com/sakha-fpv/federation-api/internal/config"
	"github.com/sakha-fpv/federation-api/internal/pkg/admintoken"
	"github.com/sakha-fpv/federation-api/internal/service"
)

type AuthService interface {
	Login(ctx context.Context, password string) error
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleLogin godoc
// @Summary      Exchange the admin password for a session token
// @Tags         auth
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.Login(ctx.Request.Context(), req.Password); err != nil {
		if errors.Is(err, service.ErrPasswordRequired) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}
		if errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	token, err := admintoken.Generate([]byte(h.conf.TokenSigningKey))
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> admintoken.Generate -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Success: true,
		Token:   token,
		Message: "Login successful",
	})
}

// HandleVerify godoc
// @Summary      Check whether a session token is valid
// @Tags         auth
// @Produce      json
// @Param        token    query      string false "token (alternative to the Authorization header)"
// @Success      200      {object}   response.VerifyResponse
// @Router       /auth/verify [get]
func (h *AuthHandler) HandleVerify(ctx *gin.Context) {
	// Never errors: a missing or malformed token just reads as false.
	authenticated := admintoken.Verify(
		[]byte(h.conf.TokenSigningKey),
		middleware.TokenFromRequest(ctx),
	)

	ctx.JSON(http.StatusOK, response.VerifyResponse{
		Authenticated: authenticated,
	})
}
