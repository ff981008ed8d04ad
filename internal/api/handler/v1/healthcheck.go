package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sakha-fpv/federation-api/internal/api/handler/v1/response"
)

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Tags         health
// @Produce      json
// @Success      200      {object}   response.HealthcheckResponse
// @Router       /health [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.HealthcheckResponse{
		Status:  "ok",
		Message: "Backend is running",
	})
}
