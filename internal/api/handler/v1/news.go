package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sakha-fpv/federation-api/internal/api/handler/v1/request"
	"github.com/sakha-fpv/federation-api/internal/api/handler/v1/response"
	"github.com/sakha-fpv/federation-api/internal/api/middleware"
	"github.com/sakha-fpv/federation-api/internal/config"
	"github.com/sakha-fpv/federation-api/internal/domain"
	"github.com/sakha-fpv/federation-api/internal/pkg/admintoken"
	"github.com/sakha-fpv/federation-api/internal/service"
)

type NewsService interface {
	ListPublished(ctx context.Context) ([]domain.News, error)
	ListAll(ctx context.Context) ([]domain.News, error)
	Latest(ctx context.Context, limit int) ([]domain.News, error)
	Get(ctx context.Context, id uuid.UUID) (domain.News, error)
	GetPublished(ctx context.Context, id uuid.UUID) (domain.News, error)
	Create(ctx context.Context, news domain.News) (domain.News, error)
	Update(ctx context.Context, id uuid.UUID, update domain.NewsUpdate) (domain.News, error)
	Publish(ctx context.Context, id uuid.UUID) (domain.News, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type NewsHandler struct {
	conf *config.APIConfig
	svc  NewsService
}

func NewNewsHandler(conf *config.APIConfig, svc NewsService) *NewsHandler {
	return &NewsHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleListNews godoc
// @Summary      List news
// @Description  Public mode returns published items, newest publication first.
// @Description  With admin=true and a valid token, drafts are included and the
// @Description  listing is ordered by creation time instead.
// @Tags         news
// @Produce      json
// @Param        admin    query      bool false "administrative mode"
// @Success      200      {array}    domain.News
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /news [get]
func (h *NewsHandler) HandleListNews(ctx *gin.Context) {
	if ctx.Query("admin") == "true" {
		// The privilege check happens here, before selecting the
		// administrative mode; the service itself does not authenticate.
		if !admintoken.Verify([]byte(h.conf.TokenSigningKey), middleware.TokenFromRequest(ctx)) {
			response.RenderErr(ctx, response.ErrUnauthorized())

			return
		}

		news, err := h.svc.ListAll(ctx.Request.Context())
		if err != nil {
			err = fmt.Errorf("v1.HandleListNews -> h.svc.ListAll -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))

			return
		}

		ctx.JSON(http.StatusOK, news)

		return
	}

	news, err := h.svc.ListPublished(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListNews -> h.svc.ListPublished -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, news)
}

// HandleLatestNews godoc
// @Summary      List the most recently published news
// @Tags         news
// @Produce      json
// @Param        limit    query      int false "page size (default 10)"
// @Success      200      {array}    domain.News
// @Failure      500      {object}   response.Err
// @Router       /news/latest [get]
func (h *NewsHandler) HandleLatestNews(ctx *gin.Context) {
	limit, err := strconv.Atoi(ctx.Query("limit"))
	if err != nil {
		limit = 0
	}

	news, err := h.svc.Latest(ctx.Request.Context(), limit)
	if err != nil {
		err = fmt.Errorf("v1.HandleLatestNews -> h.svc.Latest -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, news)
}

// HandleGetNews godoc
// @Summary      Get one published news item
// @Tags         news
// @Produce      json
// @Param        newsID   path      string true "news ID"
// @Success      200      {object}   domain.News
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /news/{newsID} [get]
func (h *NewsHandler) HandleGetNews(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("newsID"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errInvalidID))

		return
	}

	// Drafts read as absent on the public site.
	news, err := h.svc.GetPublished(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNewsNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrNewsNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleGetNews -> h.svc.GetPublished -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, news)
}

// HandleCreateNews godoc
// @Summary      Create a news draft
// @Tags         news
// @Produce      json
// @Param        request   body      request.CreateNewsRequest true "request body"
// @Success      201      {object}   domain.News
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /news [post]
func (h *NewsHandler) HandleCreateNews(ctx *gin.Context) {
	req := request.CreateNewsRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	news := domain.News{
		Title:    req.Title,
		Content:  req.Content,
		Excerpt:  req.Excerpt,
		ImageURL: req.ImageURL,
		Author:   req.Author,
	}
	if req.Published != nil {
		news.Published = *req.Published
	}

	created, err := h.svc.Create(ctx.Request.Context(), news)
	if err != nil {
		if errors.Is(err, service.ErrNewsFieldsRequired) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleCreateNews -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateNews godoc
// @Summary      Update a news item (partial)
// @Tags         news
// @Produce      json
// @Param        newsID   path      string true "news ID"
// @Param        request   body      request.UpdateNewsRequest true "request body"
// @Success      200      {object}   domain.News
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /news/{newsID} [put]
func (h *NewsHandler) HandleUpdateNews(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("newsID"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errInvalidID))

		return
	}

	req := request.UpdateNewsRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	updated, err := h.svc.Update(ctx.Request.Context(), id, domain.NewsUpdate{
		Title:     req.Title,
		Content:   req.Content,
		Excerpt:   req.Excerpt,
		ImageURL:  req.ImageURL,
		Author:    req.Author,
		Published: req.Published,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNewsNotFound):
			response.RenderErr(ctx, response.ErrNotFound(service.ErrNewsNotFound))
		case errors.Is(err, service.ErrNewsFieldsRequired):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleUpdateNews -> h.svc.Update -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandlePublishNews godoc
// @Summary      Publish a news item
// @Tags         news
// @Produce      json
// @Param        newsID   path      string true "news ID"
// @Success      200      {object}   domain.News
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /news/{newsID}/publish [post]
func (h *NewsHandler) HandlePublishNews(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("newsID"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errInvalidID))

		return
	}

	published, err := h.svc.Publish(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNewsNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrNewsNotFound))

			return
		}

		err = fmt.Errorf("v1.HandlePublishNews -> h.svc.Publish -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, published)
}

// HandleDeleteNews godoc
// @Summary      Delete a news item
// @Tags         news
// @Produce      json
// @Param        newsID   path      string true "news ID"
// @Success      200      {object}   response.DeleteResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /news/{newsID} [delete]
func (h *NewsHandler) HandleDeleteNews(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("newsID"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errInvalidID))

		return
	}

	if err = h.svc.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNewsNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrNewsNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteNews -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.DeleteResponse{
		Success: true,
		Message: "News deleted successfully",
	})
}
