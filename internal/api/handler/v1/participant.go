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
	"github.com/sakha-fpv/federation-api/internal/domain"
	"github.com/sakha-fpv/federation-api/internal/service"
)

var errInvalidID = errors.New("invalid id")

type ParticipantService interface {
	List(ctx context.Context) ([]domain.Participant, error)
	Top(ctx context.Context, limit int) ([]domain.RankedParticipant, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Participant, error)
	Create(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	Update(ctx context.Context, id uuid.UUID, update domain.ParticipantUpdate) (domain.Participant, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ParticipantHandler struct {
	svc ParticipantService
}

func NewParticipantHandler(svc ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{
		svc: svc,
	}
}

// HandleListParticipants godoc
// @Summary      List all participants, highest rating first
// @Tags         participants
// @Produce      json
// @Success      200      {array}    domain.Participant
// @Failure      500      {object}   response.Err
// @Router       /participants [get]
func (h *ParticipantHandler) HandleListParticipants(ctx *gin.Context) {
	participants, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListParticipants -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, participants)
}

// HandleTopParticipants godoc
// @Summary      List the top-rated participants with ranks
// @Tags         participants
// @Produce      json
// @Param        limit    query      int false "page size (default 10)"
// @Success      200      {array}    domain.RankedParticipant
// @Failure      500      {object}   response.Err
// @Router       /participants/top [get]
func (h *ParticipantHandler) HandleTopParticipants(ctx *gin.Context) {
	// An omitted or non-numeric limit falls back to the default; there is no
	// enforced upper bound.
	limit, err := strconv.Atoi(ctx.Query("limit"))
	if err != nil {
		limit = 0
	}

	ranked, err := h.svc.Top(ctx.Request.Context(), limit)
	if err != nil {
		err = fmt.Errorf("v1.HandleTopParticipants -> h.svc.Top -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, ranked)
}

// HandleGetParticipant godoc
// @Summary      Get one participant
// @Tags         participants
// @Produce      json
// @Param        participantID   path      string true "participant ID"
// @Success      200      {object}   domain.Participant
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /participants/{participantID} [get]
func (h *ParticipantHandler) HandleGetParticipant(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("participantID"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errInvalidID))

		return
	}

	participant, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrParticipantNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrParticipantNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleGetParticipant -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, participant)
}

// HandleCreateParticipant godoc
// @Summary      Create a participant
// @Tags         participants
// @Produce      json
// @Param        request   body      request.CreateParticipantRequest true "request body"
// @Success      201      {object}   domain.Participant
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /participants [post]
func (h *ParticipantHandler) HandleCreateParticipant(ctx *gin.Context) {
	req := request.CreateParticipantRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	participant := domain.Participant{
		Username: req.Username,
		Avatar:   req.Avatar,
	}
	if req.Rating != nil {
		participant.Rating = *req.Rating
	}
	if req.Wins != nil {
		participant.Wins = *req.Wins
	}
	if req.Losses != nil {
		participant.Losses = *req.Losses
	}
	if req.Draws != nil {
		participant.Draws = *req.Draws
	}

	created, err := h.svc.Create(ctx.Request.Context(), participant)
	if err != nil {
		if errors.Is(err, service.ErrUsernameRequired) || errors.Is(err, service.ErrUsernameExists) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleCreateParticipant -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateParticipant godoc
// @Summary      Update a participant (partial)
// @Tags         participants
// @Produce      json
// @Param        participantID   path      string true "participant ID"
// @Param        request   body      request.UpdateParticipantRequest true "request body"
// @Success      200      {object}   domain.Participant
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /participants/{participantID} [put]
func (h *ParticipantHandler) HandleUpdateParticipant(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("participantID"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errInvalidID))

		return
	}

	req := request.UpdateParticipantRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	updated, err := h.svc.Update(ctx.Request.Context(), id, domain.ParticipantUpdate{
		Username: req.Username,
		Avatar:   req.Avatar,
		Rating:   req.Rating,
		Wins:     req.Wins,
		Losses:   req.Losses,
		Draws:    req.Draws,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrParticipantNotFound):
			response.RenderErr(ctx, response.ErrNotFound(service.ErrParticipantNotFound))
		case errors.Is(err, service.ErrUsernameRequired), errors.Is(err, service.ErrUsernameExists):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleUpdateParticipant -> h.svc.Update -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteParticipant godoc
// @Summary      Delete a participant
// @Tags         participants
// @Produce      json
// @Param        participantID   path      string true "participant ID"
// @Success      200      {object}   response.DeleteResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /participants/{participantID} [delete]
func (h *ParticipantHandler) HandleDeleteParticipant(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("participantID"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errInvalidID))

		return
	}

	if err = h.svc.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrParticipantNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrParticipantNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteParticipant -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.DeleteResponse{
		Success: true,
		Message: "Participant deleted successfully",
	})
}
