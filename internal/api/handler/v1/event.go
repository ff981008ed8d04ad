package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sakha-fpv/federation-api/internal/api/handler/v1/request"
	"github.com/sakha-fpv/federation-api/internal/api/handler/v1/response"
	"github.com/sakha-fpv/federation-api/internal/domain"
	"github.com/sakha-fpv/federation-api/internal/service"
)

type EventService interface {
	List(ctx context.Context) ([]domain.Event, error)
	Upcoming(ctx context.Context, limit int) ([]domain.Event, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Event, error)
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	Update(ctx context.Context, id uuid.UUID, update domain.EventUpdate) (domain.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Register(ctx context.Context, eventID, participantID uuid.UUID) (domain.EventRegistration, error)
	ListRegistrations(ctx context.Context, eventID uuid.UUID) ([]domain.EventRegistration, error)
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

// HandleListEvents godoc
// @Summary      List all events, soonest first
// @Tags         events
// @Produce      json
// @Success      200      {array}    domain.Event
// @Failure      500      {object}   response.Err
// @Router       /events [get]
func (h *EventHandler) HandleListEvents(ctx *gin.Context) {
	events, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListEvents -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleUpcomingEvents godoc
// @Summary      List events happening today or later
// @Tags         events
// @Produce      json
// @Param        limit    query      int false "page size (default 10)"
// @Success      200      {array}    domain.Event
// @Failure      500      {object}   response.Err
// @Router       /events/upcoming [get]
func (h *EventHandler) HandleUpcomingEvents(ctx *gin.Context) {
	limit, err := strconv.Atoi(ctx.Query("limit"))
	if err != nil {
		limit = 0
	}

	events, err := h.svc.Upcoming(ctx.Request.Context(), limit)
	if err != nil {
		err = fmt.Errorf("v1.HandleUpcomingEvents -> h.svc.Upcoming -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleGetEvent godoc
// @Summary      Get one event
// @Tags         events
// @Produce      json
// @Param        eventID   path      string true "event ID"
// @Success      200      {object}   domain.Event
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /events/{eventID} [get]
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("eventID"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errInvalidID))

		return
	}

	event, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrEventNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleGetEvent -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Tags         events
// @Produce      json
// @Param        request   body      request.CreateEventRequest true "request body"
// @Success      201      {object}   domain.Event
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /events [post]
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	req := request.CreateEventRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	eventDate, err := time.Parse(request.DateLayout, req.EventDate)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	event := domain.Event{
		Title:           req.Title,
		Description:     req.Description,
		EventDate:       eventDate,
		EventTime:       req.EventTime,
		Location:        req.Location,
		Status:          req.Status,
		MaxParticipants: req.MaxParticipants,
	}
	if req.RegistrationOpen != nil {
		event.RegistrationOpen = *req.RegistrationOpen
	}

	created, err := h.svc.Create(ctx.Request.Context(), event)
	if err != nil {
		if errors.Is(err, service.ErrEventFieldsRequired) ||
			errors.Is(err, service.ErrInvalidEventStatus) ||
			errors.Is(err, service.ErrInvalidMaxEntrants) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleCreateEvent -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateEvent godoc
// @Summary      Update an event (partial)
// @Tags         events
// @Produce      json
// @Param        eventID   path      string true "event ID"
// @Param        request   body      request.UpdateEventRequest true "request body"
// @Success      200      {object}   domain.Event
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /events/{eventID} [put]
func (h *EventHandler) HandleUpdateEvent(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("eventID"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errInvalidID))

		return
	}

	req := request.UpdateEventRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	update := domain.EventUpdate{
		Title:            req.Title,
		Description:      req.Description,
		EventTime:        req.EventTime,
		Location:         req.Location,
		Status:           req.Status,
		RegistrationOpen: req.RegistrationOpen,
		MaxParticipants:  req.MaxParticipants,
	}
	if req.EventDate != nil {
		eventDate, err := time.Parse(request.DateLayout, *req.EventDate)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}
		update.EventDate = &eventDate
	}

	updated, err := h.svc.Update(ctx.Request.Context(), id, update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound(service.ErrEventNotFound))
		case errors.Is(err, service.ErrInvalidEventStatus), errors.Is(err, service.ErrInvalidMaxEntrants):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleUpdateEvent -> h.svc.Update -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteEvent godoc
// @Summary      Delete an event
// @Tags         events
// @Produce      json
// @Param        eventID   path      string true "event ID"
// @Success      200      {object}   response.DeleteResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /events/{eventID} [delete]
func (h *EventHandler) HandleDeleteEvent(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("eventID"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errInvalidID))

		return
	}

	if err = h.svc.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrEventNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteEvent -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.DeleteResponse{
		Success: true,
		Message: "Event deleted successfully",
	})
}

// HandleRegisterParticipant godoc
// @Summary      Register a participant for an event
// @Tags         events
// @Produce      json
// @Param        eventID   path      string true "event ID"
// @Param        request   body      request.RegisterParticipantRequest true "request body"
// @Success      201      {object}   domain.EventRegistration
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /events/{eventID}/register [post]
func (h *EventHandler) HandleRegisterParticipant(ctx *gin.Context) {
	eventID, err := uuid.Parse(ctx.Param("eventID"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errInvalidID))

		return
	}

	req := request.RegisterParticipantRequest{}
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	participantID, err := uuid.Parse(req.ParticipantID)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errInvalidID))

		return
	}

	registration, err := h.svc.Register(ctx.Request.Context(), eventID, participantID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound(service.ErrEventNotFound))
		case errors.Is(err, service.ErrParticipantNotFound):
			response.RenderErr(ctx, response.ErrNotFound(service.ErrParticipantNotFound))
		case errors.Is(err, service.ErrAlreadyRegistered):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrAlreadyRegistered))
		default:
			err = fmt.Errorf("v1.HandleRegisterParticipant -> h.svc.Register -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, registration)
}

// HandleListRegistrations godoc
// @Summary      List registrations for an event
// @Tags         events
// @Produce      json
// @Param        eventID   path      string true "event ID"
// @Success      200      {array}    domain.EventRegistration
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /events/{eventID}/registrations [get]
func (h *EventHandler) HandleListRegistrations(ctx *gin.Context) {
	eventID, err := uuid.Parse(ctx.Param("eventID"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errInvalidID))

		return
	}

	registrations, err := h.svc.ListRegistrations(ctx.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrEventNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleListRegistrations -> h.svc.ListRegistrations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, registrations)
}
