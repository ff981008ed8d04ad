package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakha-fpv/federation-api/internal/domain"
	"github.com/sakha-fpv/federation-api/internal/service"
)

type stubParticipantService struct {
	gotLimit   int
	created    domain.Participant
	createErr  error
	deleteErr  error
	getErr     error
	getResult  domain.Participant
	topResult  []domain.RankedParticipant
	listResult []domain.Participant
}

func (s *stubParticipantService) List(context.Context) ([]domain.Participant, error) {
	return s.listResult, nil
}

func (s *stubParticipantService) Top(_ context.Context, limit int) ([]domain.RankedParticipant, error) {
	s.gotLimit = limit

	return s.topResult, nil
}

func (s *stubParticipantService) Get(context.Context, uuid.UUID) (domain.Participant, error) {
	return s.getResult, s.getErr
}

func (s *stubParticipantService) Create(_ context.Context, p domain.Participant) (domain.Participant, error) {
	if s.createErr != nil {
		return domain.Participant{}, s.createErr
	}
	s.created = p

	return p, nil
}

func (s *stubParticipantService) Update(context.Context, uuid.UUID, domain.ParticipantUpdate) (domain.Participant, error) {
	return domain.Participant{}, service.ErrParticipantNotFound
}

func (s *stubParticipantService) Delete(context.Context, uuid.UUID) error {
	return s.deleteErr
}

func participantTestRouter(svc ParticipantService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewParticipantHandler(svc)

	router := gin.New()
	router.GET("/api/participants", handler.HandleListParticipants)
	router.GET("/api/participants/top", handler.HandleTopParticipants)
	router.GET("/api/participants/:participantID", handler.HandleGetParticipant)
	router.POST("/api/participants", handler.HandleCreateParticipant)
	router.PUT("/api/participants/:participantID", handler.HandleUpdateParticipant)
	router.DELETE("/api/participants/:participantID", handler.HandleDeleteParticipant)

	return router
}

func TestParticipantHandler_TopLimitParsing(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantLimit int
	}{
		{"omitted", "", 0},
		{"numeric", "?limit=25", 25},
		{"non-numeric falls back", "?limit=abc", 0},
		{"negative passed through", "?limit=-3", -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubParticipantService{}
			router := participantTestRouter(stub)

			req := httptest.NewRequest(http.MethodGet, "/api/participants/top"+tt.query, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantLimit, stub.gotLimit)
		})
	}
}

func TestParticipantHandler_Create(t *testing.T) {
	stub := &stubParticipantService{}
	router := participantTestRouter(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/participants",
		strings.NewReader(`{"username":"pilot-one","rating":1200}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "pilot-one", stub.created.Username)
	assert.Equal(t, 1200, stub.created.Rating)
}

func TestParticipantHandler_Create_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		createErr  error
		wantStatus int
	}{
		{"missing username", `{"rating":1200}`, nil, http.StatusBadRequest},
		{"negative rating", `{"username":"pilot","rating":-1}`, nil, http.StatusBadRequest},
		{"duplicate username", `{"username":"pilot"}`, service.ErrUsernameExists, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubParticipantService{createErr: tt.createErr}
			router := participantTestRouter(stub)

			req := httptest.NewRequest(http.MethodPost, "/api/participants", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestParticipantHandler_InvalidID(t *testing.T) {
	stub := &stubParticipantService{}
	router := participantTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/participants/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid id"}`, rec.Body.String())
}

func TestParticipantHandler_GetNotFound(t *testing.T) {
	stub := &stubParticipantService{getErr: service.ErrParticipantNotFound}
	router := participantTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/participants/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestParticipantHandler_Delete(t *testing.T) {
	stub := &stubParticipantService{}
	router := participantTestRouter(stub)

	req := httptest.NewRequest(http.MethodDelete, "/api/participants/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Participant deleted successfully"}`, rec.Body.String())
}
