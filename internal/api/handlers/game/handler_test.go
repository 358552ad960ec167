package game

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	"github.com/gamenightlabs/notifier/internal/config"
	"github.com/gamenightlabs/notifier/internal/mocks/api/handlers/game"
	"github.com/gamenightlabs/notifier/internal/model"
	gamerepo "github.com/gamenightlabs/notifier/internal/repository/game"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockgameService, *config.Config) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockgameService(ctrl)
	cfg := &config.Config{
		Retry: retry.Strategy{},
		Scheduler: config.Scheduler{
			JoinDelay:    time.Minute,
			ReminderLead: time.Hour,
		},
	}
	validate := validator.New()
	handler := NewHandler(mockService, validate, cfg)

	return handler, mockService, cfg
}

func TestHandler_Create_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	reqBody := CreateRequest{
		Title:              "Friday Catan",
		ScheduledAt:        "2026-09-04T19:00:00Z",
		SignupInstructions: "Bring dice",
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/games", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	scheduledAt, _ := time.Parse(time.RFC3339, reqBody.ScheduledAt)
	g := model.Game{
		Title:              reqBody.Title,
		ScheduledAt:        scheduledAt,
		SignupInstructions: reqBody.SignupInstructions,
	}

	mockService.EXPECT().
		CreateGame(gomock.Any(), cfg.Retry, g, cfg.Scheduler.ReminderLead).
		Return(uuid.New(), nil)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_Create_InvalidScheduledAt(t *testing.T) {
	handler, _, _ := setupHandler(t)

	reqBody := CreateRequest{
		Title:       "Friday Catan",
		ScheduledAt: "next friday",
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/games", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Join_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	gameID := uuid.New()
	participantID := uuid.New()

	reqBody := JoinRequest{UserID: "discord-42"}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/games/"+gameID.String()+"/join", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: gameID.String()}}

	mockService.EXPECT().
		JoinGame(gomock.Any(), cfg.Retry, gameID, "discord-42", false, cfg.Scheduler.JoinDelay).
		Return(participantID, nil)

	handler.Join(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_Join_InvalidGameID(t *testing.T) {
	handler, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/games/not-a-uuid/join", bytes.NewReader(nil))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	handler.Join(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Join_GameNotFound(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	gameID := uuid.New()
	reqBody := JoinRequest{UserID: "discord-42"}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/games/"+gameID.String()+"/join", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: gameID.String()}}

	mockService.EXPECT().
		JoinGame(gomock.Any(), cfg.Retry, gameID, "discord-42", false, cfg.Scheduler.JoinDelay).
		Return(uuid.Nil, gamerepo.ErrGameNotFound)

	handler.Join(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_Leave_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	gameID := uuid.New()
	participantID := uuid.New()

	req := httptest.NewRequest(http.MethodDelete, "/api/games/"+gameID.String()+"/participants/"+participantID.String(), nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{
		{Key: "id", Value: gameID.String()},
		{Key: "participantID", Value: participantID.String()},
	}

	mockService.EXPECT().
		LeaveGame(gomock.Any(), cfg.Retry, participantID).
		Return(nil)

	handler.Leave(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Leave_ParticipantNotFound(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	gameID := uuid.New()
	participantID := uuid.New()

	req := httptest.NewRequest(http.MethodDelete, "/api/games/"+gameID.String()+"/participants/"+participantID.String(), nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{
		{Key: "id", Value: gameID.String()},
		{Key: "participantID", Value: participantID.String()},
	}

	mockService.EXPECT().
		LeaveGame(gomock.Any(), cfg.Retry, participantID).
		Return(gamerepo.ErrParticipantNotFound)

	handler.Leave(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}
