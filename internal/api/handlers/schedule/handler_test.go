package schedule

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	"github.com/gamenightlabs/notifier/internal/config"
	"github.com/gamenightlabs/notifier/internal/mocks/api/handlers/schedule"
	"github.com/gamenightlabs/notifier/internal/model"
	schedrepo "github.com/gamenightlabs/notifier/internal/repository/schedule"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockscheduleService, *config.Config) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockscheduleService(ctrl)
	cfg := &config.Config{Retry: retry.Strategy{}}
	handler := NewHandler(mockService, cfg)
	return handler, mockService, cfg
}

func TestHandler_GetStatus_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)
	id := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/api/schedules/"+id.String(), nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		GetScheduleStatusByID(gomock.Any(), cfg.Retry, id).
		Return(model.StatusPending, nil)

	handler.GetStatus(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_GetStatus_NotFound(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)
	id := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/api/schedules/"+id.String(), nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		GetScheduleStatusByID(gomock.Any(), cfg.Retry, id).
		Return(model.ScheduleStatus(""), schedrepo.ErrScheduleNotFound)

	handler.GetStatus(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_GetStatus_InvalidID(t *testing.T) {
	handler, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/schedules/nope", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "nope"}}

	handler.GetStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}
