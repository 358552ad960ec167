package schedule

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/gamenightlabs/notifier/internal/api/respond"
	"github.com/gamenightlabs/notifier/internal/config"
	"github.com/gamenightlabs/notifier/internal/model"
	schedrepo "github.com/gamenightlabs/notifier/internal/repository/schedule"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/schedule/mock.go -package=mocks
type scheduleService interface {
	GetScheduleStatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.ScheduleStatus, error)
}

// Handler handles HTTP requests for notification schedules.
type Handler struct {
	service scheduleService
	cfg     *config.Config
}

func NewHandler(s scheduleService, cfg *config.Config) *Handler {
	return &Handler{service: s, cfg: cfg}
}

// GetStatus handles HTTP GET requests to retrieve a schedule's status.
func (h *Handler) GetStatus(c *ginext.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("idStr", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	status, err := h.service.GetScheduleStatusByID(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		if errors.Is(err, schedrepo.ErrScheduleNotFound) {
			zlog.Logger.Warn().Str("id", id.String()).Err(err).Msg("schedule not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("schedule not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get schedule status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, status)
}
