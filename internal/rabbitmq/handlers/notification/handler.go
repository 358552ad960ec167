package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/gamenightlabs/notifier/internal/model"
	"github.com/gamenightlabs/notifier/internal/rabbitmq/queue"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/notification/mock.go -package=mocks
type notificationService interface {
	DeliverJoinNotification(ctx context.Context, gameID, participantID uuid.UUID) error
	DeliverReminder(ctx context.Context, gameID uuid.UUID) error
}

// Handler routes notification events to the handler for their kind.
type Handler struct {
	service notificationService
}

func NewHandler(svc notificationService) *Handler {
	return &Handler{
		service: svc,
	}
}

// HandleMessage dispatches a due-notification event by its kind.
//
// Events past their deadline are dropped: the session has started or
// expired and a late notification would be noise. Malformed or unknown
// kinds are logged and dropped rather than requeued, so a bad message
// can never wedge the queue. Delivery failures are logged only; this
// consumer does not retry delivery.
func (h *Handler) HandleMessage(ctx context.Context, evt queue.NotificationEvent) {
	zlog.Logger.Info().
		Str("schedule_id", evt.ScheduleID.String()).
		Str("kind", string(evt.Kind)).
		Msg("handling notification event")

	if !evt.Deadline.IsZero() && time.Now().After(evt.Deadline) {
		zlog.Logger.Info().Str("schedule_id", evt.ScheduleID.String()).Msg("event past deadline, dropping")
		return
	}

	var err error

	switch evt.Kind {
	case model.KindJoinNotification:
		if evt.ParticipantID == nil {
			zlog.Logger.Error().Str("schedule_id", evt.ScheduleID.String()).Msg("join notification event without participant id, dropping")
			return
		}

		err = h.service.DeliverJoinNotification(ctx, evt.GameID, *evt.ParticipantID)
	case model.KindReminder:
		err = h.service.DeliverReminder(ctx, evt.GameID)
	default:
		zlog.Logger.Error().Str("kind", string(evt.Kind)).Str("schedule_id", evt.ScheduleID.String()).Msg("unknown notification kind, dropping")
		return
	}

	if err != nil {
		zlog.Logger.Error().Err(err).Str("schedule_id", evt.ScheduleID.String()).Msg("failed to handle notification event")
		return
	}

	zlog.Logger.Info().Str("schedule_id", evt.ScheduleID.String()).Msg("notification event handled")
}
