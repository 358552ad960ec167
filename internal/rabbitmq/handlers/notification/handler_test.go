package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	mocks "github.com/gamenightlabs/notifier/internal/mocks/rabbitmq/handlers/notification"
	"github.com/gamenightlabs/notifier/internal/model"
	"github.com/gamenightlabs/notifier/internal/rabbitmq/queue"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MocknotificationService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := mocks.NewMocknotificationService(ctrl)

	return NewHandler(mockService), mockService
}

func TestHandler_HandleMessage_JoinNotification(t *testing.T) {
	h, mockService := setupHandler(t)

	participantID := uuid.New()
	evt := queue.NotificationEvent{
		Kind:          model.KindJoinNotification,
		ScheduleID:    uuid.New(),
		GameID:        uuid.New(),
		ParticipantID: &participantID,
		Deadline:      time.Now().Add(time.Hour),
	}

	mockService.EXPECT().
		DeliverJoinNotification(gomock.Any(), evt.GameID, participantID).
		Return(nil)

	h.HandleMessage(context.Background(), evt)
}

func TestHandler_HandleMessage_Reminder(t *testing.T) {
	h, mockService := setupHandler(t)

	evt := queue.NotificationEvent{
		Kind:       model.KindReminder,
		ScheduleID: uuid.New(),
		GameID:     uuid.New(),
		Deadline:   time.Now().Add(time.Hour),
	}

	mockService.EXPECT().
		DeliverReminder(gomock.Any(), evt.GameID).
		Return(nil)

	h.HandleMessage(context.Background(), evt)
}

func TestHandler_HandleMessage_UnknownKindDropped(t *testing.T) {
	h, _ := setupHandler(t)

	evt := queue.NotificationEvent{
		Kind:       model.Kind("carrier_pigeon"),
		ScheduleID: uuid.New(),
		GameID:     uuid.New(),
		Deadline:   time.Now().Add(time.Hour),
	}

	// No service expectations: the event is dropped.
	h.HandleMessage(context.Background(), evt)
}

func TestHandler_HandleMessage_PastDeadlineDropped(t *testing.T) {
	h, _ := setupHandler(t)

	evt := queue.NotificationEvent{
		Kind:       model.KindReminder,
		ScheduleID: uuid.New(),
		GameID:     uuid.New(),
		Deadline:   time.Now().Add(-time.Minute),
	}

	h.HandleMessage(context.Background(), evt)
}

func TestHandler_HandleMessage_JoinWithoutParticipantDropped(t *testing.T) {
	h, _ := setupHandler(t)

	evt := queue.NotificationEvent{
		Kind:       model.KindJoinNotification,
		ScheduleID: uuid.New(),
		GameID:     uuid.New(),
		Deadline:   time.Now().Add(time.Hour),
	}

	h.HandleMessage(context.Background(), evt)
}

func TestHandler_HandleMessage_DeliveryFailureIsLoggedOnly(t *testing.T) {
	h, mockService := setupHandler(t)

	evt := queue.NotificationEvent{
		Kind:       model.KindReminder,
		ScheduleID: uuid.New(),
		GameID:     uuid.New(),
		Deadline:   time.Now().Add(time.Hour),
	}

	mockService.EXPECT().
		DeliverReminder(gomock.Any(), evt.GameID).
		Return(errors.New("dms blocked"))

	h.HandleMessage(context.Background(), evt)
}
