package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/gamenightlabs/notifier/internal/model"
	"github.com/gamenightlabs/notifier/internal/repository/schedule"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/game/mock.go -package=mocks

type gameRepository interface {
	CreateGame(context.Context, model.Game) (uuid.UUID, error)
	GetGameByID(context.Context, uuid.UUID) (model.Game, error)
	CreateParticipant(context.Context, model.Participant) (uuid.UUID, error)
	DeleteParticipant(context.Context, uuid.UUID) error
}

type scheduler interface {
	ScheduleJoinNotification(ctx context.Context, strategy retry.Strategy, gameID, participantID uuid.UUID, gameScheduledAt time.Time, delay time.Duration) (model.NotificationSchedule, error)
	ScheduleGameReminder(ctx context.Context, strategy retry.Strategy, gameID uuid.UUID, gameScheduledAt time.Time, lead time.Duration) (model.NotificationSchedule, error)
	CancelForParticipant(ctx context.Context, strategy retry.Strategy, participantID uuid.UUID) error
}

// Service covers the domain actions that drive the schedule creator:
// creating a game, joining it, and leaving it.
type Service struct {
	repo      gameRepository
	scheduler scheduler
}

func NewService(repo gameRepository, scheduler scheduler) *Service {
	return &Service{repo: repo, scheduler: scheduler}
}

// CreateGame creates a game and schedules its reminder, firing lead before
// the scheduled start. A reminder that cannot be scheduled does not fail
// game creation; it is logged and the game stands.
func (s *Service) CreateGame(ctx context.Context, strategy retry.Strategy, g model.Game, lead time.Duration) (uuid.UUID, error) {
	id, err := s.repo.CreateGame(ctx, g)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create game: %w", err)
	}

	if _, err := s.scheduler.ScheduleGameReminder(ctx, strategy, id, g.ScheduledAt, lead); err != nil {
		zlog.Logger.Error().Err(err).Str("game_id", id.String()).Msg("failed to schedule game reminder")
	}

	return id, nil
}

// JoinGame adds a user to a game and schedules their joined-confirmation.
//
// A duplicate pending confirmation means the participant is already
// scheduled; that is treated as success, not surfaced to the caller.
func (s *Service) JoinGame(ctx context.Context, strategy retry.Strategy, gameID uuid.UUID, userID string, waitlisted bool, delay time.Duration) (uuid.UUID, error) {
	g, err := s.repo.GetGameByID(ctx, gameID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("get game: %w", err)
	}

	status := model.ParticipantActive
	if waitlisted {
		status = model.ParticipantWaitlisted
	}

	participantID, err := s.repo.CreateParticipant(ctx, model.Participant{
		GameID: gameID,
		UserID: userID,
		Status: status,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("create participant: %w", err)
	}

	_, err = s.scheduler.ScheduleJoinNotification(ctx, strategy, gameID, participantID, g.ScheduledAt, delay)
	if err != nil && !errors.Is(err, schedule.ErrDuplicatePending) {
		return uuid.Nil, fmt.Errorf("schedule join notification: %w", err)
	}

	return participantID, nil
}

// LeaveGame removes a participant. Pending schedules are cancelled first
// so the status cache records the transition; the participant delete then
// removes the rows by cascade. No cancel event is published. A cancel
// failure is logged only: the cascade still destroys the rows either way.
func (s *Service) LeaveGame(ctx context.Context, strategy retry.Strategy, participantID uuid.UUID) error {
	if err := s.scheduler.CancelForParticipant(ctx, strategy, participantID); err != nil {
		zlog.Logger.Error().Err(err).Str("participant_id", participantID.String()).Msg("failed to cancel schedules for participant")
	}

	if err := s.repo.DeleteParticipant(ctx, participantID); err != nil {
		return fmt.Errorf("delete participant: %w", err)
	}

	return nil
}
