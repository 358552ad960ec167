package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/gamenightlabs/notifier/internal/model"
)

// DefaultJoinDelay is how long after joining a game the participant's
// confirmation is scheduled to fire when the caller does not override it.
const DefaultJoinDelay = 60 * time.Second

//go:generate mockgen -source=service.go -destination=../../mocks/service/schedule/mock.go -package=mocks

type scheduleRepository interface {
	Create(context.Context, model.NotificationSchedule) (model.NotificationSchedule, error)
	CancelForParticipant(context.Context, uuid.UUID) ([]uuid.UUID, error)
	GetStatusByID(context.Context, uuid.UUID) (model.ScheduleStatus, error)
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Service is the schedule creator: it turns domain actions (a participant
// joining, a game being created) into pending schedule rows.
type Service struct {
	repo  scheduleRepository
	cache cache
}

func NewService(repo scheduleRepository, cache cache) *Service {
	return &Service{repo: repo, cache: cache}
}

// ScheduleJoinNotification schedules the "you joined" confirmation for a
// participant, firing delay after now. A zero delay means DefaultJoinDelay.
// The game's scheduled start becomes the expiration hint: a confirmation
// still pending once the session starts is never delivered.
//
// Returns the repository's ErrDuplicatePending unchanged when the
// participant already has one pending; callers treat that as "already
// scheduled", not a failure.
func (s *Service) ScheduleJoinNotification(
	ctx context.Context,
	strategy retry.Strategy,
	gameID, participantID uuid.UUID,
	gameScheduledAt time.Time,
	delay time.Duration,
) (model.NotificationSchedule, error) {
	if delay <= 0 {
		delay = DefaultJoinDelay
	}

	sched := model.NotificationSchedule{
		GameID:        gameID,
		ParticipantID: &participantID,
		Kind:          model.KindJoinNotification,
		TriggerAt:     time.Now().Add(delay),
		ExpiresAt:     gameScheduledAt,
	}

	created, err := s.repo.Create(ctx, sched)
	if err != nil {
		return model.NotificationSchedule{}, fmt.Errorf("create join notification schedule: %w", err)
	}

	s.CacheStatus(ctx, strategy, created.ID, created.Status)

	return created, nil
}

// ScheduleGameReminder schedules the game-wide reminder, firing lead before
// the game's scheduled start.
func (s *Service) ScheduleGameReminder(
	ctx context.Context,
	strategy retry.Strategy,
	gameID uuid.UUID,
	gameScheduledAt time.Time,
	lead time.Duration,
) (model.NotificationSchedule, error) {
	sched := model.NotificationSchedule{
		GameID:    gameID,
		Kind:      model.KindReminder,
		TriggerAt: gameScheduledAt.Add(-lead),
		ExpiresAt: gameScheduledAt,
	}

	created, err := s.repo.Create(ctx, sched)
	if err != nil {
		return model.NotificationSchedule{}, fmt.Errorf("create reminder schedule: %w", err)
	}

	s.CacheStatus(ctx, strategy, created.ID, created.Status)

	return created, nil
}

// CancelForParticipant cancels the participant's pending schedules and
// updates the status cache for each cancelled row, so status lookups do
// not keep reporting pending.
func (s *Service) CancelForParticipant(ctx context.Context, strategy retry.Strategy, participantID uuid.UUID) error {
	cancelled, err := s.repo.CancelForParticipant(ctx, participantID)
	if err != nil {
		return fmt.Errorf("cancel schedules: %w", err)
	}

	for _, id := range cancelled {
		s.CacheStatus(ctx, strategy, id, model.StatusCancelled)
	}

	return nil
}

// GetScheduleStatusByID returns a schedule's status, read through the cache.
func (s *Service) GetScheduleStatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.ScheduleStatus, error) {
	cached, err := s.cache.GetWithRetry(ctx, strategy, id.String())
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get schedule status from cache")
	}

	if err == nil {
		return model.ScheduleStatus(cached), nil
	}

	status, err := s.repo.GetStatusByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get schedule status: %w", err)
	}

	s.CacheStatus(ctx, strategy, id, status)

	return status, nil
}

// CacheStatus records a schedule's status in the cache. Every status
// transition must go through here so lookups never serve a stale pending;
// cache failures are logged, the store remains the source of truth.
func (s *Service) CacheStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID, status model.ScheduleStatus) {
	if err := s.cache.SetWithRetry(ctx, strategy, id.String(), string(status)); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache schedule status")
	}
}
