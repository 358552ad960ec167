package worker

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/gamenightlabs/notifier/internal/model"
	"github.com/gamenightlabs/notifier/internal/rabbitmq/queue"
)

// purgeInterval is how often dispatched rows past retention are swept.
const purgeInterval = time.Hour

//go:generate mockgen -source=scanner.go -destination=../mocks/worker/scanner_mock.go -package=mocks

type scheduleClaimer interface {
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]model.NotificationSchedule, error)
	DeleteDispatchedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type eventPublisher interface {
	Publish(evt queue.NotificationEvent, strategy retry.Strategy) error
}

type statusCache interface {
	CacheStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID, status model.ScheduleStatus)
}

// Scanner is the daemon that discovers due schedules and turns them into
// bus events. Claiming marks the row dispatched, so each schedule is
// published by exactly one scanner even when several run concurrently.
type Scanner struct {
	repo      scheduleClaimer
	queue     eventPublisher
	statuses  statusCache
	interval  time.Duration
	batchSize int
	retention time.Duration
	strategy  retry.Strategy
}

func NewScanner(repo scheduleClaimer, q eventPublisher, statuses statusCache, interval time.Duration, batchSize int, retention time.Duration, strategy retry.Strategy) *Scanner {
	return &Scanner{
		repo:      repo,
		queue:     q,
		statuses:  statuses,
		interval:  interval,
		batchSize: batchSize,
		retention: retention,
		strategy:  strategy,
	}
}

// Run polls for due schedules until ctx is cancelled. An in-flight tick
// finishes before the loop exits.
func (s *Scanner) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	purge := time.NewTicker(purgeInterval)
	defer purge.Stop()

	zlog.Logger.Info().Dur("interval", s.interval).Int("batch_size", s.batchSize).Msg("scanner started")

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("scanner stopped")
			return
		case <-ticker.C:
			s.tick(ctx, time.Now())
		case <-purge.C:
			s.purgeDispatched(ctx, time.Now())
		}
	}
}

// tick claims one batch of due schedules and publishes an event per claim.
//
// A claim error aborts the tick only; the next interval retries. A publish
// error after a claim is logged and the row stays dispatched: the loss is
// accepted rather than risking a duplicate claim.
func (s *Scanner) tick(ctx context.Context, now time.Time) {
	claimed, err := s.repo.ClaimDue(ctx, now, s.batchSize)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to claim due schedules, retrying next tick")
		return
	}

	for _, sched := range claimed {
		// The claim already flipped the row to dispatched; reflect that
		// in the status cache before anything else so lookups never
		// keep serving pending.
		s.statuses.CacheStatus(ctx, s.strategy, sched.ID, model.StatusDispatched)

		remaining := sched.ExpiresAt.Sub(now)
		if remaining <= 0 {
			zlog.Logger.Info().
				Str("schedule_id", sched.ID.String()).
				Time("expires_at", sched.ExpiresAt).
				Msg("schedule expired before dispatch, dropping")
			continue
		}

		evt := queue.NotificationEvent{
			Kind:          sched.Kind,
			ScheduleID:    sched.ID,
			GameID:        sched.GameID,
			ParticipantID: sched.ParticipantID,
			Deadline:      sched.ExpiresAt,
		}

		if err := s.queue.Publish(evt, s.strategy); err != nil {
			zlog.Logger.Error().Err(err).Str("schedule_id", sched.ID.String()).Msg("failed to publish claimed schedule, notification lost")
			continue
		}

		zlog.Logger.Info().
			Str("schedule_id", sched.ID.String()).
			Str("kind", string(sched.Kind)).
			Msg("schedule published")
	}
}

func (s *Scanner) purgeDispatched(ctx context.Context, now time.Time) {
	removed, err := s.repo.DeleteDispatchedBefore(ctx, now.Add(-s.retention))
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to purge dispatched schedules")
		return
	}

	if removed > 0 {
		zlog.Logger.Info().Int64("removed", removed).Msg("purged dispatched schedules")
	}
}
