package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/gamenightlabs/notifier/internal/model"
)

var (
	ErrDuplicatePending = errors.New("pending schedule already exists")
	ErrScheduleNotFound = errors.New("schedule not found")
)

const uniqueViolation = "23505"

// Repository provides methods to interact with the notification_schedules table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new schedule repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new pending schedule and returns it with its generated ID.
//
// At most one pending row may exist per (game, participant, kind) tuple;
// a second insert trips the partial unique index and is reported as
// ErrDuplicatePending.
func (r *Repository) Create(ctx context.Context, s model.NotificationSchedule) (model.NotificationSchedule, error) {
	query := `
		INSERT INTO notification_schedules (
		    game_id, participant_id, kind, trigger_at, expires_at, status
		) VALUES ($1, $2, $3, $4, $5, 'pending')
		RETURNING id, created_at;
    `

	err := r.db.QueryRowContext(
		ctx, query, s.GameID, s.ParticipantID, s.Kind, s.TriggerAt, s.ExpiresAt,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return model.NotificationSchedule{}, ErrDuplicatePending
		}

		return model.NotificationSchedule{}, fmt.Errorf("failed to create schedule: %w", err)
	}

	s.Status = model.StatusPending

	return s, nil
}

// ClaimDue atomically claims up to limit pending schedules whose trigger
// time has passed, marking them dispatched and returning them.
//
// SKIP LOCKED keeps concurrent scanners from claiming the same row while
// leaving the rest of the due set claimable, so the claim is the sole
// mutual-exclusion point between scanner processes.
func (r *Repository) ClaimDue(ctx context.Context, now time.Time, limit int) ([]model.NotificationSchedule, error) {
	query := `
		UPDATE notification_schedules
		SET status = 'dispatched'
		WHERE id IN (
		    SELECT id FROM notification_schedules
		    WHERE status = 'pending' AND trigger_at <= $1
		    ORDER BY trigger_at
		    LIMIT $2
		    FOR UPDATE SKIP LOCKED
		)
		RETURNING id, game_id, participant_id, kind, trigger_at, expires_at, status, created_at;
    `

	rows, err := r.db.QueryContext(ctx, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to claim due schedules: %w", err)
	}
	defer rows.Close()

	var claimed []model.NotificationSchedule
	for rows.Next() {
		var s model.NotificationSchedule
		if err := rows.Scan(&s.ID, &s.GameID, &s.ParticipantID, &s.Kind, &s.TriggerAt, &s.ExpiresAt, &s.Status, &s.CreatedAt); err != nil {
			return nil, err
		}

		claimed = append(claimed, s)
	}

	return claimed, rows.Err()
}

// CancelForParticipant cancels any pending schedule owned by the participant
// and returns the IDs of the cancelled rows so callers can update the
// status cache.
//
// Safe to race with ClaimDue: a row claimed first simply no-ops later when
// the handler finds the participant gone.
func (r *Repository) CancelForParticipant(ctx context.Context, participantID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		UPDATE notification_schedules
		SET status = 'cancelled'
		WHERE participant_id = $1 AND status = 'pending'
		RETURNING id;
    `

	rows, err := r.db.QueryContext(ctx, query, participantID)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel schedules for participant: %w", err)
	}
	defer rows.Close()

	var cancelled []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}

		cancelled = append(cancelled, id)
	}

	return cancelled, rows.Err()
}

// GetStatusByID retrieves the status of a schedule by its ID.
func (r *Repository) GetStatusByID(ctx context.Context, id uuid.UUID) (model.ScheduleStatus, error) {
	query := `
		SELECT status
		FROM notification_schedules
		WHERE id = $1;
    `

	var status model.ScheduleStatus
	err := r.db.QueryRowContext(ctx, query, id).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrScheduleNotFound
		}

		return "", fmt.Errorf("failed to get schedule status: %w", err)
	}

	return status, nil
}

// DeleteDispatchedBefore garbage-collects dispatched rows older than cutoff
// and returns how many were removed.
func (r *Repository) DeleteDispatchedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM notification_schedules
		WHERE status = 'dispatched' AND trigger_at < $1;
    `

	res, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge dispatched schedules: %w", err)
	}

	rows, _ := res.RowsAffected()

	return rows, nil
}
