package schedule

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"

	"github.com/gamenightlabs/notifier/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func TestCreate(t *testing.T) {
	repo, mock := setupMockDB(t)

	scheduleID := uuid.New()
	participantID := uuid.New()
	createdAt := time.Now()

	s := model.NotificationSchedule{
		GameID:        uuid.New(),
		ParticipantID: &participantID,
		Kind:          model.KindJoinNotification,
		TriggerAt:     time.Now().Add(time.Minute),
		ExpiresAt:     time.Now().Add(time.Hour),
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO notification_schedules (
		    game_id, participant_id, kind, trigger_at, expires_at, status
		) VALUES ($1, $2, $3, $4, $5, 'pending')
		RETURNING id, created_at;
    `)).
		WithArgs(s.GameID, s.ParticipantID, s.Kind, s.TriggerAt, s.ExpiresAt).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(scheduleID, createdAt))

	created, err := repo.Create(context.Background(), s)
	assert.NoError(t, err)
	assert.Equal(t, scheduleID, created.ID)
	assert.Equal(t, model.StatusPending, created.Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicatePending(t *testing.T) {
	repo, mock := setupMockDB(t)

	participantID := uuid.New()
	s := model.NotificationSchedule{
		GameID:        uuid.New(),
		ParticipantID: &participantID,
		Kind:          model.KindJoinNotification,
		TriggerAt:     time.Now().Add(time.Minute),
		ExpiresAt:     time.Now().Add(time.Hour),
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO notification_schedules (
		    game_id, participant_id, kind, trigger_at, expires_at, status
		) VALUES ($1, $2, $3, $4, $5, 'pending')
		RETURNING id, created_at;
    `)).
		WithArgs(s.GameID, s.ParticipantID, s.Kind, s.TriggerAt, s.ExpiresAt).
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), s)
	assert.ErrorIs(t, err, ErrDuplicatePending)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Disjointness between concurrent claimers rests on the FOR UPDATE SKIP
// LOCKED clause in the claim query, which sqlmock can only assert the
// shape of. Exercising two racing claimers needs a real Postgres.
func TestClaimDue(t *testing.T) {
	repo, mock := setupMockDB(t)

	now := time.Now()
	participantID := uuid.New()

	s1 := model.NotificationSchedule{
		ID:        uuid.New(),
		GameID:    uuid.New(),
		Kind:      model.KindReminder,
		TriggerAt: now.Add(-time.Minute),
		ExpiresAt: now.Add(time.Hour),
		Status:    model.StatusDispatched,
		CreatedAt: now.Add(-time.Hour),
	}
	s2 := model.NotificationSchedule{
		ID:            uuid.New(),
		GameID:        s1.GameID,
		ParticipantID: &participantID,
		Kind:          model.KindJoinNotification,
		TriggerAt:     now.Add(-time.Second),
		ExpiresAt:     now.Add(time.Hour),
		Status:        model.StatusDispatched,
		CreatedAt:     now.Add(-time.Minute),
	}

	rows := sqlmock.NewRows([]string{"id", "game_id", "participant_id", "kind", "trigger_at", "expires_at", "status", "created_at"}).
		AddRow(s1.ID, s1.GameID, nil, s1.Kind, s1.TriggerAt, s1.ExpiresAt, s1.Status, s1.CreatedAt).
		AddRow(s2.ID, s2.GameID, s2.ParticipantID, s2.Kind, s2.TriggerAt, s2.ExpiresAt, s2.Status, s2.CreatedAt)

	mock.ExpectQuery(regexp.QuoteMeta(`
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
    `)).
		WithArgs(now, 100).
		WillReturnRows(rows)

	claimed, err := repo.ClaimDue(context.Background(), now, 100)
	assert.NoError(t, err)
	assert.Len(t, claimed, 2)
	assert.Equal(t, s1.ID, claimed[0].ID)
	assert.Nil(t, claimed[0].ParticipantID)
	assert.Equal(t, s2.ID, claimed[1].ID)
	assert.Equal(t, participantID, *claimed[1].ParticipantID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimDue_Empty(t *testing.T) {
	repo, mock := setupMockDB(t)

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`
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
    `)).
		WithArgs(now, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "game_id", "participant_id", "kind", "trigger_at", "expires_at", "status", "created_at"}))

	claimed, err := repo.ClaimDue(context.Background(), now, 10)
	assert.NoError(t, err)
	assert.Empty(t, claimed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelForParticipant(t *testing.T) {
	repo, mock := setupMockDB(t)

	participantID := uuid.New()
	cancelledID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`
		UPDATE notification_schedules
		SET status = 'cancelled'
		WHERE participant_id = $1 AND status = 'pending'
		RETURNING id;
    `)).
		WithArgs(participantID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(cancelledID))

	cancelled, err := repo.CancelForParticipant(context.Background(), participantID)
	assert.NoError(t, err)
	assert.Equal(t, []uuid.UUID{cancelledID}, cancelled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStatusByID(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT status
		FROM notification_schedules
		WHERE id = $1;
    `)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("pending"))

	status, err := repo.GetStatusByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusPending, status)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT status
		FROM notification_schedules
		WHERE id = $1;
    `)).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	status, err = repo.GetStatusByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrScheduleNotFound)
	assert.Equal(t, model.ScheduleStatus(""), status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteDispatchedBefore(t *testing.T) {
	repo, mock := setupMockDB(t)

	cutoff := time.Now().Add(-7 * 24 * time.Hour)

	mock.ExpectExec(regexp.QuoteMeta(`
		DELETE FROM notification_schedules
		WHERE status = 'dispatched' AND trigger_at < $1;
    `)).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	removed, err := repo.DeleteDispatchedBefore(context.Background(), cutoff)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
