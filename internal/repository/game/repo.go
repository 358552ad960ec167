package game

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/gamenightlabs/notifier/internal/model"
)

var (
	ErrGameNotFound        = errors.New("game not found")
	ErrParticipantNotFound = errors.New("participant not found")
)

// Repository provides access to the games and participants tables.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new game repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateGame inserts a new game and returns its ID.
func (r *Repository) CreateGame(ctx context.Context, g model.Game) (uuid.UUID, error) {
	query := `
		INSERT INTO games (title, scheduled_at, signup_instructions)
		VALUES ($1, $2, $3)
		RETURNING id;
    `

	err := r.db.QueryRowContext(ctx, query, g.Title, g.ScheduledAt, g.SignupInstructions).Scan(&g.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create game: %w", err)
	}

	return g.ID, nil
}

// GetGameByID retrieves the current state of a game.
func (r *Repository) GetGameByID(ctx context.Context, id uuid.UUID) (model.Game, error) {
	query := `
		SELECT id, title, scheduled_at, signup_instructions, created_at
		FROM games
		WHERE id = $1;
    `

	var g model.Game
	err := r.db.QueryRowContext(ctx, query, id).Scan(&g.ID, &g.Title, &g.ScheduledAt, &g.SignupInstructions, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Game{}, ErrGameNotFound
		}

		return model.Game{}, fmt.Errorf("failed to get game: %w", err)
	}

	return g, nil
}

// CreateParticipant inserts a participant row for a game and returns its ID.
func (r *Repository) CreateParticipant(ctx context.Context, p model.Participant) (uuid.UUID, error) {
	query := `
		INSERT INTO participants (game_id, user_id, status)
		VALUES ($1, $2, $3)
		RETURNING id;
    `

	err := r.db.QueryRowContext(ctx, query, p.GameID, p.UserID, p.Status).Scan(&p.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create participant: %w", err)
	}

	return p.ID, nil
}

// GetParticipantByID retrieves the current state of a participant.
func (r *Repository) GetParticipantByID(ctx context.Context, id uuid.UUID) (model.Participant, error) {
	query := `
		SELECT id, game_id, user_id, status, joined_at
		FROM participants
		WHERE id = $1;
    `

	var p model.Participant
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.GameID, &p.UserID, &p.Status, &p.JoinedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Participant{}, ErrParticipantNotFound
		}

		return model.Participant{}, fmt.Errorf("failed to get participant: %w", err)
	}

	return p, nil
}

// ListActiveParticipants returns the non-waitlisted participants of a game.
func (r *Repository) ListActiveParticipants(ctx context.Context, gameID uuid.UUID) ([]model.Participant, error) {
	query := `
		SELECT id, game_id, user_id, status, joined_at
		FROM participants
		WHERE game_id = $1 AND status = 'active'
		ORDER BY joined_at;
    `

	rows, err := r.db.QueryContext(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	var participants []model.Participant
	for rows.Next() {
		var p model.Participant
		if err := rows.Scan(&p.ID, &p.GameID, &p.UserID, &p.Status, &p.JoinedAt); err != nil {
			return nil, err
		}

		participants = append(participants, p)
	}

	return participants, rows.Err()
}

// DeleteParticipant removes a participant row. Any schedule rows still
// owned by the participant go with it via the foreign key cascade.
func (r *Repository) DeleteParticipant(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM participants
		WHERE id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrParticipantNotFound
	}

	return nil
}
