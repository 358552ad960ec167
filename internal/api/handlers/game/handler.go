package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/gamenightlabs/notifier/internal/api/respond"
	"github.com/gamenightlabs/notifier/internal/config"
	"github.com/gamenightlabs/notifier/internal/model"
	gamerepo "github.com/gamenightlabs/notifier/internal/repository/game"
)

// gameService defines the interface that the Handler depends on.
//
// It abstracts the domain actions exposed over HTTP: creating a game,
// joining it, and leaving it.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/game/mock.go -package=mocks
type gameService interface {
	CreateGame(ctx context.Context, strategy retry.Strategy, g model.Game, lead time.Duration) (uuid.UUID, error)
	JoinGame(ctx context.Context, strategy retry.Strategy, gameID uuid.UUID, userID string, waitlisted bool, delay time.Duration) (uuid.UUID, error)
	LeaveGame(ctx context.Context, strategy retry.Strategy, participantID uuid.UUID) error
}

// Handler handles HTTP requests for games and their participants.
type Handler struct {
	service   gameService
	validator *validator.Validate
	cfg       *config.Config
}

// NewHandler creates a new Handler instance.
func NewHandler(
	s gameService,
	v *validator.Validate,
	cfg *config.Config,
) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// CreateRequest represents the JSON body expected when creating a game.
type CreateRequest struct {
	Title              string `json:"title" validate:"required"`
	ScheduledAt        string `json:"scheduled_at" validate:"required"`
	SignupInstructions string `json:"signup_instructions"`
}

// JoinRequest represents the JSON body expected when joining a game.
type JoinRequest struct {
	UserID     string `json:"user_id" validate:"required"`
	Waitlisted bool   `json:"waitlisted"`
}

// Create handles HTTP POST requests to create a new game.
//
// Creating a game also schedules its reminder, firing the configured
// lead before the scheduled start.
func (h *Handler) Create(c *ginext.Context) {
	var req CreateRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to parse scheduled_at time")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid scheduled_at format"))
		return
	}

	g := model.Game{
		Title:              req.Title,
		ScheduledAt:        scheduledAt,
		SignupInstructions: req.SignupInstructions,
	}

	id, err := h.service.CreateGame(c.Request.Context(), h.cfg.Retry, g, h.cfg.Scheduler.ReminderLead)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("title", g.Title).Msg("failed to create game")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

// Join handles HTTP POST requests to join a game.
//
// Joining schedules the participant's joined-confirmation after the
// configured delay.
func (h *Handler) Join(c *ginext.Context) {
	gameID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		zlog.Logger.Error().Err(err).Str("idStr", c.Param("id")).Msg("failed to parse game id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid game id"))
		return
	}

	var req JoinRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	participantID, err := h.service.JoinGame(
		c.Request.Context(), h.cfg.Retry, gameID, req.UserID, req.Waitlisted, h.cfg.Scheduler.JoinDelay,
	)
	if err != nil {
		if errors.Is(err, gamerepo.ErrGameNotFound) {
			zlog.Logger.Warn().Str("game_id", gameID.String()).Err(err).Msg("game not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("game not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("game_id", gameID.String()).Msg("failed to join game")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, participantID)
}

// Leave handles HTTP DELETE requests to remove a participant from a game.
//
// Removal cancels the participant's pending notifications and cascades
// their schedule rows away, without a round trip through the bus.
func (h *Handler) Leave(c *ginext.Context) {
	participantID, err := uuid.Parse(c.Param("participantID"))
	if err != nil {
		zlog.Logger.Error().Err(err).Str("idStr", c.Param("participantID")).Msg("failed to parse participant id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid participant id"))
		return
	}

	if err := h.service.LeaveGame(c.Request.Context(), h.cfg.Retry, participantID); err != nil {
		if errors.Is(err, gamerepo.ErrParticipantNotFound) {
			zlog.Logger.Warn().Str("participant_id", participantID.String()).Err(err).Msg("participant not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("participant not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("participant_id", participantID.String()).Msg("failed to leave game")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "participant removed")
}
