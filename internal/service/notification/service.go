package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/gamenightlabs/notifier/internal/model"
	"github.com/gamenightlabs/notifier/internal/repository/game"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/notification/mock.go -package=mocks

type domainReader interface {
	GetGameByID(context.Context, uuid.UUID) (model.Game, error)
	GetParticipantByID(context.Context, uuid.UUID) (model.Participant, error)
	ListActiveParticipants(context.Context, uuid.UUID) ([]model.Participant, error)
}

// Notifier delivers a direct message to a chat-platform user.
type Notifier interface {
	Send(to string, msg string) error
}

// Service handles due notification events: it re-reads current domain
// state, renders the message, and invokes delivery.
//
// All domain state is fetched at dispatch time, never snapshotted at
// schedule creation, so handling the same schedule twice against unchanged
// state renders identical content and redelivery is harmless.
type Service struct {
	games    domainReader
	notifier Notifier
}

func NewService(games domainReader, notifier Notifier) *Service {
	return &Service{games: games, notifier: notifier}
}

// DeliverJoinNotification sends the joined-confirmation to a participant.
//
// An absent participant is not an error: the row was removed after the
// schedule was claimed (the participant left), which silently cancels the
// notification. Waitlisted participants are suppressed the same way.
func (s *Service) DeliverJoinNotification(ctx context.Context, gameID, participantID uuid.UUID) error {
	p, err := s.games.GetParticipantByID(ctx, participantID)
	if err != nil {
		if errors.Is(err, game.ErrParticipantNotFound) {
			zlog.Logger.Info().Str("participant_id", participantID.String()).Msg("participant gone, skipping join notification")
			return nil
		}

		return fmt.Errorf("get participant: %w", err)
	}

	if p.Status == model.ParticipantWaitlisted {
		zlog.Logger.Info().Str("participant_id", participantID.String()).Msg("participant waitlisted, skipping join notification")
		return nil
	}

	g, err := s.games.GetGameByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, game.ErrGameNotFound) {
			zlog.Logger.Info().Str("game_id", gameID.String()).Msg("game gone, skipping join notification")
			return nil
		}

		return fmt.Errorf("get game: %w", err)
	}

	msg := renderJoinMessage(g)

	if err := s.notifier.Send(p.UserID, msg); err != nil {
		return fmt.Errorf("send join notification: %w", err)
	}

	zlog.Logger.Info().Str("participant_id", participantID.String()).Str("game_id", gameID.String()).Msg("join notification delivered")

	return nil
}

// DeliverReminder sends the game reminder to every active participant.
//
// Per-recipient delivery failures are logged and do not stop the fan-out;
// the reminder is best-effort for each recipient independently.
func (s *Service) DeliverReminder(ctx context.Context, gameID uuid.UUID) error {
	g, err := s.games.GetGameByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, game.ErrGameNotFound) {
			zlog.Logger.Info().Str("game_id", gameID.String()).Msg("game gone, skipping reminder")
			return nil
		}

		return fmt.Errorf("get game: %w", err)
	}

	participants, err := s.games.ListActiveParticipants(ctx, gameID)
	if err != nil {
		return fmt.Errorf("list participants: %w", err)
	}

	msg := renderReminderMessage(g)

	for _, p := range participants {
		if err := s.notifier.Send(p.UserID, msg); err != nil {
			zlog.Logger.Error().Err(err).Str("user_id", p.UserID).Str("game_id", gameID.String()).Msg("failed to deliver reminder")
			continue
		}
	}

	zlog.Logger.Info().Str("game_id", gameID.String()).Int("recipients", len(participants)).Msg("reminder dispatched")

	return nil
}

// renderJoinMessage builds the joined-confirmation body. The signup
// instructions section appears only when the game currently has
// instructions set, and carries their text verbatim.
func renderJoinMessage(g model.Game) string {
	msg := fmt.Sprintf("You're in! You've joined %q.", g.Title)

	if g.SignupInstructions != "" {
		msg += fmt.Sprintf("\n\nSignup instructions:\n%s", g.SignupInstructions)
	}

	return msg
}

func renderReminderMessage(g model.Game) string {
	return fmt.Sprintf("Reminder: %q starts at %s.", g.Title, g.ScheduledAt.Format("Mon, 2 Jan 15:04 MST"))
}
