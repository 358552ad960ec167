package model

import (
	"time"

	"github.com/google/uuid"
)

// Game represents a scheduled game session in a chat community.
//
// SignupInstructions may be empty; handlers read it fresh at dispatch
// time, so edits made after a participant joins are honored.
type Game struct {
	ID                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	ScheduledAt        time.Time `json:"scheduled_at"`
	SignupInstructions string    `json:"signup_instructions"`
	CreatedAt          time.Time `json:"created_at"`
}

// Participant is a user signed up for a game. UserID is the chat-platform
// recipient identity used for direct-message delivery.
type Participant struct {
	ID       uuid.UUID         `json:"id"`
	GameID   uuid.UUID         `json:"game_id"`
	UserID   string            `json:"user_id"`
	Status   ParticipantStatus `json:"status"`
	JoinedAt time.Time         `json:"joined_at"`
}
