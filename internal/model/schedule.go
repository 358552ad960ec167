package model

import (
	"time"

	"github.com/google/uuid"
)

// Kind identifies which notification a schedule produces.
type Kind string

const (
	KindReminder         Kind = "reminder"          // game-wide reminder before the session starts
	KindJoinNotification Kind = "join_notification" // per-participant confirmation after joining
)

// ScheduleStatus is the lifecycle state of a schedule row.
//
// Transitions are one-way: pending -> dispatched (claimed by the scanner)
// or pending -> cancelled. A row never returns to pending.
type ScheduleStatus string

const (
	StatusPending    ScheduleStatus = "pending"
	StatusDispatched ScheduleStatus = "dispatched"
	StatusCancelled  ScheduleStatus = "cancelled"
)

// ParticipantStatus distinguishes confirmed players from the waitlist.
type ParticipantStatus string

const (
	ParticipantActive     ParticipantStatus = "active"
	ParticipantWaitlisted ParticipantStatus = "waitlisted"
)

// NotificationSchedule is a persisted intent to notify someone at or after
// TriggerAt. ParticipantID is set only for per-participant kinds; the row
// is removed by cascade when its participant (or game) is deleted.
type NotificationSchedule struct {
	ID            uuid.UUID      `json:"id"`
	GameID        uuid.UUID      `json:"game_id"`
	ParticipantID *uuid.UUID     `json:"participant_id,omitempty"`
	Kind          Kind           `json:"kind"`
	TriggerAt     time.Time      `json:"trigger_at"` // set at creation, never mutated
	ExpiresAt     time.Time      `json:"expires_at"` // the game's scheduled start; past this the intent is stale
	Status        ScheduleStatus `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
}
