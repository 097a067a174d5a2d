package domain

import "time"

// Interaction types.
const (
	InteractionTypeEmail   = "email"
	InteractionTypeCall    = "call"
	InteractionTypeMessage = "message"
	InteractionTypeMeeting = "meeting"
	InteractionTypeNote    = "note"
)

// LeadInteraction is a logged communication event tied to one lead.
type LeadInteraction struct {
	ID          string
	LeadID      string
	Type        string
	Subject     *string
	Message     *string
	ScheduledAt *time.Time
	CompletedAt *time.Time
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
