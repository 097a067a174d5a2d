package domain

import "time"

// Lead statuses, ordered by funnel progression.
const (
	LeadStatusPending   = "pending"
	LeadStatusContacted = "contacted"
	LeadStatusResponded = "responded"
	LeadStatusConverted = "converted"
)

// Lead is a prospect contact belonging to exactly one campaign. Tags holds
// the raw serialized form (a JSON array of strings); decoding happens in the
// usecase so that a malformed value degrades instead of failing the request.
type Lead struct {
	ID              string
	Name            string
	Email           string
	Phone           *string
	Company         *string
	Position        *string
	Status          string
	CampaignID      string
	LastContactDate *time.Time
	AssignedTo      *string
	Notes           *string
	LeadSource      *string
	Priority        string
	Tags            *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
