package domain

import "time"

// Campaign statuses. The read path does not validate these; an unknown
// status in a filter simply matches no rows.
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
)

// Campaign represents an outreach campaign grouping leads under shared
// tracking. TotalLeads, SuccessfulLeads and ResponseRate are denormalized
// counters maintained by write paths outside this service.
type Campaign struct {
	ID              string
	Name            string
	Description     *string
	Status          string
	TotalLeads      int
	SuccessfulLeads int
	ResponseRate    float64
	StartDate       *time.Time
	EndDate         *time.Time
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
