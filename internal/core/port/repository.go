package port

import (
	"context"
	"errors"
	"time"

	"leadboard/internal/core/domain"
)

// Sentinel errors for detail lookups on nonexistent identifiers. The HTTP
// layer maps these to 404 instead of the generic server error.
var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrLeadNotFound     = errors.New("lead not found")
)

// CampaignQuery bundles the filter, sort and page parameters of one campaign
// list request.
type CampaignQuery struct {
	Filter domain.CampaignFilter
	Sort   domain.CampaignSortField
	Order  domain.SortOrder
	Page   domain.PageRequest
}

// LeadQuery bundles the filter, sort and page parameters of one lead list
// request.
type LeadQuery struct {
	Filter domain.LeadFilter
	Sort   domain.LeadSortField
	Order  domain.SortOrder
	Page   domain.PageRequest
}

// CampaignRow is a campaign joined with its creator's display name. The
// creator join is a left join; CreatedByName is nil when the user row is
// gone.
type CampaignRow struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Description     *string    `json:"description"`
	Status          string     `json:"status"`
	TotalLeads      int        `json:"totalLeads"`
	SuccessfulLeads int        `json:"successfulLeads"`
	ResponseRate    float64    `json:"responseRate"`
	StartDate       *time.Time `json:"startDate"`
	EndDate         *time.Time `json:"endDate"`
	CreatedBy       string     `json:"createdBy"`
	CreatedByName   *string    `json:"createdByName"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// CampaignSummary aggregates the filtered campaign set. Every field is
// zero-valued, never null, when the set is empty.
type CampaignSummary struct {
	TotalCampaigns       int     `json:"totalCampaigns"`
	ActiveCampaigns      int     `json:"activeCampaigns"`
	TotalLeadsAcrossAll  int     `json:"totalLeadsAcrossAll"`
	TotalSuccessfulLeads int     `json:"totalSuccessfulLeads"`
	AvgResponseRate      float64 `json:"avgResponseRate"`
}

// StatusCount is one bucket of the per-campaign lead status histogram.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// RecentLead is the trimmed lead projection shown on the campaign detail
// page.
type RecentLead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   *string   `json:"company"`
	Status    string    `json:"status"`
	Priority  string    `json:"priority"`
	CreatedAt time.Time `json:"createdAt"`
}

// LeadRow is a lead joined with its campaign's name and its assignee's
// display name (both left joins). Tags carries the raw serialized value;
// list responses return it as stored.
type LeadRow struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Phone            *string    `json:"phone"`
	Company          *string    `json:"company"`
	Position         *string    `json:"position"`
	Status           string     `json:"status"`
	CampaignID       string     `json:"campaignId"`
	CampaignName     *string    `json:"campaignName"`
	LastContactDate  *time.Time `json:"lastContactDate"`
	AssignedTo       *string    `json:"assignedTo"`
	AssignedUserName *string    `json:"assignedUserName"`
	Notes            *string    `json:"notes"`
	LeadSource       *string    `json:"leadSource"`
	Priority         string     `json:"priority"`
	Tags             *string    `json:"tags"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// InteractionRow is an interaction joined with its author's display name.
type InteractionRow struct {
	ID            string     `json:"id"`
	Type          string     `json:"type"`
	Subject       *string    `json:"subject"`
	Message       *string    `json:"message"`
	ScheduledAt   *time.Time `json:"scheduledAt"`
	CompletedAt   *time.Time `json:"completedAt"`
	CreatedBy     string     `json:"createdBy"`
	CreatedByName *string    `json:"createdByName"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// CampaignRepository is the outbound port for campaign reads. Detail
// lookups return nil (not an error) for unknown identifiers; the usecase
// decides how absence surfaces.
type CampaignRepository interface {
	// CountCampaigns returns the number of campaigns matching the filter.
	CountCampaigns(ctx context.Context, f domain.CampaignFilter) (int, error)
	// ListCampaigns returns one sorted page of campaigns matching the
	// filter, each joined with the creator's name.
	ListCampaigns(ctx context.Context, q CampaignQuery) ([]CampaignRow, error)
	// SummarizeCampaigns aggregates the same filtered set the list query
	// sees.
	SummarizeCampaigns(ctx context.Context, f domain.CampaignFilter) (CampaignSummary, error)
	// GetCampaign returns one campaign with creator name, or nil when the
	// id is unknown.
	GetCampaign(ctx context.Context, id string) (*CampaignRow, error)
	// LeadStatusCounts groups the campaign's leads by status.
	LeadStatusCounts(ctx context.Context, campaignID string) ([]StatusCount, error)
	// RecentLeads returns the most recently created leads of the campaign,
	// newest first, ties broken by id.
	RecentLeads(ctx context.Context, campaignID string, limit int) ([]RecentLead, error)
	// AnalyticsSince returns analytics rows recorded on or after the given
	// date, newest first, capped at limit rows.
	AnalyticsSince(ctx context.Context, campaignID string, since time.Time, limit int) ([]domain.CampaignAnalytics, error)
}

// LeadRepository is the outbound port for lead reads.
type LeadRepository interface {
	// CountLeads returns the number of leads matching the filter.
	CountLeads(ctx context.Context, f domain.LeadFilter) (int, error)
	// ListLeads returns one sorted page of leads matching the filter, each
	// joined with campaign and assignee names.
	ListLeads(ctx context.Context, q LeadQuery) ([]LeadRow, error)
	// GetLead returns one lead with joined names, or nil when the id is
	// unknown.
	GetLead(ctx context.Context, id string) (*LeadRow, error)
	// ListInteractions returns all interactions of a lead, newest first,
	// each joined with the author's name.
	ListInteractions(ctx context.Context, leadID string) ([]InteractionRow, error)
}

// AuthenticatedSession pairs a session row with its owning user.
type AuthenticatedSession struct {
	Session domain.Session
	User    domain.User
}

// SessionRepository resolves opaque session tokens. Unknown tokens return
// nil without an error.
type SessionRepository interface {
	FindSessionByToken(ctx context.Context, token string) (*AuthenticatedSession, error)
}
