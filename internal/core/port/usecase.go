package port

import (
	"context"

	"leadboard/internal/core/domain"
)

// CampaignUseCase is the inbound port for campaign reads. Mock
// implementations can be generated from this interface for testing.
type CampaignUseCase interface {
	// ListCampaigns runs the filtered, sorted, paginated campaign listing
	// together with the filtered summary aggregate.
	ListCampaigns(ctx context.Context, q CampaignQuery) (*CampaignList, error)
	// CampaignDetail assembles the campaign read-model: the row, the lead
	// status histogram, recent leads, trailing analytics and the derived
	// conversion funnel. Returns ErrCampaignNotFound for unknown ids.
	CampaignDetail(ctx context.Context, id string) (*CampaignDetail, error)
}

// LeadUseCase is the inbound port for lead reads.
type LeadUseCase interface {
	// ListLeads runs the filtered, sorted, paginated lead listing.
	ListLeads(ctx context.Context, q LeadQuery) (*LeadList, error)
	// LeadDetail assembles the lead read-model with decoded tags and the
	// interaction history. Returns ErrLeadNotFound for unknown ids.
	LeadDetail(ctx context.Context, id string) (*LeadDetail, error)
}

// CampaignListFilters echoes the applied filter and sort parameters back to
// the client.
type CampaignListFilters struct {
	Search    string `json:"search"`
	Status    string `json:"status"`
	CreatedBy string `json:"createdBy"`
	SortBy    string `json:"sortBy"`
	SortOrder string `json:"sortOrder"`
}

// CampaignList is the campaign listing envelope.
type CampaignList struct {
	Data       []CampaignRow       `json:"data"`
	Pagination domain.PageMeta     `json:"pagination"`
	Filters    CampaignListFilters `json:"filters"`
	Summary    CampaignSummary     `json:"summary"`
}

// ConversionFunnel is the lead status histogram folded into funnel stages.
type ConversionFunnel struct {
	TotalLeads int `json:"totalLeads"`
	Contacted  int `json:"contacted"`
	Responded  int `json:"responded"`
	Converted  int `json:"converted"`
}

// FunnelMetrics are percentage rates derived from the funnel. Every rate is
// 0 when its denominator is 0.
type FunnelMetrics struct {
	ConversionRate float64 `json:"conversionRate"`
	ContactRate    float64 `json:"contactRate"`
	ResponseRate   float64 `json:"responseRate"`
}

// CampaignDetail is the composite campaign read-model.
type CampaignDetail struct {
	Campaign         CampaignRow                `json:"campaign"`
	LeadStatusStats  []StatusCount              `json:"leadStatusStats"`
	RecentLeads      []RecentLead               `json:"recentLeads"`
	Analytics        []domain.CampaignAnalytics `json:"analytics"`
	ConversionFunnel ConversionFunnel           `json:"conversionFunnel"`
	Metrics          FunnelMetrics              `json:"metrics"`
}

// LeadListFilters echoes the applied lead filter and sort parameters.
type LeadListFilters struct {
	Search     string `json:"search"`
	Status     string `json:"status"`
	CampaignID string `json:"campaignId"`
	AssignedTo string `json:"assignedTo"`
	Priority   string `json:"priority"`
	LeadSource string `json:"leadSource"`
	SortBy     string `json:"sortBy"`
	SortOrder  string `json:"sortOrder"`
}

// LeadList is the lead listing envelope.
type LeadList struct {
	Data       []LeadRow       `json:"data"`
	Pagination domain.PageMeta `json:"pagination"`
	Filters    LeadListFilters `json:"filters"`
}

// LeadView is a LeadRow with the tags field decoded into a string list.
type LeadView struct {
	LeadRow
	Tags []string `json:"tags"`
}

// LeadDetail is the composite lead read-model.
type LeadDetail struct {
	Lead         LeadView         `json:"lead"`
	Interactions []InteractionRow `json:"interactions"`
}
