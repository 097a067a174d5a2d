package domain

import "strings"

// CampaignFilter holds the optional campaign list filters. An empty string
// means the parameter was not supplied; filters combine with logical AND.
type CampaignFilter struct {
	// Search matches the campaign name, case-insensitive substring.
	Search string
	// Status matches exactly. Values outside the known set match no rows.
	Status string
	// CreatedBy matches the creator's user id exactly.
	CreatedBy string
}

// Normalize trims every filter value. Whitespace-only input counts as
// "parameter not supplied", never as a literal empty-string match.
func (f CampaignFilter) Normalize() CampaignFilter {
	f.Search = strings.TrimSpace(f.Search)
	f.Status = strings.TrimSpace(f.Status)
	f.CreatedBy = strings.TrimSpace(f.CreatedBy)
	return f
}

// LeadFilter holds the optional lead list filters. Search is a
// case-insensitive substring match ORed across name, email and company;
// all other fields are exact matches.
type LeadFilter struct {
	Search     string
	Status     string
	CampaignID string
	AssignedTo string
	Priority   string
	LeadSource string
}

// Normalize trims every filter value, dropping whitespace-only input.
func (f LeadFilter) Normalize() LeadFilter {
	f.Search = strings.TrimSpace(f.Search)
	f.Status = strings.TrimSpace(f.Status)
	f.CampaignID = strings.TrimSpace(f.CampaignID)
	f.AssignedTo = strings.TrimSpace(f.AssignedTo)
	f.Priority = strings.TrimSpace(f.Priority)
	f.LeadSource = strings.TrimSpace(f.LeadSource)
	return f
}
