package domain

// SortOrder is a resolved sort direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder resolves a direction token. Only the literal "desc" yields
// descending; every other value, including the empty string, is ascending.
// Callers that want descending as the default supply "desc" themselves
// before parsing.
func ParseSortOrder(s string) SortOrder {
	if s == "desc" {
		return SortDesc
	}
	return SortAsc
}

// CampaignSortField enumerates the columns a caller may sort campaigns by.
// The zero value is the creation timestamp, which is also the fallback for
// unrecognized input.
type CampaignSortField int

const (
	CampaignSortCreatedAt CampaignSortField = iota
	CampaignSortName
	CampaignSortStatus
	CampaignSortTotalLeads
	CampaignSortSuccessfulLeads
	CampaignSortResponseRate
	CampaignSortStartDate
	CampaignSortEndDate
	CampaignSortUpdatedAt
)

// ParseCampaignSortField maps a raw request string onto the allow-list.
// Anything outside it silently falls back to CampaignSortCreatedAt; sorting
// never fails on caller input.
func ParseCampaignSortField(s string) CampaignSortField {
	switch s {
	case "name":
		return CampaignSortName
	case "status":
		return CampaignSortStatus
	case "totalLeads":
		return CampaignSortTotalLeads
	case "successfulLeads":
		return CampaignSortSuccessfulLeads
	case "responseRate":
		return CampaignSortResponseRate
	case "startDate":
		return CampaignSortStartDate
	case "endDate":
		return CampaignSortEndDate
	case "updatedAt":
		return CampaignSortUpdatedAt
	default:
		return CampaignSortCreatedAt
	}
}

// String returns the request-level name of the field, the inverse of
// ParseCampaignSortField.
func (f CampaignSortField) String() string {
	switch f {
	case CampaignSortName:
		return "name"
	case CampaignSortStatus:
		return "status"
	case CampaignSortTotalLeads:
		return "totalLeads"
	case CampaignSortSuccessfulLeads:
		return "successfulLeads"
	case CampaignSortResponseRate:
		return "responseRate"
	case CampaignSortStartDate:
		return "startDate"
	case CampaignSortEndDate:
		return "endDate"
	case CampaignSortUpdatedAt:
		return "updatedAt"
	default:
		return "createdAt"
	}
}

// LeadSortField enumerates the columns a caller may sort leads by. The zero
// value is the creation timestamp.
type LeadSortField int

const (
	LeadSortCreatedAt LeadSortField = iota
	LeadSortName
	LeadSortEmail
	LeadSortCompany
	LeadSortStatus
	LeadSortPriority
	LeadSortLeadSource
	LeadSortUpdatedAt
)

// ParseLeadSortField maps a raw request string onto the allow-list, falling
// back to LeadSortCreatedAt for anything unrecognized.
func ParseLeadSortField(s string) LeadSortField {
	switch s {
	case "name":
		return LeadSortName
	case "email":
		return LeadSortEmail
	case "company":
		return LeadSortCompany
	case "status":
		return LeadSortStatus
	case "priority":
		return LeadSortPriority
	case "leadSource":
		return LeadSortLeadSource
	case "updatedAt":
		return LeadSortUpdatedAt
	default:
		return LeadSortCreatedAt
	}
}

// String returns the request-level name of the field, the inverse of
// ParseLeadSortField.
func (f LeadSortField) String() string {
	switch f {
	case LeadSortName:
		return "name"
	case LeadSortEmail:
		return "email"
	case LeadSortCompany:
		return "company"
	case LeadSortStatus:
		return "status"
	case LeadSortPriority:
		return "priority"
	case LeadSortLeadSource:
		return "leadSource"
	case LeadSortUpdatedAt:
		return "updatedAt"
	default:
		return "createdAt"
	}
}
