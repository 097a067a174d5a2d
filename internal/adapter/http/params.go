package httpadapter

import (
	"net/url"
	"strconv"

	"leadboard/internal/core/domain"
	"leadboard/internal/core/port"
)

// intParam reads an integer query parameter, falling back to def when the
// parameter is absent or not a number. Out-of-range values are left for
// PageRequest.Normalize to clamp.
func intParam(q url.Values, name string, def int) int {
	raw := q.Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// sortOrderParam applies the documented default: an absent sortOrder means
// descending. The resolver itself only treats the literal "desc" specially.
func sortOrderParam(q url.Values) domain.SortOrder {
	raw := q.Get("sortOrder")
	if raw == "" {
		raw = "desc"
	}
	return domain.ParseSortOrder(raw)
}

func parseCampaignQuery(q url.Values) port.CampaignQuery {
	return port.CampaignQuery{
		Filter: domain.CampaignFilter{
			Search:    q.Get("search"),
			Status:    q.Get("status"),
			CreatedBy: q.Get("createdBy"),
		},
		Sort:  domain.ParseCampaignSortField(q.Get("sortBy")),
		Order: sortOrderParam(q),
		Page: domain.PageRequest{
			Page:  intParam(q, "page", 1),
			Limit: intParam(q, "limit", domain.DefaultPageLimit),
		},
	}
}

func parseLeadQuery(q url.Values) port.LeadQuery {
	return port.LeadQuery{
		Filter: domain.LeadFilter{
			Search:     q.Get("search"),
			Status:     q.Get("status"),
			CampaignID: q.Get("campaignId"),
			AssignedTo: q.Get("assignedTo"),
			Priority:   q.Get("priority"),
			LeadSource: q.Get("leadSource"),
		},
		Sort:  domain.ParseLeadSortField(q.Get("sortBy")),
		Order: sortOrderParam(q),
		Page: domain.PageRequest{
			Page:  intParam(q, "page", 1),
			Limit: intParam(q, "limit", domain.DefaultPageLimit),
		},
	}
}
