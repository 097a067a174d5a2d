package postgres

import (
	"fmt"
	"strings"

	"leadboard/internal/core/domain"
)

// conds accumulates conjunctive WHERE clauses together with their positional
// arguments. Values that are empty after normalization never produce a
// clause, so an all-empty filter compiles to no WHERE at all.
type conds struct {
	clauses []string
	args    []any
}

// eq appends an exact-match clause. Empty values are skipped.
func (c *conds) eq(column, value string) {
	if value == "" {
		return
	}
	c.args = append(c.args, value)
	c.clauses = append(c.clauses, fmt.Sprintf("%s = $%d", column, len(c.args)))
}

// search appends a case-insensitive substring match ORed across the given
// columns. Empty values are skipped.
func (c *conds) search(value string, columns ...string) {
	if value == "" {
		return
	}
	c.args = append(c.args, "%"+value+"%")
	n := len(c.args)
	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = fmt.Sprintf("%s ILIKE $%d", col, n)
	}
	if len(parts) == 1 {
		c.clauses = append(c.clauses, parts[0])
		return
	}
	c.clauses = append(c.clauses, "("+strings.Join(parts, " OR ")+")")
}

// where renders the accumulated clauses, with a leading space, or returns
// the empty string when nothing was filtered.
func (c *conds) where() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.clauses, " AND ")
}

// next returns the placeholder index for the next appended argument.
func (c *conds) next() int {
	return len(c.args) + 1
}

// campaignConds compiles a campaign filter. Campaign search matches the
// name only.
func campaignConds(f domain.CampaignFilter) *conds {
	c := &conds{}
	c.search(f.Search, "c.name")
	c.eq("c.status", f.Status)
	c.eq("c.created_by", f.CreatedBy)
	return c
}

// leadConds compiles a lead filter. Lead search spans name, email and
// company.
func leadConds(f domain.LeadFilter) *conds {
	c := &conds{}
	c.search(f.Search, "l.name", "l.email", "l.company")
	c.eq("l.status", f.Status)
	c.eq("l.campaign_id", f.CampaignID)
	c.eq("l.assigned_to", f.AssignedTo)
	c.eq("l.priority", f.Priority)
	c.eq("l.lead_source", f.LeadSource)
	return c
}

// campaignSortColumn maps a resolved sort field onto its column. The switch
// is exhaustive over the allow-list; the default arm covers only the zero
// value.
func campaignSortColumn(f domain.CampaignSortField) string {
	switch f {
	case domain.CampaignSortName:
		return "c.name"
	case domain.CampaignSortStatus:
		return "c.status"
	case domain.CampaignSortTotalLeads:
		return "c.total_leads"
	case domain.CampaignSortSuccessfulLeads:
		return "c.successful_leads"
	case domain.CampaignSortResponseRate:
		return "c.response_rate"
	case domain.CampaignSortStartDate:
		return "c.start_date"
	case domain.CampaignSortEndDate:
		return "c.end_date"
	case domain.CampaignSortUpdatedAt:
		return "c.updated_at"
	default:
		return "c.created_at"
	}
}

// leadSortColumn maps a resolved lead sort field onto its column.
func leadSortColumn(f domain.LeadSortField) string {
	switch f {
	case domain.LeadSortName:
		return "l.name"
	case domain.LeadSortEmail:
		return "l.email"
	case domain.LeadSortCompany:
		return "l.company"
	case domain.LeadSortStatus:
		return "l.status"
	case domain.LeadSortPriority:
		return "l.priority"
	case domain.LeadSortLeadSource:
		return "l.lead_source"
	case domain.LeadSortUpdatedAt:
		return "l.updated_at"
	default:
		return "l.created_at"
	}
}

// orderDir renders a sort order as SQL.
func orderDir(o domain.SortOrder) string {
	if o == domain.SortDesc {
		return "DESC"
	}
	return "ASC"
}
