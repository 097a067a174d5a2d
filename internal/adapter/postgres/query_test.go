package postgres

import (
	"testing"

	"leadboard/internal/core/domain"
)

// TestEmptyFilterCompilesToNoWhere: with every parameter absent the
// predicate matches all rows.
func TestEmptyFilterCompilesToNoWhere(t *testing.T) {
	c := leadConds(domain.LeadFilter{})
	if c.where() != "" {
		t.Fatalf("empty filter produced WHERE: %q", c.where())
	}
	if len(c.args) != 0 {
		t.Fatalf("empty filter produced args: %v", c.args)
	}

	c = campaignConds(domain.CampaignFilter{})
	if c.where() != "" {
		t.Fatalf("empty campaign filter produced WHERE: %q", c.where())
	}
}

// TestLeadSearchSpansColumns: the search term is ORed across name, email
// and company with a single shared argument.
func TestLeadSearchSpansColumns(t *testing.T) {
	c := leadConds(domain.LeadFilter{Search: "acme"})
	want := " WHERE (l.name ILIKE $1 OR l.email ILIKE $1 OR l.company ILIKE $1)"
	if got := c.where(); got != want {
		t.Fatalf("where: got %q, want %q", got, want)
	}
	if len(c.args) != 1 || c.args[0] != "%acme%" {
		t.Fatalf("args: got %v", c.args)
	}
}

// TestCampaignSearchMatchesNameOnly.
func TestCampaignSearchMatchesNameOnly(t *testing.T) {
	c := campaignConds(domain.CampaignFilter{Search: "spring"})
	want := " WHERE c.name ILIKE $1"
	if got := c.where(); got != want {
		t.Fatalf("where: got %q, want %q", got, want)
	}
}

// TestCombinedFiltersAreConjunctive: all present filters AND together with
// sequential placeholders.
func TestCombinedFiltersAreConjunctive(t *testing.T) {
	c := leadConds(domain.LeadFilter{
		Search:     "acme",
		Status:     "contacted",
		CampaignID: "c1",
		Priority:   "high",
	})
	want := " WHERE (l.name ILIKE $1 OR l.email ILIKE $1 OR l.company ILIKE $1)" +
		" AND l.status = $2 AND l.campaign_id = $3 AND l.priority = $4"
	if got := c.where(); got != want {
		t.Fatalf("where: got %q, want %q", got, want)
	}
	if c.next() != 5 {
		t.Fatalf("next placeholder: got %d, want 5", c.next())
	}
}

// TestSortColumnMapping pins the allow-list to concrete columns; the
// default direction covers the fallback field.
func TestSortColumnMapping(t *testing.T) {
	if got := campaignSortColumn(domain.ParseCampaignSortField("totalLeads")); got != "c.total_leads" {
		t.Fatalf("campaign sort column: got %q", got)
	}
	if got := campaignSortColumn(domain.ParseCampaignSortField("bogus")); got != "c.created_at" {
		t.Fatalf("campaign fallback column: got %q", got)
	}
	if got := leadSortColumn(domain.ParseLeadSortField("leadSource")); got != "l.lead_source" {
		t.Fatalf("lead sort column: got %q", got)
	}
	if got := orderDir(domain.ParseSortOrder("desc")); got != "DESC" {
		t.Fatalf("orderDir desc: got %q", got)
	}
	if got := orderDir(domain.ParseSortOrder("anything")); got != "ASC" {
		t.Fatalf("orderDir fallback: got %q", got)
	}
}
