package domain

import "testing"

// TestCampaignSortFallback ensures anything outside the allow-list resolves
// to the creation timestamp without an error.
func TestCampaignSortFallback(t *testing.T) {
	for _, s := range []string{"", "id", "created_at", "NAME", "drop table", "createdAt"} {
		if got := ParseCampaignSortField(s); got != CampaignSortCreatedAt {
			t.Fatalf("ParseCampaignSortField(%q): got %v, want CampaignSortCreatedAt", s, got)
		}
	}
}

// TestCampaignSortRoundTrip checks that every allow-listed name parses and
// prints back to itself.
func TestCampaignSortRoundTrip(t *testing.T) {
	names := []string{"name", "status", "totalLeads", "successfulLeads",
		"responseRate", "startDate", "endDate", "createdAt", "updatedAt"}
	for _, name := range names {
		if got := ParseCampaignSortField(name).String(); got != name {
			t.Fatalf("round trip %q: got %q", name, got)
		}
	}
}

func TestLeadSortFallback(t *testing.T) {
	for _, s := range []string{"", "campaignId", "Email", "tags"} {
		if got := ParseLeadSortField(s); got != LeadSortCreatedAt {
			t.Fatalf("ParseLeadSortField(%q): got %v, want LeadSortCreatedAt", s, got)
		}
	}
}

func TestLeadSortRoundTrip(t *testing.T) {
	names := []string{"name", "email", "company", "status", "priority",
		"leadSource", "createdAt", "updatedAt"}
	for _, name := range names {
		if got := ParseLeadSortField(name).String(); got != name {
			t.Fatalf("round trip %q: got %q", name, got)
		}
	}
}

// TestParseSortOrder pins the direction contract: only the literal "desc"
// is descending.
func TestParseSortOrder(t *testing.T) {
	if ParseSortOrder("desc") != SortDesc {
		t.Fatalf(`"desc" should resolve descending`)
	}
	for _, s := range []string{"", "asc", "DESC", "Desc", "descending"} {
		if ParseSortOrder(s) != SortAsc {
			t.Fatalf("ParseSortOrder(%q): want ascending", s)
		}
	}
}
