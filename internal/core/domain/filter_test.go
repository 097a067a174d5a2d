package domain

import "testing"

// TestFilterNormalize ensures whitespace-only parameters count as absent.
func TestFilterNormalize(t *testing.T) {
	f := LeadFilter{
		Search:     "  acme ",
		Status:     "   ",
		CampaignID: "\t",
		Priority:   "high",
	}.Normalize()
	if f.Search != "acme" {
		t.Fatalf("search: got %q, want %q", f.Search, "acme")
	}
	if f.Status != "" || f.CampaignID != "" {
		t.Fatalf("whitespace-only values should normalize to empty: %+v", f)
	}
	if f.Priority != "high" {
		t.Fatalf("priority: got %q", f.Priority)
	}

	cf := CampaignFilter{Search: " ", Status: "active ", CreatedBy: ""}.Normalize()
	if cf.Search != "" || cf.Status != "active" || cf.CreatedBy != "" {
		t.Fatalf("campaign filter normalize: %+v", cf)
	}
}
