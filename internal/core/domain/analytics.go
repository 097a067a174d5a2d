package domain

import "time"

// CampaignAnalytics is one recorded day of campaign activity counters.
type CampaignAnalytics struct {
	ID             string    `json:"id"`
	CampaignID     string    `json:"campaignId"`
	Date           time.Time `json:"date"`
	LeadsAdded     int       `json:"leadsAdded"`
	LeadsContacted int       `json:"leadsContacted"`
	LeadsResponded int       `json:"leadsResponded"`
	LeadsConverted int       `json:"leadsConverted"`
	EmailsSent     int       `json:"emailsSent"`
	EmailsOpened   int       `json:"emailsOpened"`
	EmailsClicked  int       `json:"emailsClicked"`
	CreatedAt      time.Time `json:"createdAt"`
}
