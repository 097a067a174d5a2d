package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"leadboard/internal/core/domain"
	"leadboard/internal/core/port"
	"leadboard/internal/core/port/mocks"
)

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 0.01 {
		t.Fatalf("%s: got %f, want %f", name, got, want)
	}
}

// TestCampaignDetailFunnel checks the funnel fold and the derived rates for
// a mixed histogram.
func TestCampaignDetailFunnel(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)

	camp := &port.CampaignRow{ID: "c1", Name: "Spring Outreach"}
	repo.EXPECT().GetCampaign(mock.Anything, "c1").Return(camp, nil)
	repo.EXPECT().LeadStatusCounts(mock.Anything, "c1").Return([]port.StatusCount{
		{Status: "pending", Count: 5},
		{Status: "contacted", Count: 3},
		{Status: "responded", Count: 2},
		{Status: "converted", Count: 1},
	}, nil)
	repo.EXPECT().RecentLeads(mock.Anything, "c1", recentLeadLimit).Return(nil, nil)
	repo.EXPECT().AnalyticsSince(mock.Anything, "c1", mock.Anything, analyticsRowCap).Return(nil, nil)

	svc := NewCampaignUseCase(repo)
	detail, err := svc.CampaignDetail(context.Background(), "c1")
	if err != nil {
		t.Fatalf("CampaignDetail error: %v", err)
	}

	f := detail.ConversionFunnel
	if f.TotalLeads != 11 || f.Contacted != 3 || f.Responded != 2 || f.Converted != 1 {
		t.Fatalf("unexpected funnel: %+v", f)
	}
	approx(t, "conversionRate", detail.Metrics.ConversionRate, 9.09)
	approx(t, "contactRate", detail.Metrics.ContactRate, 27.27)
	approx(t, "responseRate", detail.Metrics.ResponseRate, 66.67)

	// nil fetch results come back as empty slices, not nulls
	if detail.RecentLeads == nil || detail.Analytics == nil {
		t.Fatalf("expected empty slices for absent child data")
	}
}

// TestCampaignDetailZeroLeads ensures no division by zero leaks into the
// rates for a campaign with no leads.
func TestCampaignDetailZeroLeads(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().GetCampaign(mock.Anything, "c2").Return(&port.CampaignRow{ID: "c2"}, nil)
	repo.EXPECT().LeadStatusCounts(mock.Anything, "c2").Return([]port.StatusCount{}, nil)
	repo.EXPECT().RecentLeads(mock.Anything, "c2", recentLeadLimit).Return(nil, nil)
	repo.EXPECT().AnalyticsSince(mock.Anything, "c2", mock.Anything, analyticsRowCap).Return(nil, nil)

	svc := NewCampaignUseCase(repo)
	detail, err := svc.CampaignDetail(context.Background(), "c2")
	if err != nil {
		t.Fatalf("CampaignDetail error: %v", err)
	}
	m := detail.Metrics
	if m.ConversionRate != 0 || m.ContactRate != 0 || m.ResponseRate != 0 {
		t.Fatalf("expected zero rates for empty campaign, got %+v", m)
	}
	if detail.ConversionFunnel.TotalLeads != 0 {
		t.Fatalf("expected zero totalLeads, got %d", detail.ConversionFunnel.TotalLeads)
	}
}

// TestCampaignDetailNotFound: an unknown id is the not-found outcome, not a
// generic failure.
func TestCampaignDetailNotFound(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().GetCampaign(mock.Anything, "missing").Return(nil, nil)

	svc := NewCampaignUseCase(repo)
	_, err := svc.CampaignDetail(context.Background(), "missing")
	if !errors.Is(err, port.ErrCampaignNotFound) {
		t.Fatalf("expected ErrCampaignNotFound, got %v", err)
	}
}

// TestCampaignDetailAnalyticsWindow pins the trailing date-range passed to
// the analytics fetch.
func TestCampaignDetailAnalyticsWindow(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	repo.EXPECT().GetCampaign(mock.Anything, "c1").Return(&port.CampaignRow{ID: "c1"}, nil)
	repo.EXPECT().LeadStatusCounts(mock.Anything, "c1").Return(nil, nil)
	repo.EXPECT().RecentLeads(mock.Anything, "c1", recentLeadLimit).Return(nil, nil)
	repo.EXPECT().AnalyticsSince(mock.Anything, "c1", now.AddDate(0, 0, -analyticsWindowDays), analyticsRowCap).
		Return(nil, nil)

	svc := NewCampaignUseCase(repo)
	svc.now = func() time.Time { return now }
	if _, err := svc.CampaignDetail(context.Background(), "c1"); err != nil {
		t.Fatalf("CampaignDetail error: %v", err)
	}
}

// TestListCampaigns checks query normalization and the assembled envelope.
func TestListCampaigns(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)

	normalized := domain.CampaignFilter{Search: "acme", Status: "active"}
	repo.EXPECT().CountCampaigns(mock.Anything, normalized).Return(42, nil)
	repo.EXPECT().ListCampaigns(mock.Anything, mock.MatchedBy(func(q port.CampaignQuery) bool {
		return q.Filter == normalized && q.Page.Page == 1 && q.Page.Limit == domain.DefaultPageLimit
	})).Return([]port.CampaignRow{{ID: "c1"}}, nil)
	repo.EXPECT().SummarizeCampaigns(mock.Anything, normalized).
		Return(port.CampaignSummary{TotalCampaigns: 42, ActiveCampaigns: 42}, nil)

	svc := NewCampaignUseCase(repo)
	list, err := svc.ListCampaigns(context.Background(), port.CampaignQuery{
		// raw values: whitespace search, zero page request
		Filter: domain.CampaignFilter{Search: " acme ", Status: "active"},
		Sort:   domain.ParseCampaignSortField("bogus"),
		Order:  domain.SortDesc,
	})
	if err != nil {
		t.Fatalf("ListCampaigns error: %v", err)
	}
	if len(list.Data) != 1 || list.Data[0].ID != "c1" {
		t.Fatalf("unexpected data: %+v", list.Data)
	}
	if list.Pagination.TotalCount != 42 || list.Pagination.TotalPages != 3 || !list.Pagination.HasNextPage {
		t.Fatalf("unexpected pagination: %+v", list.Pagination)
	}
	if list.Filters.SortBy != "createdAt" || list.Filters.SortOrder != "desc" {
		t.Fatalf("unexpected filters echo: %+v", list.Filters)
	}
	if list.Summary.TotalCampaigns != 42 {
		t.Fatalf("unexpected summary: %+v", list.Summary)
	}
}

// TestListCampaignsRepoError: any store failure propagates as an error, not
// a partial envelope.
func TestListCampaignsRepoError(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	boom := errors.New("connection reset")
	repo.EXPECT().CountCampaigns(mock.Anything, mock.Anything).Return(0, boom).Maybe()
	repo.EXPECT().ListCampaigns(mock.Anything, mock.Anything).Return(nil, boom).Maybe()
	repo.EXPECT().SummarizeCampaigns(mock.Anything, mock.Anything).Return(port.CampaignSummary{}, boom).Maybe()

	svc := NewCampaignUseCase(repo)
	if _, err := svc.ListCampaigns(context.Background(), port.CampaignQuery{}); err == nil {
		t.Fatalf("expected error from failing repository")
	}
}
