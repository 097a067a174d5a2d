package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"leadboard/internal/core/domain"
	"leadboard/internal/core/port"
)

const (
	// recentLeadLimit caps the recent-leads block on the campaign detail.
	recentLeadLimit = 10
	// analyticsWindowDays is the trailing window for campaign analytics.
	analyticsWindowDays = 30
	// analyticsRowCap bounds the analytics payload when more than one row
	// was recorded per day inside the window.
	analyticsRowCap = 30
)

// CampaignUseCase provides the campaign read operations: the filtered,
// sorted, paginated listing with its summary aggregate and the detail
// read-model with the derived conversion funnel.
type CampaignUseCase struct {
	repo port.CampaignRepository

	// now is stubbed in tests to pin the analytics window.
	now func() time.Time
}

// NewCampaignUseCase creates a new usecase with the provided repository.
func NewCampaignUseCase(repo port.CampaignRepository) *CampaignUseCase {
	return &CampaignUseCase{repo: repo, now: time.Now}
}

// ListCampaigns normalizes the query, then issues the count, the page fetch
// and the summary aggregate concurrently; none depends on another's result
// and all run against the same filter.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context, q port.CampaignQuery) (*port.CampaignList, error) {
	q.Filter = q.Filter.Normalize()
	q.Page = q.Page.Normalize()

	var (
		total   int
		rows    []port.CampaignRow
		summary port.CampaignSummary
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = u.repo.CountCampaigns(gctx, q.Filter)
		return err
	})
	g.Go(func() error {
		var err error
		rows, err = u.repo.ListCampaigns(gctx, q)
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = u.repo.SummarizeCampaigns(gctx, q.Filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if rows == nil {
		rows = []port.CampaignRow{}
	}
	return &port.CampaignList{
		Data:       rows,
		Pagination: domain.NewPageMeta(q.Page, total),
		Filters: port.CampaignListFilters{
			Search:    q.Filter.Search,
			Status:    q.Filter.Status,
			CreatedBy: q.Filter.CreatedBy,
			SortBy:    q.Sort.String(),
			SortOrder: string(q.Order),
		},
		Summary: summary,
	}, nil
}

// CampaignDetail fetches the campaign row first (absence is the not-found
// outcome), then the status histogram, recent leads and trailing analytics
// concurrently, and derives the conversion funnel from the histogram.
func (u *CampaignUseCase) CampaignDetail(ctx context.Context, id string) (*port.CampaignDetail, error) {
	camp, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if camp == nil {
		return nil, port.ErrCampaignNotFound
	}

	var (
		stats     []port.StatusCount
		recent    []port.RecentLead
		analytics []domain.CampaignAnalytics
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = u.repo.LeadStatusCounts(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = u.repo.RecentLeads(gctx, id, recentLeadLimit)
		return err
	})
	g.Go(func() error {
		since := u.now().AddDate(0, 0, -analyticsWindowDays)
		var err error
		analytics, err = u.repo.AnalyticsSince(gctx, id, since, analyticsRowCap)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if stats == nil {
		stats = []port.StatusCount{}
	}
	if recent == nil {
		recent = []port.RecentLead{}
	}
	if analytics == nil {
		analytics = []domain.CampaignAnalytics{}
	}

	funnel := buildFunnel(stats)
	return &port.CampaignDetail{
		Campaign:         *camp,
		LeadStatusStats:  stats,
		RecentLeads:      recent,
		Analytics:        analytics,
		ConversionFunnel: funnel,
		Metrics:          funnelMetrics(funnel),
	}, nil
}

// buildFunnel folds the status histogram into funnel stages. Statuses absent
// from the histogram count as zero.
func buildFunnel(stats []port.StatusCount) port.ConversionFunnel {
	var f port.ConversionFunnel
	for _, s := range stats {
		f.TotalLeads += s.Count
		switch s.Status {
		case domain.LeadStatusContacted:
			f.Contacted = s.Count
		case domain.LeadStatusResponded:
			f.Responded = s.Count
		case domain.LeadStatusConverted:
			f.Converted = s.Count
		}
	}
	return f
}

// funnelMetrics derives the percentage rates. Every division is guarded; a
// zero denominator yields a zero rate, never NaN.
func funnelMetrics(f port.ConversionFunnel) port.FunnelMetrics {
	var m port.FunnelMetrics
	if f.TotalLeads > 0 {
		m.ConversionRate = float64(f.Converted) / float64(f.TotalLeads) * 100
		m.ContactRate = float64(f.Contacted) / float64(f.TotalLeads) * 100
	}
	if f.Contacted > 0 {
		m.ResponseRate = float64(f.Responded) / float64(f.Contacted) * 100
	}
	return m
}
