package usecase

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/errgroup"

	"leadboard/internal/core/domain"
	"leadboard/internal/core/port"
)

// LeadUseCase provides the lead read operations: the filtered, sorted,
// paginated listing and the detail read-model with decoded tags and the
// interaction history.
type LeadUseCase struct {
	repo port.LeadRepository
}

// NewLeadUseCase creates a new usecase with the provided repository.
func NewLeadUseCase(repo port.LeadRepository) *LeadUseCase {
	return &LeadUseCase{repo: repo}
}

// ListLeads normalizes the query, then issues the count and the page fetch
// concurrently against the same filter.
func (u *LeadUseCase) ListLeads(ctx context.Context, q port.LeadQuery) (*port.LeadList, error) {
	q.Filter = q.Filter.Normalize()
	q.Page = q.Page.Normalize()

	var (
		total int
		rows  []port.LeadRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = u.repo.CountLeads(gctx, q.Filter)
		return err
	})
	g.Go(func() error {
		var err error
		rows, err = u.repo.ListLeads(gctx, q)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if rows == nil {
		rows = []port.LeadRow{}
	}
	return &port.LeadList{
		Data:       rows,
		Pagination: domain.NewPageMeta(q.Page, total),
		Filters: port.LeadListFilters{
			Search:     q.Filter.Search,
			Status:     q.Filter.Status,
			CampaignID: q.Filter.CampaignID,
			AssignedTo: q.Filter.AssignedTo,
			Priority:   q.Filter.Priority,
			LeadSource: q.Filter.LeadSource,
			SortBy:     q.Sort.String(),
			SortOrder:  string(q.Order),
		},
	}, nil
}

// LeadDetail fetches the lead row (absence is the not-found outcome), then
// its interaction history, and decodes the serialized tags.
func (u *LeadUseCase) LeadDetail(ctx context.Context, id string) (*port.LeadDetail, error) {
	lead, err := u.repo.GetLead(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, port.ErrLeadNotFound
	}

	interactions, err := u.repo.ListInteractions(ctx, id)
	if err != nil {
		return nil, err
	}
	if interactions == nil {
		interactions = []port.InteractionRow{}
	}

	return &port.LeadDetail{
		Lead: port.LeadView{
			LeadRow: *lead,
			Tags:    decodeTags(lead.Tags),
		},
		Interactions: interactions,
	}, nil
}

// decodeTags parses the serialized tag list. Malformed input is expected
// here and degrades to an empty list instead of failing the request.
func decodeTags(raw *string) []string {
	if raw == nil || *raw == "" {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal([]byte(*raw), &tags); err != nil {
		return []string{}
	}
	if tags == nil {
		return []string{}
	}
	return tags
}
