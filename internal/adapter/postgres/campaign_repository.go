package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"leadboard/internal/core/domain"
	"leadboard/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// CountCampaigns counts campaigns matching the filter.
func (r *CampaignRepository) CountCampaigns(ctx context.Context, f domain.CampaignFilter) (int, error) {
	c := campaignConds(f)
	var n int
	err := r.pool.QueryRow(ctx, "SELECT count(*) FROM campaign c"+c.where(), c.args...).Scan(&n)
	return n, err
}

// ListCampaigns returns one sorted page of campaigns with creator names.
func (r *CampaignRepository) ListCampaigns(ctx context.Context, q port.CampaignQuery) ([]port.CampaignRow, error) {
	c := campaignConds(q.Filter)
	query := fmt.Sprintf(`
        SELECT
            c.id,
            c.name,
            c.description,
            c.status,
            c.total_leads,
            c.successful_leads,
            c.response_rate,
            c.start_date,
            c.end_date,
            c.created_by,
            u.name,
            c.created_at,
            c.updated_at
        FROM campaign c
        LEFT JOIN "user" u ON c.created_by = u.id%s
        ORDER BY %s %s
        LIMIT $%d OFFSET $%d`,
		c.where(), campaignSortColumn(q.Sort), orderDir(q.Order), c.next(), c.next()+1)
	args := append(c.args, q.Page.Limit, q.Page.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.CampaignRow, error) {
		var cr port.CampaignRow
		err := row.Scan(
			&cr.ID,
			&cr.Name,
			&cr.Description,
			&cr.Status,
			&cr.TotalLeads,
			&cr.SuccessfulLeads,
			&cr.ResponseRate,
			&cr.StartDate,
			&cr.EndDate,
			&cr.CreatedBy,
			&cr.CreatedByName,
			&cr.CreatedAt,
			&cr.UpdatedAt,
		)
		return cr, err
	})
}

// SummarizeCampaigns aggregates the filtered campaign set. COALESCE keeps
// every numeric field zero-valued when the set is empty.
func (r *CampaignRepository) SummarizeCampaigns(ctx context.Context, f domain.CampaignFilter) (port.CampaignSummary, error) {
	c := campaignConds(f)
	query := `
        SELECT
            count(*),
            count(*) FILTER (WHERE c.status = 'active'),
            COALESCE(sum(c.total_leads), 0),
            COALESCE(sum(c.successful_leads), 0),
            COALESCE(avg(c.response_rate), 0)
        FROM campaign c` + c.where()
	var s port.CampaignSummary
	err := r.pool.QueryRow(ctx, query, c.args...).Scan(
		&s.TotalCampaigns,
		&s.ActiveCampaigns,
		&s.TotalLeadsAcrossAll,
		&s.TotalSuccessfulLeads,
		&s.AvgResponseRate,
	)
	return s, err
}

// GetCampaign returns one campaign with its creator's name, or nil when the
// id is unknown.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id string) (*port.CampaignRow, error) {
	var cr port.CampaignRow
	err := r.pool.QueryRow(ctx, `
        SELECT
            c.id,
            c.name,
            c.description,
            c.status,
            c.total_leads,
            c.successful_leads,
            c.response_rate,
            c.start_date,
            c.end_date,
            c.created_by,
            u.name,
            c.created_at,
            c.updated_at
        FROM campaign c
        LEFT JOIN "user" u ON c.created_by = u.id
        WHERE c.id = $1`, id).Scan(
		&cr.ID,
		&cr.Name,
		&cr.Description,
		&cr.Status,
		&cr.TotalLeads,
		&cr.SuccessfulLeads,
		&cr.ResponseRate,
		&cr.StartDate,
		&cr.EndDate,
		&cr.CreatedBy,
		&cr.CreatedByName,
		&cr.CreatedAt,
		&cr.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cr, nil
}

// LeadStatusCounts groups the campaign's leads by status.
func (r *CampaignRepository) LeadStatusCounts(ctx context.Context, campaignID string) ([]port.StatusCount, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT status, count(*) FROM lead WHERE campaign_id = $1 GROUP BY status`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.StatusCount, error) {
		var sc port.StatusCount
		err := row.Scan(&sc.Status, &sc.Count)
		return sc, err
	})
}

// RecentLeads returns the newest leads of the campaign, ties broken by id.
func (r *CampaignRepository) RecentLeads(ctx context.Context, campaignID string, limit int) ([]port.RecentLead, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, name, email, company, status, priority, created_at
        FROM lead
        WHERE campaign_id = $1
        ORDER BY created_at DESC, id
        LIMIT $2`, campaignID, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.RecentLead, error) {
		var rl port.RecentLead
		err := row.Scan(&rl.ID, &rl.Name, &rl.Email, &rl.Company, &rl.Status, &rl.Priority, &rl.CreatedAt)
		return rl, err
	})
}

// AnalyticsSince returns analytics rows recorded on or after since, newest
// first. The row cap bounds the payload when more than one row exists per
// day.
func (r *CampaignRepository) AnalyticsSince(ctx context.Context, campaignID string, since time.Time, limit int) ([]domain.CampaignAnalytics, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, campaign_id, date, leads_added, leads_contacted, leads_responded,
               leads_converted, emails_sent, emails_opened, emails_clicked, created_at
        FROM campaign_analytics
        WHERE campaign_id = $1 AND date >= $2
        ORDER BY date DESC
        LIMIT $3`, campaignID, since, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignAnalytics, error) {
		var a domain.CampaignAnalytics
		err := row.Scan(
			&a.ID,
			&a.CampaignID,
			&a.Date,
			&a.LeadsAdded,
			&a.LeadsContacted,
			&a.LeadsResponded,
			&a.LeadsConverted,
			&a.EmailsSent,
			&a.EmailsOpened,
			&a.EmailsClicked,
			&a.CreatedAt,
		)
		return a, err
	})
}
