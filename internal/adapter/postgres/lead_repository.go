package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"leadboard/internal/core/domain"
	"leadboard/internal/core/port"
)

// LeadRepository implements port.LeadRepository using pgxpool.
type LeadRepository struct {
	pool *pgxpool.Pool
}

// NewLeadRepository returns a new repository instance.
func NewLeadRepository(pool *pgxpool.Pool) *LeadRepository {
	return &LeadRepository{pool: pool}
}

// CountLeads counts leads matching the filter.
func (r *LeadRepository) CountLeads(ctx context.Context, f domain.LeadFilter) (int, error) {
	c := leadConds(f)
	var n int
	err := r.pool.QueryRow(ctx, "SELECT count(*) FROM lead l"+c.where(), c.args...).Scan(&n)
	return n, err
}

const leadRowColumns = `
            l.id,
            l.name,
            l.email,
            l.phone,
            l.company,
            l.position,
            l.status,
            l.campaign_id,
            c.name,
            l.last_contact_date,
            l.assigned_to,
            u.name,
            l.notes,
            l.lead_source,
            l.priority,
            l.tags,
            l.created_at,
            l.updated_at`

func scanLeadRow(row pgx.CollectableRow) (port.LeadRow, error) {
	var lr port.LeadRow
	err := row.Scan(
		&lr.ID,
		&lr.Name,
		&lr.Email,
		&lr.Phone,
		&lr.Company,
		&lr.Position,
		&lr.Status,
		&lr.CampaignID,
		&lr.CampaignName,
		&lr.LastContactDate,
		&lr.AssignedTo,
		&lr.AssignedUserName,
		&lr.Notes,
		&lr.LeadSource,
		&lr.Priority,
		&lr.Tags,
		&lr.CreatedAt,
		&lr.UpdatedAt,
	)
	return lr, err
}

// ListLeads returns one sorted page of leads joined with campaign and
// assignee names.
func (r *LeadRepository) ListLeads(ctx context.Context, q port.LeadQuery) ([]port.LeadRow, error) {
	c := leadConds(q.Filter)
	query := fmt.Sprintf(`
        SELECT%s
        FROM lead l
        LEFT JOIN campaign c ON l.campaign_id = c.id
        LEFT JOIN "user" u ON l.assigned_to = u.id%s
        ORDER BY %s %s
        LIMIT $%d OFFSET $%d`,
		leadRowColumns, c.where(), leadSortColumn(q.Sort), orderDir(q.Order), c.next(), c.next()+1)
	args := append(c.args, q.Page.Limit, q.Page.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanLeadRow)
}

// GetLead returns one lead with joined names, or nil when the id is unknown.
func (r *LeadRepository) GetLead(ctx context.Context, id string) (*port.LeadRow, error) {
	query := fmt.Sprintf(`
        SELECT%s
        FROM lead l
        LEFT JOIN campaign c ON l.campaign_id = c.id
        LEFT JOIN "user" u ON l.assigned_to = u.id
        WHERE l.id = $1`, leadRowColumns)
	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	lr, err := pgx.CollectOneRow(rows, scanLeadRow)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lr, nil
}

// ListInteractions returns all interactions of a lead, newest first, each
// joined with the author's display name.
func (r *LeadRepository) ListInteractions(ctx context.Context, leadID string) ([]port.InteractionRow, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT
            i.id,
            i.type,
            i.subject,
            i.message,
            i.scheduled_at,
            i.completed_at,
            i.created_by,
            u.name,
            i.created_at,
            i.updated_at
        FROM lead_interaction i
        LEFT JOIN "user" u ON i.created_by = u.id
        WHERE i.lead_id = $1
        ORDER BY i.created_at DESC`, leadID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.InteractionRow, error) {
		var ir port.InteractionRow
		err := row.Scan(
			&ir.ID,
			&ir.Type,
			&ir.Subject,
			&ir.Message,
			&ir.ScheduledAt,
			&ir.CompletedAt,
			&ir.CreatedBy,
			&ir.CreatedByName,
			&ir.CreatedAt,
			&ir.UpdatedAt,
		)
		return ir, err
	})
}
