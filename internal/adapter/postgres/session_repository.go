package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"leadboard/internal/core/port"
)

// SessionRepository implements port.SessionRepository using pgxpool.
type SessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository returns a new repository instance.
func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

// FindSessionByToken resolves a session token to the session and its user.
// Unknown tokens return nil without an error; expiry is the caller's check.
func (r *SessionRepository) FindSessionByToken(ctx context.Context, token string) (*port.AuthenticatedSession, error) {
	var as port.AuthenticatedSession
	err := r.pool.QueryRow(ctx, `
        SELECT
            s.id,
            s.token,
            s.user_id,
            s.expires_at,
            s.ip_address,
            s.user_agent,
            s.created_at,
            s.updated_at,
            u.id,
            u.name,
            u.email,
            u.email_verified,
            u.image,
            u.created_at,
            u.updated_at
        FROM session s
        JOIN "user" u ON s.user_id = u.id
        WHERE s.token = $1`, token).Scan(
		&as.Session.ID,
		&as.Session.Token,
		&as.Session.UserID,
		&as.Session.ExpiresAt,
		&as.Session.IPAddress,
		&as.Session.UserAgent,
		&as.Session.CreatedAt,
		&as.Session.UpdatedAt,
		&as.User.ID,
		&as.User.Name,
		&as.User.Email,
		&as.User.EmailVerified,
		&as.User.Image,
		&as.User.CreatedAt,
		&as.User.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &as, nil
}
