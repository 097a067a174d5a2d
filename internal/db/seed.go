package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo users, campaigns, leads, interactions and analytics
// into the leadboard database. A fixed demo session token is created for
// the first user so the API can be exercised immediately.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	statuses := []string{"pending", "contacted", "responded", "converted"}
	priorities := []string{"low", "medium", "high"}
	sources := []string{"LinkedIn", "Website", "Referral", "Cold Email"}
	interactionTypes := []string{"email", "call", "message", "meeting", "note"}

	// demo users
	userIDs := make([]string, 0, 3)
	for i := 1; i <= 3; i++ {
		id := uuid.NewString()
		userIDs = append(userIDs, id)
		name := fmt.Sprintf("Demo User %d", i)
		email := fmt.Sprintf("demo%d@example.com", i)
		_, err := db.Exec(ctx, `INSERT INTO "user" (id, name, email, email_verified, created_at, updated_at)
VALUES ($1,$2,$3,true,now(),now()) ON CONFLICT DO NOTHING`, id, name, email)
		if err != nil {
			return err
		}
	}

	// fixed session for the first user
	_, err := db.Exec(ctx, `INSERT INTO session (id, token, user_id, expires_at, created_at, updated_at)
VALUES ($1,$2,$3,$4,now(),now()) ON CONFLICT DO NOTHING`,
		uuid.NewString(), "demo-session-token", userIDs[0], time.Now().AddDate(0, 1, 0))
	if err != nil {
		return err
	}

	campaignStatuses := []string{"draft", "active", "active", "paused", "completed"}
	for i := 1; i <= 5; i++ {
		campaignID := uuid.NewString()
		name := fmt.Sprintf("Campaign %d", i)
		description := fmt.Sprintf("Outreach campaign %d", i)
		start := time.Now().AddDate(0, 0, -30)
		end := time.Now().AddDate(0, 1, 0)
		createdBy := userIDs[r.Intn(len(userIDs))]
		_, err = db.Exec(ctx, `INSERT INTO campaign
    (id, name, description, status, total_leads, successful_leads, response_rate,
     start_date, end_date, created_by, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,now(),now()) ON CONFLICT DO NOTHING`,
			campaignID, name, description, campaignStatuses[i-1], 20, r.Intn(10), float64(r.Intn(5000))/100,
			start, end, createdBy)
		if err != nil {
			return err
		}

		// leads with serialized tags
		for j := 1; j <= 20; j++ {
			leadID := uuid.NewString()
			leadName := fmt.Sprintf("Lead %d-%d", i, j)
			leadEmail := fmt.Sprintf("lead%d.%d@example.com", i, j)
			company := fmt.Sprintf("Company %d", r.Intn(50)+1)
			tags, _ := json.Marshal([]string{sources[r.Intn(len(sources))], priorities[r.Intn(len(priorities))]})
			var assignedTo *string
			if r.Intn(3) > 0 {
				assignedTo = &userIDs[r.Intn(len(userIDs))]
			}
			_, err = db.Exec(ctx, `INSERT INTO lead
    (id, name, email, phone, company, position, status, campaign_id, assigned_to,
     lead_source, priority, tags, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,now(),now()) ON CONFLICT DO NOTHING`,
				leadID, leadName, leadEmail, fmt.Sprintf("+1-555-%04d", r.Intn(10000)), company, "Manager",
				statuses[r.Intn(len(statuses))], campaignID, assignedTo,
				sources[r.Intn(len(sources))], priorities[r.Intn(len(priorities))], string(tags))
			if err != nil {
				return err
			}

			// a couple of interactions per lead
			for k := 0; k < r.Intn(3); k++ {
				_, err = db.Exec(ctx, `INSERT INTO lead_interaction
    (id, lead_id, type, subject, message, created_by, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,now(),now()) ON CONFLICT DO NOTHING`,
					uuid.NewString(), leadID, interactionTypes[r.Intn(len(interactionTypes))],
					"Follow up", "Checking in on the proposal.", userIDs[r.Intn(len(userIDs))])
				if err != nil {
					return err
				}
			}
		}

		// one analytics row per day for the trailing month
		for d := 0; d < 30; d++ {
			date := time.Now().AddDate(0, 0, -d)
			_, err = db.Exec(ctx, `INSERT INTO campaign_analytics
    (id, campaign_id, date, leads_added, leads_contacted, leads_responded, leads_converted,
     emails_sent, emails_opened, emails_clicked, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,now()) ON CONFLICT DO NOTHING`,
				uuid.NewString(), campaignID, date, r.Intn(5), r.Intn(4), r.Intn(3), r.Intn(2),
				r.Intn(20), r.Intn(15), r.Intn(8))
			if err != nil {
				return err
			}
		}
	}
	return nil
}
