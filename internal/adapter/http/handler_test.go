package httpadapter

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"leadboard/internal/core/domain"
	"leadboard/internal/core/port"
	"leadboard/internal/core/port/mocks"
)

type testDeps struct {
	campaigns *mocks.MockCampaignUseCase
	leads     *mocks.MockLeadUseCase
	sessions  *mocks.MockSessionRepository
	handler   *Handler
}

func newTestHandler(t *testing.T) testDeps {
	d := testDeps{
		campaigns: mocks.NewMockCampaignUseCase(t),
		leads:     mocks.NewMockLeadUseCase(t),
		sessions:  mocks.NewMockSessionRepository(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	d.handler = NewHandler(d.campaigns, d.leads, d.sessions, logger)
	return d
}

// expectSession registers a valid session lookup for the given token.
func (d testDeps) expectSession(token string) {
	d.sessions.EXPECT().FindSessionByToken(mock.Anything, token).Return(&port.AuthenticatedSession{
		Session: domain.Session{ID: "s1", Token: token, UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)},
		User:    domain.User{ID: "u1", Name: "Dana", Email: "dana@example.com"},
	}, nil)
}

func doRequest(d testDeps, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	d.handler.Router().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body.Error
}

// TestMissingTokenIsUnauthorized: no bearer token and no cookie means 401
// before any usecase runs.
func TestMissingTokenIsUnauthorized(t *testing.T) {
	d := newTestHandler(t)
	rec := doRequest(d, "/api/v1/leads", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401", rec.Code)
	}
	if decodeError(t, rec) != "Unauthorized" {
		t.Fatalf("unexpected error body")
	}
}

// TestExpiredSessionIsUnauthorized.
func TestExpiredSessionIsUnauthorized(t *testing.T) {
	d := newTestHandler(t)
	d.sessions.EXPECT().FindSessionByToken(mock.Anything, "old").Return(&port.AuthenticatedSession{
		Session: domain.Session{Token: "old", ExpiresAt: time.Now().Add(-time.Minute)},
	}, nil)
	rec := doRequest(d, "/api/v1/leads", "old")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401", rec.Code)
	}
}

// TestUnknownSessionIsUnauthorized.
func TestUnknownSessionIsUnauthorized(t *testing.T) {
	d := newTestHandler(t)
	d.sessions.EXPECT().FindSessionByToken(mock.Anything, "ghost").Return(nil, nil)
	rec := doRequest(d, "/api/v1/campaigns", "ghost")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401", rec.Code)
	}
}

// TestLeadListParamParsing pins the raw-request-to-query translation,
// including filter and sort parameters.
func TestLeadListParamParsing(t *testing.T) {
	d := newTestHandler(t)
	d.expectSession("tok")

	want := port.LeadQuery{
		Filter: domain.LeadFilter{Search: "acme", Status: "contacted"},
		Sort:   domain.LeadSortEmail,
		Order:  domain.SortAsc,
		Page:   domain.PageRequest{Page: 2, Limit: 5},
	}
	d.leads.EXPECT().ListLeads(mock.Anything, want).Return(&port.LeadList{Data: []port.LeadRow{}}, nil)

	rec := doRequest(d, "/api/v1/leads?page=2&limit=5&search=acme&status=contacted&sortBy=email&sortOrder=asc", "tok")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type: got %q", ct)
	}
}

// TestCampaignListDefaults: absent parameters resolve to page 1, the
// default limit, createdAt descending.
func TestCampaignListDefaults(t *testing.T) {
	d := newTestHandler(t)
	d.expectSession("tok")

	want := port.CampaignQuery{
		Sort:  domain.CampaignSortCreatedAt,
		Order: domain.SortDesc,
		Page:  domain.PageRequest{Page: 1, Limit: domain.DefaultPageLimit},
	}
	d.campaigns.EXPECT().ListCampaigns(mock.Anything, want).Return(&port.CampaignList{Data: []port.CampaignRow{}}, nil)

	rec := doRequest(d, "/api/v1/campaigns", "tok")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
}

// TestCampaignDetailNotFound maps the sentinel to 404 with the campaign
// message.
func TestCampaignDetailNotFound(t *testing.T) {
	d := newTestHandler(t)
	d.expectSession("tok")
	d.campaigns.EXPECT().CampaignDetail(mock.Anything, "nope").Return(nil, port.ErrCampaignNotFound)

	rec := doRequest(d, "/api/v1/campaigns/nope", "tok")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", rec.Code)
	}
	if decodeError(t, rec) != "Campaign not found" {
		t.Fatalf("unexpected error body")
	}
}

// TestLeadDetailNotFound maps the sentinel to 404 with the lead message.
func TestLeadDetailNotFound(t *testing.T) {
	d := newTestHandler(t)
	d.expectSession("tok")
	d.leads.EXPECT().LeadDetail(mock.Anything, "nope").Return(nil, port.ErrLeadNotFound)

	rec := doRequest(d, "/api/v1/leads/nope", "tok")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", rec.Code)
	}
	if decodeError(t, rec) != "Lead not found" {
		t.Fatalf("unexpected error body")
	}
}

// TestUnexpectedFailureIsOpaque: store failures surface as a generic 500
// with no cause in the body.
func TestUnexpectedFailureIsOpaque(t *testing.T) {
	d := newTestHandler(t)
	d.expectSession("tok")
	d.campaigns.EXPECT().CampaignDetail(mock.Anything, "c1").
		Return(nil, io.ErrUnexpectedEOF)

	rec := doRequest(d, "/api/v1/campaigns/c1", "tok")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500", rec.Code)
	}
	if decodeError(t, rec) != "Internal server error" {
		t.Fatalf("error body should be opaque")
	}
}

// TestMe returns the session identity.
func TestMe(t *testing.T) {
	d := newTestHandler(t)
	d.expectSession("tok")

	rec := doRequest(d, "/api/v1/me", "tok")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	var body struct {
		User struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.User.Email != "dana@example.com" {
		t.Fatalf("user email: got %q", body.User.Email)
	}
}

// TestSessionCookieFallback: the session cookie works when no bearer
// header is sent.
func TestSessionCookieFallback(t *testing.T) {
	d := newTestHandler(t)
	d.expectSession("cookie-tok")
	d.leads.EXPECT().ListLeads(mock.Anything, mock.Anything).Return(&port.LeadList{Data: []port.LeadRow{}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/leads", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "cookie-tok"})
	rec := httptest.NewRecorder()
	d.handler.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
}
