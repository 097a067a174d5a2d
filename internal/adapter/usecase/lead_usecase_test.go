package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/mock"

	"leadboard/internal/core/domain"
	"leadboard/internal/core/port"
	"leadboard/internal/core/port/mocks"
)

func strptr(s string) *string { return &s }

// TestLeadDetailDecodesTags: a well-formed tags value comes back as a
// string list.
func TestLeadDetailDecodesTags(t *testing.T) {
	repo := mocks.NewMockLeadRepository(t)
	row := &port.LeadRow{ID: "l1", Name: "Acme Corp", Tags: strptr(`["warm","referral"]`)}
	repo.EXPECT().GetLead(mock.Anything, "l1").Return(row, nil)
	repo.EXPECT().ListInteractions(mock.Anything, "l1").Return([]port.InteractionRow{
		{ID: "i1", Type: "call", CreatedByName: strptr("Dana")},
	}, nil)

	svc := NewLeadUseCase(repo)
	detail, err := svc.LeadDetail(context.Background(), "l1")
	if err != nil {
		t.Fatalf("LeadDetail error: %v", err)
	}
	if !reflect.DeepEqual(detail.Lead.Tags, []string{"warm", "referral"}) {
		t.Fatalf("tags: got %v", detail.Lead.Tags)
	}
	if len(detail.Interactions) != 1 || detail.Interactions[0].Type != "call" {
		t.Fatalf("interactions: got %+v", detail.Interactions)
	}
}

// TestLeadDetailMalformedTags: a broken tags value degrades to an empty
// list instead of failing the request.
func TestLeadDetailMalformedTags(t *testing.T) {
	repo := mocks.NewMockLeadRepository(t)
	row := &port.LeadRow{ID: "l1", Tags: strptr(`{not json[`)}
	repo.EXPECT().GetLead(mock.Anything, "l1").Return(row, nil)
	repo.EXPECT().ListInteractions(mock.Anything, "l1").Return(nil, nil)

	svc := NewLeadUseCase(repo)
	detail, err := svc.LeadDetail(context.Background(), "l1")
	if err != nil {
		t.Fatalf("LeadDetail error: %v", err)
	}
	if detail.Lead.Tags == nil || len(detail.Lead.Tags) != 0 {
		t.Fatalf("tags: got %v, want empty list", detail.Lead.Tags)
	}
	if detail.Interactions == nil {
		t.Fatalf("interactions should be an empty list, not null")
	}
}

// TestDecodeTags covers the remaining decode edges directly.
func TestDecodeTags(t *testing.T) {
	if got := decodeTags(nil); len(got) != 0 || got == nil {
		t.Fatalf("nil: got %v", got)
	}
	if got := decodeTags(strptr("")); len(got) != 0 || got == nil {
		t.Fatalf("empty: got %v", got)
	}
	if got := decodeTags(strptr("null")); len(got) != 0 || got == nil {
		t.Fatalf("json null: got %v", got)
	}
	if got := decodeTags(strptr(`["a"]`)); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("valid: got %v", got)
	}
}

// TestLeadDetailNotFound: an unknown id is the not-found outcome.
func TestLeadDetailNotFound(t *testing.T) {
	repo := mocks.NewMockLeadRepository(t)
	repo.EXPECT().GetLead(mock.Anything, "missing").Return(nil, nil)

	svc := NewLeadUseCase(repo)
	_, err := svc.LeadDetail(context.Background(), "missing")
	if !errors.Is(err, port.ErrLeadNotFound) {
		t.Fatalf("expected ErrLeadNotFound, got %v", err)
	}
}

// TestListLeads checks normalization and the assembled envelope.
func TestListLeads(t *testing.T) {
	repo := mocks.NewMockLeadRepository(t)

	normalized := domain.LeadFilter{Search: "acme", CampaignID: "c1"}
	repo.EXPECT().CountLeads(mock.Anything, normalized).Return(7, nil)
	repo.EXPECT().ListLeads(mock.Anything, mock.MatchedBy(func(q port.LeadQuery) bool {
		return q.Filter == normalized && q.Page.Page == 2 && q.Page.Limit == 5
	})).Return([]port.LeadRow{{ID: "l1"}, {ID: "l2"}}, nil)

	svc := NewLeadUseCase(repo)
	list, err := svc.ListLeads(context.Background(), port.LeadQuery{
		Filter: domain.LeadFilter{Search: "acme ", CampaignID: " c1"},
		Sort:   domain.ParseLeadSortField("email"),
		Order:  domain.SortAsc,
		Page:   domain.PageRequest{Page: 2, Limit: 5},
	})
	if err != nil {
		t.Fatalf("ListLeads error: %v", err)
	}
	if len(list.Data) != 2 {
		t.Fatalf("data: got %d rows", len(list.Data))
	}
	if list.Pagination.TotalPages != 2 || list.Pagination.HasNextPage || !list.Pagination.HasPrevPage {
		t.Fatalf("pagination: %+v", list.Pagination)
	}
	if list.Filters.SortBy != "email" || list.Filters.SortOrder != "asc" || list.Filters.CampaignID != "c1" {
		t.Fatalf("filters echo: %+v", list.Filters)
	}
}

// TestListLeadsEmpty: an empty result still yields an empty data list and
// zero-page metadata.
func TestListLeadsEmpty(t *testing.T) {
	repo := mocks.NewMockLeadRepository(t)
	repo.EXPECT().CountLeads(mock.Anything, mock.Anything).Return(0, nil)
	repo.EXPECT().ListLeads(mock.Anything, mock.Anything).Return(nil, nil)

	svc := NewLeadUseCase(repo)
	list, err := svc.ListLeads(context.Background(), port.LeadQuery{})
	if err != nil {
		t.Fatalf("ListLeads error: %v", err)
	}
	if list.Data == nil || len(list.Data) != 0 {
		t.Fatalf("data should be an empty list, got %v", list.Data)
	}
	if list.Pagination.TotalPages != 0 || list.Pagination.HasNextPage {
		t.Fatalf("pagination: %+v", list.Pagination)
	}
}
