package domain

import "testing"

// TestPageMeta checks the derived metadata across typical page positions.
func TestPageMeta(t *testing.T) {
	cases := []struct {
		name       string
		page       int
		limit      int
		total      int
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"first of many", 1, 20, 45, 3, true, false},
		{"middle", 2, 20, 45, 3, true, true},
		{"last", 3, 20, 45, 3, false, true},
		{"exact multiple", 2, 10, 20, 2, false, true},
		{"single page", 1, 20, 5, 1, false, false},
		{"past the end", 9, 20, 45, 3, false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewPageMeta(PageRequest{Page: tc.page, Limit: tc.limit}, tc.total)
			if m.TotalPages != tc.totalPages {
				t.Fatalf("totalPages: got %d, want %d", m.TotalPages, tc.totalPages)
			}
			if m.HasNextPage != tc.hasNext || m.HasPrevPage != tc.hasPrev {
				t.Fatalf("hasNext/hasPrev: got %v/%v, want %v/%v", m.HasNextPage, m.HasPrevPage, tc.hasNext, tc.hasPrev)
			}
			if tc.hasNext {
				if m.NextPage == nil || *m.NextPage != tc.page+1 {
					t.Fatalf("nextPage: got %v, want %d", m.NextPage, tc.page+1)
				}
			} else if m.NextPage != nil {
				t.Fatalf("nextPage: got %d, want nil", *m.NextPage)
			}
			if tc.hasPrev {
				if m.PrevPage == nil || *m.PrevPage != tc.page-1 {
					t.Fatalf("prevPage: got %v, want %d", m.PrevPage, tc.page-1)
				}
			} else if m.PrevPage != nil {
				t.Fatalf("prevPage: got %d, want nil", *m.PrevPage)
			}
		})
	}
}

// TestPageMetaEmpty covers the zero-row edge: zero pages and no neighbours
// for page 1.
func TestPageMetaEmpty(t *testing.T) {
	m := NewPageMeta(PageRequest{Page: 1, Limit: 20}, 0)
	if m.TotalPages != 0 {
		t.Fatalf("totalPages: got %d, want 0", m.TotalPages)
	}
	if m.HasNextPage || m.HasPrevPage {
		t.Fatalf("expected no next/prev page on empty result")
	}
	if m.NextPage != nil || m.PrevPage != nil {
		t.Fatalf("expected nil next/prev pages on empty result")
	}
}

// TestPageOffset verifies offset = (page-1)*limit and the hasNextPage
// equivalence page*limit < totalCount.
func TestPageOffset(t *testing.T) {
	for page := 1; page <= 5; page++ {
		for _, limit := range []int{1, 7, 20} {
			p := PageRequest{Page: page, Limit: limit}
			if got, want := p.Offset(), (page-1)*limit; got != want {
				t.Fatalf("offset(%d,%d): got %d, want %d", page, limit, got, want)
			}
			for _, total := range []int{0, 1, 19, 20, 21, 100} {
				m := NewPageMeta(p, total)
				if want := page*limit < total; m.HasNextPage != want {
					t.Fatalf("hasNextPage(page=%d limit=%d total=%d): got %v, want %v",
						page, limit, total, m.HasNextPage, want)
				}
			}
		}
	}
}

// TestPageRequestNormalize pins the clamping of junk page inputs.
func TestPageRequestNormalize(t *testing.T) {
	p := PageRequest{Page: 0, Limit: 0}.Normalize()
	if p.Page != 1 || p.Limit != DefaultPageLimit {
		t.Fatalf("normalize zero: got %+v", p)
	}
	p = PageRequest{Page: -3, Limit: -1}.Normalize()
	if p.Page != 1 || p.Limit != DefaultPageLimit {
		t.Fatalf("normalize negative: got %+v", p)
	}
	p = PageRequest{Page: 4, Limit: 50}.Normalize()
	if p.Page != 4 || p.Limit != 50 {
		t.Fatalf("normalize valid: got %+v", p)
	}
}
