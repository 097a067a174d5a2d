package domain

// DefaultPageLimit is used when the caller supplies no page size or a
// non-positive one.
const DefaultPageLimit = 20

// PageRequest is a 1-based page number and page size.
type PageRequest struct {
	Page  int
	Limit int
}

// Normalize clamps the page to 1 and substitutes the default limit for
// non-positive page sizes. The upstream behavior for these inputs was
// undefined; normalizing keeps list endpoints tolerant of junk input the
// same way the sort fallback does.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	return p
}

// Offset returns the row offset for the bounded fetch.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageMeta is the pagination metadata attached to every list response.
// NextPage and PrevPage are null when there is no such page.
type PageMeta struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalCount  int  `json:"totalCount"`
	Limit       int  `json:"limit"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
	NextPage    *int `json:"nextPage"`
	PrevPage    *int `json:"prevPage"`
}

// NewPageMeta computes pagination metadata from a normalized request and the
// total matching row count. A zero total yields zero pages and no next page
// for any requested page.
func NewPageMeta(p PageRequest, totalCount int) PageMeta {
	totalPages := (totalCount + p.Limit - 1) / p.Limit
	m := PageMeta{
		CurrentPage: p.Page,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
		Limit:       p.Limit,
		HasNextPage: p.Page < totalPages,
		HasPrevPage: p.Page > 1,
	}
	if m.HasNextPage {
		next := p.Page + 1
		m.NextPage = &next
	}
	if m.HasPrevPage {
		prev := p.Page - 1
		m.PrevPage = &prev
	}
	return m
}
