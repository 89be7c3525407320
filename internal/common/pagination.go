package common

// Page is one fixed-size window over an ordered result set, together
// with the cursors handlers need to build next/prev links. Pages are
// 1-indexed.
type Page[T any] struct {
	Items   []T   `json:"items"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
	NextNum int   `json:"next_num,omitempty"`
	PrevNum int   `json:"prev_num,omitempty"`
}

// NewPage builds the page descriptor for items already sliced by the
// repository. An out-of-range page is not an error, it just comes back
// empty with HasNext false.
func NewPage[T any](items []T, page, perPage int, total int64) Page[T] {
	if page < 1 {
		page = 1
	}
	if items == nil {
		items = []T{}
	}

	p := Page[T]{
		Items:   items,
		Page:    page,
		PerPage: perPage,
		Total:   total,
	}

	if int64(page)*int64(perPage) < total {
		p.HasNext = true
		p.NextNum = page + 1
	}
	if page > 1 {
		p.HasPrev = true
		p.PrevNum = page - 1
	}

	return p
}

// PageOffset converts a 1-indexed page number into the row offset fed
// to LIMIT/OFFSET queries.
func PageOffset(page, perPage int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * perPage
}
