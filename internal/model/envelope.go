package model

// Envelope is the uniform response wrapper the CareLink admin API uses for
// every endpoint. When Success is false the Data field must not be used;
// Message is the only user-facing text guaranteed to be present.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// Pagination describes a server-computed page window. The client never
// recomputes these values; only the Start/End display indices are derived
// locally and they must stay consistent with Page, Limit, and Total.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// Start returns the 1-based index of the first item on the current page,
// or 0 when the result set is empty.
func (p Pagination) Start() int {
	if p.Total == 0 {
		return 0
	}
	return (p.Page-1)*p.Limit + 1
}

// End returns the 1-based index of the last item on the current page.
func (p Pagination) End() int {
	end := p.Page * p.Limit
	if end > p.Total {
		end = p.Total
	}
	return end
}
