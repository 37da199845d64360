package query

// Pagination carries list windowing parameters from the HTTP layer down to
// repositories. After is a cursor: the numeric ID of the last item seen.
type Pagination struct {
	Limit  *int
	Offset *int
	Order  string
	After  *uint
}

// LimitOrDefault returns the configured limit or def when unset.
func (p *Pagination) LimitOrDefault(def int) int {
	if p == nil || p.Limit == nil {
		return def
	}
	return *p.Limit
}

// OffsetOrZero returns the configured offset or zero when unset.
func (p *Pagination) OffsetOrZero() int {
	if p == nil || p.Offset == nil {
		return 0
	}
	return *p.Offset
}
