package entity

// StatusFilter is the set of statuses visible in schedule views. It is pure
// UI state and never persisted. A nil or empty filter shows everything.
type StatusFilter map[Status]bool

// NewStatusFilter builds a filter from an explicit status list.
func NewStatusFilter(statuses ...Status) StatusFilter {
	f := make(StatusFilter, len(statuses))
	for _, s := range statuses {
		f[s] = true
	}
	return f
}

// Allows reports whether appointments with the given status are visible.
func (f StatusFilter) Allows(s Status) bool {
	if len(f) == 0 {
		return true
	}
	return f[s]
}
