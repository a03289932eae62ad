package entity

import "strings"

// Status represents the lifecycle status of an appointment
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "inprogress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

// forwardChain is the normal, non-exceptional status progression.
var forwardChain = map[Status]Status{
	StatusPending:    StatusConfirmed,
	StatusConfirmed:  StatusInProgress,
	StatusInProgress: StatusCompleted,
}

// Next returns the single allowed forward transition, or false when the
// status is terminal.
func (s Status) Next() (Status, bool) {
	next, ok := forwardChain[s]
	return next, ok
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// CanTransitionTo reports whether target is reachable from s, covering both
// the forward chain and the exceptional transitions (cancel, no-show).
func (s Status) CanTransitionTo(target Status) bool {
	if s.IsTerminal() {
		return false
	}
	switch target {
	case StatusCancelled:
		return true
	case StatusNoShow:
		return s == StatusConfirmed
	}
	next, ok := s.Next()
	return ok && next == target
}

// BlocksSlot reports whether an appointment in this status occupies its time
// range for availability purposes. Cancelled and no-show never block a slot.
func (s Status) BlocksSlot() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted:
		return true
	}
	return false
}

// ParseStatus decodes the string encoding used by the upstream API. It is the
// single decode point; call sites must not re-implement the mapping.
func ParseStatus(s string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return StatusPending, true
	case "confirmed", "accepted":
		return StatusConfirmed, true
	case "inprogress", "in_progress", "in-progress":
		return StatusInProgress, true
	case "completed", "done":
		return StatusCompleted, true
	case "cancelled", "canceled", "declined":
		return StatusCancelled, true
	case "no_show", "no-show", "noshow":
		return StatusNoShow, true
	}
	return "", false
}

// StatusFromCode decodes the numeric encoding some upstream endpoints return
// instead of the string form.
func StatusFromCode(code int) (Status, bool) {
	switch code {
	case 0:
		return StatusPending, true
	case 1:
		return StatusConfirmed, true
	case 2:
		return StatusInProgress, true
	case 3:
		return StatusCompleted, true
	case 4:
		return StatusCancelled, true
	case 5:
		return StatusNoShow, true
	}
	return "", false
}
