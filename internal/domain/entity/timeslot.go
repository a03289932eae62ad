package entity

import "bookline-schedule/internal/timeparse"

// TimeSlot is a derived, ephemeral 30-minute grid cell. Slots are regenerated
// on every date change and never persisted.
type TimeSlot struct {
	Hour   int    `json:"hour"`
	Minute int    `json:"minute"`
	Label  string `json:"label"`
}

// NewTimeSlot builds a slot with its 12-hour display label.
func NewTimeSlot(c timeparse.Clock) TimeSlot {
	return TimeSlot{
		Hour:   c.Hour,
		Minute: c.Minute,
		Label:  timeparse.FormatSlot(c),
	}
}

// Clock returns the slot's start time of day.
func (s TimeSlot) Clock() timeparse.Clock {
	return timeparse.Clock{Hour: s.Hour, Minute: s.Minute}
}
