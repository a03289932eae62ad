// Package schedule implements the appointment schedule view model: slot grid
// generation, availability resolution, day layout with conflict detection,
// and the day/week/month query views. Everything here is a pure function of
// its inputs; the usecase layer owns state and remote calls.
package schedule

import (
	"time"

	"bookline-schedule/internal/domain/entity"
	"bookline-schedule/internal/timeparse"
)

// SlotIntervalMinutes is the grid granularity.
const SlotIntervalMinutes = 30

// Past or unconfigured days fall back to a wide window so historical
// appointments stay visible outside normal hours.
var (
	fallbackStart = timeparse.Clock{Hour: 8}
	fallbackEnd   = timeparse.Clock{Hour: 20}
)

// SlotsForDay generates the ordered 30-minute slot grid for one calendar day.
// Working-hours bounds are half-open: a 09:00-17:00 day yields 09:00 through
// 16:30. A configured-but-closed future day yields no slots.
func SlotsForDay(date time.Time, week entity.WeekSchedule, now time.Time) []entity.TimeSlot {
	today := now.Truncate(24 * time.Hour)
	isPast := date.Before(today)

	hours, configured := week[date.Weekday()]
	if isPast || !configured {
		return slotRange(fallbackStart, fallbackEnd)
	}
	if !hours.IsAvailable {
		return nil
	}

	start, err := timeparse.ParseClock(hours.StartTime)
	if err != nil {
		return slotRange(fallbackStart, fallbackEnd)
	}
	end, err := timeparse.ParseClock(hours.EndTime)
	if err != nil {
		return slotRange(fallbackStart, fallbackEnd)
	}

	return slotRange(start, end)
}

// slotRange yields slots in [start, end). A zero-or-negative span is a
// closed day and yields nothing.
func slotRange(start, end timeparse.Clock) []entity.TimeSlot {
	from, to := start.Minutes(), end.Minutes()
	if to <= from {
		return nil
	}

	slots := make([]entity.TimeSlot, 0, (to-from)/SlotIntervalMinutes)
	for m := from; m < to; m += SlotIntervalMinutes {
		slots = append(slots, entity.NewTimeSlot(timeparse.Clock{Hour: m / 60, Minute: m % 60}))
	}
	return slots
}
