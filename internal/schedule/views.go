package schedule

import (
	"sort"
	"time"

	"bookline-schedule/internal/domain/entity"
)

// CalendarDay is one cell of the 6-week month grid.
type CalendarDay struct {
	Date         time.Time
	InMonth      bool
	IsToday      bool
	IsSelected   bool
	Appointments []entity.Appointment
}

// BookingsForDate returns the appointments on the given date that pass the
// filter, sorted ascending by normalized start time. Sorting on the raw
// start-time string would break with mixed ISO and bare HH:MM encodings.
func BookingsForDate(appointments []entity.Appointment, date string, filter entity.StatusFilter) []entity.Appointment {
	var matched []entity.Appointment
	for i := range appointments {
		appt := appointments[i]
		if appt.Date != date || !filter.Allows(appt.Status) {
			continue
		}
		matched = append(matched, appt)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].StartClock().Minutes() < matched[j].StartClock().Minutes()
	})
	return matched
}

// CalendarDays produces the 42 cells (6 weeks) of the month grid containing
// anchor, starting from the Sunday on or before the 1st. Each cell carries
// its matching filtered appointments.
func CalendarDays(anchor time.Time, appointments []entity.Appointment, filter entity.StatusFilter, selected, today time.Time) []CalendarDay {
	firstOfMonth := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	gridStart := firstOfMonth.AddDate(0, 0, -int(firstOfMonth.Weekday()))

	days := make([]CalendarDay, 0, 42)
	for i := 0; i < 42; i++ {
		date := gridStart.AddDate(0, 0, i)
		days = append(days, CalendarDay{
			Date:         date,
			InMonth:      date.Month() == anchor.Month(),
			IsToday:      sameDay(date, today),
			IsSelected:   sameDay(date, selected),
			Appointments: BookingsForDate(appointments, date.Format("2006-01-02"), filter),
		})
	}
	return days
}

// WeekDates returns the 7 dates of the week containing anchor, Sunday first.
func WeekDates(anchor time.Time) []time.Time {
	sunday := anchor.AddDate(0, 0, -int(anchor.Weekday()))
	sunday = time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 0, 0, 0, 0, anchor.Location())

	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = sunday.AddDate(0, 0, i)
	}
	return dates
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
