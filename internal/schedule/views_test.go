package schedule

import (
	"testing"
	"time"

	"bookline-schedule/internal/domain/entity"
)

func TestBookingsForDateFilterAndSort(t *testing.T) {
	appts := []entity.Appointment{
		appt("late", "2025-09-13", "14:00", "15:00", entity.StatusConfirmed),
		appt("early", "2025-09-13", "09:00", "10:00", entity.StatusPending),
		appt("cancelled", "2025-09-13", "10:00", "11:00", entity.StatusCancelled),
		appt("other-day", "2025-09-14", "08:00", "09:00", entity.StatusConfirmed),
	}

	got := BookingsForDate(appts, "2025-09-13", nil)
	if len(got) != 3 {
		t.Fatalf("expected 3 bookings, got %d", len(got))
	}
	if got[0].ID != "early" || got[1].ID != "cancelled" || got[2].ID != "late" {
		t.Fatalf("wrong order: %s, %s, %s", got[0].ID, got[1].ID, got[2].ID)
	}

	filtered := BookingsForDate(appts, "2025-09-13", entity.NewStatusFilter(entity.StatusConfirmed))
	if len(filtered) != 1 || filtered[0].ID != "late" {
		t.Fatalf("status filter not applied: %+v", filtered)
	}
}

// Mixed ISO and bare HH:MM encodings must still sort by actual time of day.
func TestBookingsForDateMixedEncodings(t *testing.T) {
	appts := []entity.Appointment{
		appt("iso", "2025-09-13", "2025-09-13T08:00:00", "2025-09-13T09:00:00", entity.StatusConfirmed),
		appt("bare", "2025-09-13", "07:30", "08:00", entity.StatusConfirmed),
	}

	got := BookingsForDate(appts, "2025-09-13", nil)
	if len(got) != 2 || got[0].ID != "bare" || got[1].ID != "iso" {
		t.Fatalf("mixed encodings sorted wrongly: %+v", got)
	}
}

func TestCalendarDays(t *testing.T) {
	// September 2025: the 1st is a Monday, so the grid starts Sunday Aug 31.
	anchor := day(2025, 9, 15)
	today := day(2025, 9, 10)
	selected := day(2025, 9, 13)
	appts := []entity.Appointment{
		appt("a1", "2025-09-13", "09:00", "10:00", entity.StatusConfirmed),
	}

	days := CalendarDays(anchor, appts, nil, selected, today)
	if len(days) != 42 {
		t.Fatalf("expected 42 cells, got %d", len(days))
	}

	first := days[0]
	if first.Date.Weekday() != time.Sunday {
		t.Fatalf("grid must start on Sunday, got %s", first.Date.Weekday())
	}
	if !first.Date.Equal(day(2025, 8, 31)) {
		t.Fatalf("grid start = %s, want 2025-08-31", first.Date.Format("2006-01-02"))
	}
	if first.InMonth {
		t.Fatal("August cell must not be flagged in-month")
	}

	var todayCount, selectedCount int
	for _, cell := range days {
		if cell.IsToday {
			todayCount++
			if !cell.Date.Equal(today) {
				t.Fatalf("wrong today cell: %s", cell.Date)
			}
		}
		if cell.IsSelected {
			selectedCount++
			if len(cell.Appointments) != 1 || cell.Appointments[0].ID != "a1" {
				t.Fatalf("selected cell should carry its appointment, got %+v", cell.Appointments)
			}
		}
	}
	if todayCount != 1 || selectedCount != 1 {
		t.Fatalf("today cells = %d, selected cells = %d, want 1 and 1", todayCount, selectedCount)
	}
}

func TestWeekDates(t *testing.T) {
	// 2025-09-10 is a Wednesday.
	dates := WeekDates(day(2025, 9, 10))
	if len(dates) != 7 {
		t.Fatalf("expected 7 dates, got %d", len(dates))
	}
	if !dates[0].Equal(day(2025, 9, 7)) {
		t.Fatalf("week start = %s, want Sunday 2025-09-07", dates[0].Format("2006-01-02"))
	}
	if !dates[6].Equal(day(2025, 9, 13)) {
		t.Fatalf("week end = %s, want Saturday 2025-09-13", dates[6].Format("2006-01-02"))
	}
	for i, d := range dates {
		if d.Weekday() != time.Weekday(i) {
			t.Fatalf("dates[%d].Weekday() = %s", i, d.Weekday())
		}
	}
}

func TestWeekDatesOnSunday(t *testing.T) {
	dates := WeekDates(day(2025, 9, 7))
	if !dates[0].Equal(day(2025, 9, 7)) {
		t.Fatalf("a Sunday anchor starts its own week, got %s", dates[0].Format("2006-01-02"))
	}
}
