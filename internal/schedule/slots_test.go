package schedule

import (
	"testing"
	"time"

	"bookline-schedule/internal/domain/entity"
)

var testNow = time.Date(2025, 9, 10, 12, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSlotsForDayWorkingHours(t *testing.T) {
	week := entity.WeekSchedule{
		// 2025-09-13 is a Saturday
		time.Saturday: {IsAvailable: true, StartTime: "09:00", EndTime: "17:00"},
	}

	slots := SlotsForDay(day(2025, 9, 13), week, testNow)
	if len(slots) != 16 {
		t.Fatalf("expected 16 slots for 09:00-17:00, got %d", len(slots))
	}
	if slots[0].Hour != 9 || slots[0].Minute != 0 {
		t.Fatalf("first slot = %d:%02d, want 9:00", slots[0].Hour, slots[0].Minute)
	}
	last := slots[len(slots)-1]
	if last.Hour != 16 || last.Minute != 30 {
		t.Fatalf("last slot = %d:%02d, want 16:30", last.Hour, last.Minute)
	}
}

func TestSlotsForDayClosed(t *testing.T) {
	week := entity.WeekSchedule{
		time.Saturday: {IsAvailable: false},
	}

	if slots := SlotsForDay(day(2025, 9, 13), week, testNow); len(slots) != 0 {
		t.Fatalf("closed future day should have no slots, got %d", len(slots))
	}
}

func TestSlotsForDayZeroSpan(t *testing.T) {
	week := entity.WeekSchedule{
		time.Saturday: {IsAvailable: true, StartTime: "12:00", EndTime: "12:00"},
	}
	if slots := SlotsForDay(day(2025, 9, 13), week, testNow); len(slots) != 0 {
		t.Fatalf("zero-span day should have no slots, got %d", len(slots))
	}

	week[time.Saturday] = entity.WorkingHours{IsAvailable: true, StartTime: "17:00", EndTime: "09:00"}
	if slots := SlotsForDay(day(2025, 9, 13), week, testNow); len(slots) != 0 {
		t.Fatalf("negative-span day should have no slots, got %d", len(slots))
	}
}

// Past days get the wide fallback window so historical appointments stay
// visible even outside normal hours.
func TestSlotsForDayPastFallback(t *testing.T) {
	week := entity.WeekSchedule{
		time.Monday: {IsAvailable: false},
	}

	slots := SlotsForDay(day(2025, 9, 1), week, testNow)
	if len(slots) != 24 {
		t.Fatalf("expected 24 fallback slots for 08:00-20:00, got %d", len(slots))
	}
	if slots[0].Hour != 8 || slots[len(slots)-1].Hour != 19 || slots[len(slots)-1].Minute != 30 {
		t.Fatalf("fallback window should span 08:00 to 19:30, got %d:%02d to %d:%02d",
			slots[0].Hour, slots[0].Minute, slots[len(slots)-1].Hour, slots[len(slots)-1].Minute)
	}
}

func TestSlotsForDayUnconfiguredFallback(t *testing.T) {
	slots := SlotsForDay(day(2025, 9, 13), entity.WeekSchedule{}, testNow)
	if len(slots) != 24 {
		t.Fatalf("unconfigured day should use the fallback window, got %d slots", len(slots))
	}
}

func TestSlotsForDayLabels(t *testing.T) {
	week := entity.WeekSchedule{
		time.Saturday: {IsAvailable: true, StartTime: "09:00", EndTime: "10:00"},
	}

	slots := SlotsForDay(day(2025, 9, 13), week, testNow)
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if slots[0].Label != "9:00 AM" || slots[1].Label != "9:30 AM" {
		t.Fatalf("labels = %q, %q", slots[0].Label, slots[1].Label)
	}
}
