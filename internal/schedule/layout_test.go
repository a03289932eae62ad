package schedule

import (
	"testing"
	"time"

	"bookline-schedule/internal/domain/entity"
)

const slotHeight = 60

func grid9to17(t *testing.T) []entity.TimeSlot {
	t.Helper()
	week := entity.WeekSchedule{
		time.Saturday: {IsAvailable: true, StartTime: "09:00", EndTime: "17:00"},
	}
	return SlotsForDay(day(2025, 9, 13), week, testNow)
}

func layoutAppt(id, start, end string, duration int) entity.Appointment {
	return entity.Appointment{
		ID:              id,
		Date:            "2025-09-13",
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: duration,
		Status:          entity.StatusConfirmed,
	}
}

func placementByID(t *testing.T, placements []Placement, id string) Placement {
	t.Helper()
	for _, p := range placements {
		if p.AppointmentID == id {
			return p
		}
	}
	t.Fatalf("no placement for appointment %s", id)
	return Placement{}
}

func TestLayoutDayPosition(t *testing.T) {
	grid := grid9to17(t)
	appts := []entity.Appointment{
		layoutAppt("a1", "09:00", "10:00", 60),
		layoutAppt("a2", "10:30", "11:00", 30),
	}

	placements := LayoutDay(appts, grid, slotHeight)

	p1 := placementByID(t, placements, "a1")
	if p1.Top != 0 || p1.Height != 120 {
		t.Fatalf("a1 placement = (%d, %d), want (0, 120)", p1.Top, p1.Height)
	}

	p2 := placementByID(t, placements, "a2")
	if p2.Top != 3*slotHeight || p2.Height != slotHeight {
		t.Fatalf("a2 placement = (%d, %d), want (%d, %d)", p2.Top, p2.Height, 3*slotHeight, slotHeight)
	}
}

// Very short appointments still get a full slot of visible height.
func TestLayoutDayMinimumHeight(t *testing.T) {
	grid := grid9to17(t)
	appts := []entity.Appointment{layoutAppt("a1", "09:00", "09:10", 10)}

	p := placementByID(t, LayoutDay(appts, grid, slotHeight), "a1")
	if p.Height != slotHeight {
		t.Fatalf("height = %d, want minimum %d", p.Height, slotHeight)
	}
}

// An off-grid start snaps to the nearest slot at or before it; a start
// before the grid clamps to index 0.
func TestLayoutDayOffGridStart(t *testing.T) {
	grid := grid9to17(t)

	p := placementByID(t, LayoutDay([]entity.Appointment{layoutAppt("a1", "10:15", "11:00", 45)}, grid, slotHeight), "a1")
	if p.Top != 2*slotHeight {
		t.Fatalf("10:15 should snap to the 10:00 slot, top = %d", p.Top)
	}

	p = placementByID(t, LayoutDay([]entity.Appointment{layoutAppt("a2", "07:30", "08:30", 60)}, grid, slotHeight), "a2")
	if p.Top != 0 {
		t.Fatalf("pre-grid start should clamp to 0, top = %d", p.Top)
	}
}

func TestLayoutDayConflictDeterminism(t *testing.T) {
	grid := grid9to17(t)
	appts := []entity.Appointment{
		layoutAppt("a1", "09:00", "10:00", 60),
		layoutAppt("a2", "09:00", "10:00", 60),
	}

	placements := LayoutDay(appts, grid, slotHeight)

	if placementByID(t, placements, "a1").HasConflict {
		t.Fatal("first appointment in order must win the slot")
	}
	if !placementByID(t, placements, "a2").HasConflict {
		t.Fatal("second overlapping appointment must be flagged")
	}

	// Same input, same flags, regardless of input order.
	reversed := LayoutDay([]entity.Appointment{appts[1], appts[0]}, grid, slotHeight)
	if placementByID(t, reversed, "a1").HasConflict {
		t.Fatal("conflict flags must be deterministic under input reordering")
	}
	if !placementByID(t, reversed, "a2").HasConflict {
		t.Fatal("conflict flags must be deterministic under input reordering")
	}
}

// A flagged appointment does not claim slots, so a third appointment
// overlapping only the flagged one is placed cleanly.
func TestLayoutDayConflictDoesNotOccupy(t *testing.T) {
	grid := grid9to17(t)
	appts := []entity.Appointment{
		layoutAppt("a1", "09:00", "10:00", 60),
		layoutAppt("a2", "09:30", "11:30", 120),
		layoutAppt("a3", "11:00", "12:00", 60),
	}

	placements := LayoutDay(appts, grid, slotHeight)

	if !placementByID(t, placements, "a2").HasConflict {
		t.Fatal("a2 overlaps a1 and must be flagged")
	}
	if placementByID(t, placements, "a3").HasConflict {
		t.Fatal("a3 only overlaps the flagged a2 and must not be flagged")
	}
}

func TestLayoutDayEmpty(t *testing.T) {
	if got := LayoutDay(nil, grid9to17(t), slotHeight); got != nil {
		t.Fatalf("no appointments should yield no placements, got %v", got)
	}
}
