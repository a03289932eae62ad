package schedule

import (
	"testing"

	"bookline-schedule/internal/domain/entity"
	"bookline-schedule/internal/timeparse"
)

func appt(id, date, start, end string, status entity.Status) entity.Appointment {
	return entity.Appointment{
		ID:        id,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Status:    status,
	}
}

func TestResolveSlotBooked(t *testing.T) {
	appts := []entity.Appointment{
		appt("a1", "2025-09-13", "10:00", "11:00", entity.StatusConfirmed),
	}

	cases := []struct {
		clock timeparse.Clock
		want  SlotState
	}{
		{timeparse.Clock{Hour: 10}, SlotBooked},
		{timeparse.Clock{Hour: 10, Minute: 30}, SlotBooked},
		{timeparse.Clock{Hour: 11}, SlotAvailable}, // half-open range
		{timeparse.Clock{Hour: 9, Minute: 30}, SlotAvailable},
	}

	for _, tc := range cases {
		if got := ResolveSlot(tc.clock, "2025-09-13", appts, nil); got != tc.want {
			t.Fatalf("ResolveSlot(%v) = %s, want %s", tc.clock, got, tc.want)
		}
	}
}

func TestResolveSlotCancelledNeverBlocks(t *testing.T) {
	appts := []entity.Appointment{
		appt("a1", "2025-09-13", "10:00", "11:00", entity.StatusCancelled),
		appt("a2", "2025-09-13", "10:00", "11:00", entity.StatusNoShow),
	}

	if got := ResolveSlot(timeparse.Clock{Hour: 10}, "2025-09-13", appts, nil); got != SlotAvailable {
		t.Fatalf("cancelled and no-show appointments must not block: got %s", got)
	}
}

func TestResolveSlotBlockingStatuses(t *testing.T) {
	for _, status := range []entity.Status{entity.StatusPending, entity.StatusConfirmed, entity.StatusCompleted} {
		appts := []entity.Appointment{appt("a1", "2025-09-13", "10:00", "10:30", status)}
		if got := ResolveSlot(timeparse.Clock{Hour: 10}, "2025-09-13", appts, nil); got != SlotBooked {
			t.Fatalf("status %s should block the slot, got %s", status, got)
		}
	}
}

func TestResolveSlotOtherDate(t *testing.T) {
	appts := []entity.Appointment{
		appt("a1", "2025-09-14", "10:00", "11:00", entity.StatusConfirmed),
	}
	if got := ResolveSlot(timeparse.Clock{Hour: 10}, "2025-09-13", appts, nil); got != SlotAvailable {
		t.Fatalf("appointment on another date must not block: got %s", got)
	}
}

func TestResolveSlotOutsideHours(t *testing.T) {
	window := &entity.DayAvailability{StartTime: "09:00", EndTime: "17:00"}

	cases := []struct {
		clock timeparse.Clock
		want  SlotState
	}{
		{timeparse.Clock{Hour: 8, Minute: 30}, SlotOutsideHours},
		{timeparse.Clock{Hour: 9}, SlotAvailable},
		{timeparse.Clock{Hour: 17}, SlotAvailable}, // window bounds are inclusive
		{timeparse.Clock{Hour: 17, Minute: 30}, SlotOutsideHours},
	}

	for _, tc := range cases {
		if got := ResolveSlot(tc.clock, "2025-09-13", nil, window); got != tc.want {
			t.Fatalf("ResolveSlot(%v) = %s, want %s", tc.clock, got, tc.want)
		}
	}
}

// A booked appointment takes precedence over the remote working window.
func TestResolveSlotPrecedence(t *testing.T) {
	appts := []entity.Appointment{
		appt("a1", "2025-09-13", "08:00", "09:00", entity.StatusConfirmed),
	}
	window := &entity.DayAvailability{StartTime: "09:00", EndTime: "17:00"}

	if got := ResolveSlot(timeparse.Clock{Hour: 8}, "2025-09-13", appts, window); got != SlotBooked {
		t.Fatalf("booked must win over outside-hours, got %s", got)
	}
}

func TestIsSlotAvailable(t *testing.T) {
	appts := []entity.Appointment{
		appt("1", "2025-09-13", "09:00", "10:00", entity.StatusConfirmed),
	}

	if IsSlotAvailable(timeparse.Clock{Hour: 9, Minute: 30}, "2025-09-13", appts, nil) {
		t.Fatal("9:30 should be booked")
	}
	if !IsSlotAvailable(timeparse.Clock{Hour: 10}, "2025-09-13", appts, nil) {
		t.Fatal("10:00 should be available")
	}
}
