package schedule

import (
	"sort"

	"bookline-schedule/internal/domain/entity"
)

// Placement is the vertical position of one appointment within a day grid,
// used purely for rendering. Conflict flags carry no side effects on the
// underlying data.
type Placement struct {
	AppointmentID string
	Top           int
	Height        int
	HasConflict   bool
}

// LayoutDay assigns each appointment a (top, height) pair within the slot
// grid and flags overlaps. Appointments are processed in ascending top order;
// the first appointment to claim a slot range wins it, later overlapping ones
// are flagged. The result is sorted by top, then by appointment ID for a
// stable tie order.
func LayoutDay(appointments []entity.Appointment, grid []entity.TimeSlot, slotHeight int) []Placement {
	if len(appointments) == 0 || slotHeight <= 0 {
		return nil
	}

	placements := make([]Placement, 0, len(appointments))
	for i := range appointments {
		appt := &appointments[i]
		index := slotIndexFor(appt, grid)

		height := appt.Duration() * slotHeight / SlotIntervalMinutes
		if height < slotHeight {
			height = slotHeight
		}

		placements = append(placements, Placement{
			AppointmentID: appt.ID,
			Top:           index * slotHeight,
			Height:        height,
		})
	}

	sort.SliceStable(placements, func(i, j int) bool {
		if placements[i].Top != placements[j].Top {
			return placements[i].Top < placements[j].Top
		}
		return placements[i].AppointmentID < placements[j].AppointmentID
	})

	occupied := make(map[int]bool)
	for i := range placements {
		p := &placements[i]
		first := p.Top / slotHeight
		last := (p.Top + p.Height) / slotHeight

		conflict := false
		for s := first; s <= last; s++ {
			if occupied[s] {
				conflict = true
				break
			}
		}
		if conflict {
			p.HasConflict = true
			continue
		}
		for s := first; s <= last; s++ {
			occupied[s] = true
		}
	}

	return placements
}

// slotIndexFor finds the grid index for an appointment's start time: an exact
// (hour, minute) match when the appointment is on the 30-minute grid,
// otherwise the nearest slot at or before it, clamped to 0.
func slotIndexFor(appt *entity.Appointment, grid []entity.TimeSlot) int {
	start := appt.StartClock()

	nearest := -1
	for i, slot := range grid {
		if slot.Hour == start.Hour && slot.Minute == start.Minute {
			return i
		}
		if slot.Clock().Minutes() <= start.Minutes() {
			nearest = i
		}
	}
	if nearest >= 0 {
		return nearest
	}
	return 0
}
