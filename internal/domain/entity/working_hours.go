package entity

import "time"

// BreakType categorizes a configured break within a working day
type BreakType string

const (
	BreakTypeLunch    BreakType = "lunch"
	BreakTypePersonal BreakType = "personal"
	BreakTypeMeeting  BreakType = "meeting"
	BreakTypeOther    BreakType = "other"
)

// Break is an advisory sub-interval within a working day. Breaks are display
// hints only; they do not block slot availability the way appointments do.
type Break struct {
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Title     string    `json:"title"`
	Type      BreakType `json:"type"`
	Color     string    `json:"color,omitempty"`
}

// WorkingHours is a provider's configured open window for one weekday.
type WorkingHours struct {
	IsAvailable bool    `json:"is_available"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Breaks      []Break `json:"breaks,omitempty"`
}

// WeekSchedule maps each weekday to its working hours.
type WeekSchedule map[time.Weekday]WorkingHours

// DefaultWeekSchedule is the fallback used when the remote schedule is
// unavailable: Monday to Friday 09:00-17:00, weekends closed.
func DefaultWeekSchedule() WeekSchedule {
	week := WeekSchedule{
		time.Saturday: {IsAvailable: false},
		time.Sunday:   {IsAvailable: false},
	}
	for day := time.Monday; day <= time.Friday; day++ {
		week[day] = WorkingHours{
			IsAvailable: true,
			StartTime:   "09:00",
			EndTime:     "17:00",
		}
	}
	return week
}

// DayAvailability is the optional per-date working window returned by the
// upstream availability endpoint. Absence means "assume available".
type DayAvailability struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
