package dto

// Request DTOs

type RefreshScheduleRequest struct {
	StartDate string   `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string   `json:"end_date" validate:"required,datetime=2006-01-02"`
	Statuses  []string `json:"statuses" validate:"omitempty,dive,oneof=pending confirmed inprogress completed cancelled no_show"`
	PageSize  int      `json:"page_size" validate:"omitempty,min=1,max=500"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=cancelled no_show pending confirmed inprogress completed"`
}

type SetFilterRequest struct {
	Statuses []string `json:"statuses" validate:"omitempty,dive,oneof=pending confirmed inprogress completed cancelled no_show"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              string `json:"id"`
	ServiceName     string `json:"service_name"`
	ClientName      string `json:"client_name"`
	ClientImage     string `json:"client_image,omitempty"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	StartLabel      string `json:"start_label"`
	DurationMinutes int    `json:"duration_minutes"`
	Status          string `json:"status"`
	Price           string `json:"price"`
	Location        string `json:"location,omitempty"`
	Notes           string `json:"notes,omitempty"`
	Color           string `json:"color,omitempty"`
}

type SlotResponse struct {
	Hour   int    `json:"hour"`
	Minute int    `json:"minute"`
	Label  string `json:"label"`
	State  string `json:"state"`
}

type PlacementResponse struct {
	AppointmentID string `json:"appointment_id"`
	Top           int    `json:"top"`
	Height        int    `json:"height"`
	HasConflict   bool   `json:"has_conflict"`
}

type DayViewResponse struct {
	Date     string                `json:"date"`
	Stale    bool                  `json:"stale,omitempty"`
	Slots    []SlotResponse        `json:"slots"`
	Bookings []AppointmentResponse `json:"bookings"`
	Layout   []PlacementResponse   `json:"layout"`
}

type DaySummaryResponse struct {
	Date     string                `json:"date"`
	Bookings []AppointmentResponse `json:"bookings"`
}

type WeekViewResponse struct {
	Days []DaySummaryResponse `json:"days"`
}

type CalendarDayResponse struct {
	Date       string                `json:"date"`
	InMonth    bool                  `json:"in_month"`
	IsToday    bool                  `json:"is_today"`
	IsSelected bool                  `json:"is_selected"`
	Bookings   []AppointmentResponse `json:"bookings"`
}

type MonthViewResponse struct {
	Month string                `json:"month"`
	Days  []CalendarDayResponse `json:"days"`
}

type RefreshResponse struct {
	Total int  `json:"total"`
	Stale bool `json:"stale"`
}
