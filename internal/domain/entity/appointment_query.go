package entity

// AppointmentQuery is a domain-level filter for fetching appointments from
// the upstream API. Used by the repository layer to avoid coupling with
// delivery DTOs.
type AppointmentQuery struct {
	StartDate string   // Format: YYYY-MM-DD
	EndDate   string   // Format: YYYY-MM-DD
	Statuses  []Status // Empty = all statuses
	PageSize  int      // 0 = upstream default
}
