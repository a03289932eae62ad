package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"bookline-schedule/internal/converter"
	"bookline-schedule/internal/delivery/dto"
	"bookline-schedule/internal/domain/entity"
	"bookline-schedule/internal/domain/repository"
	"bookline-schedule/internal/infrastructure/cache"
	"bookline-schedule/internal/schedule"
	"bookline-schedule/internal/timeparse"

	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrTerminalStatus      = errors.New("appointment is in a terminal status")
	ErrIllegalTransition   = errors.New("illegal status transition")
	ErrUpdateInFlight      = errors.New("another status update is in flight")
	ErrInvalidViewDate     = errors.New("invalid date format, use YYYY-MM-DD")
)

type ScheduleUsecase interface {
	Refresh(ctx context.Context, query entity.AppointmentQuery) (*dto.RefreshResponse, error)
	DayView(ctx context.Context, date string) (*dto.DayViewResponse, error)
	WeekView(ctx context.Context, anchor string) (*dto.WeekViewResponse, error)
	MonthView(ctx context.Context, anchor string) (*dto.MonthViewResponse, error)
	Advance(ctx context.Context, appointmentID string) (*dto.AppointmentResponse, error)
	SetStatus(ctx context.Context, appointmentID string, status entity.Status) (*dto.AppointmentResponse, error)
	SetFilter(statuses []entity.Status)
}

type scheduleUsecase struct {
	log        *logrus.Logger
	repo       repository.ScheduleRepository
	cache      *cache.ScheduleCache
	providerID string
	optimistic bool
	slotHeight int
	now        func() time.Time

	// mu guards everything below. The appointment list is the only shared
	// mutable resource; it changes only through a refresh replace or a
	// completed status transition.
	mu           sync.Mutex
	appointments []entity.Appointment
	week         entity.WeekSchedule
	filter       entity.StatusFilter
	stale        bool
	inFlight     bool
}

func NewScheduleUsecase(
	log *logrus.Logger,
	repo repository.ScheduleRepository,
	scheduleCache *cache.ScheduleCache,
	providerID string,
	optimistic bool,
	slotHeight int,
) ScheduleUsecase {
	return &scheduleUsecase{
		log:        log,
		repo:       repo,
		cache:      scheduleCache,
		providerID: providerID,
		optimistic: optimistic,
		slotHeight: slotHeight,
		now:        time.Now,
		week:       entity.DefaultWeekSchedule(),
	}
}

// Refresh fetches the appointment list and working schedule and replaces the
// held state. On upstream failure it falls back to the cached last-good list;
// only when both fail does the previous in-memory list survive untouched.
func (u *scheduleUsecase) Refresh(ctx context.Context, query entity.AppointmentQuery) (*dto.RefreshResponse, error) {
	appointments, err := u.repo.FetchAppointments(ctx, u.providerID, query)
	stale := false
	if err != nil {
		u.log.Warnf("Failed to fetch appointments, trying cache: %+v", err)

		cached, cacheErr := u.cache.LoadAppointments(ctx, u.providerID, query)
		if cacheErr != nil {
			u.log.Warnf("Failed to read schedule cache: %+v", cacheErr)
		}
		if cached == nil {
			return nil, err
		}
		appointments = cached
		stale = true
	} else {
		if cacheErr := u.cache.StoreAppointments(ctx, u.providerID, query, appointments); cacheErr != nil {
			u.log.Warnf("Failed to write schedule cache: %+v", cacheErr)
		}
	}

	week, err := u.repo.FetchWorkingSchedule(ctx, u.providerID)
	if err != nil || len(week) == 0 {
		if err != nil {
			u.log.Warnf("Failed to fetch working schedule, keeping defaults: %+v", err)
		}
		week = nil
	}

	u.mu.Lock()
	u.appointments = appointments
	u.stale = stale
	if week != nil {
		u.week = week
	}
	u.mu.Unlock()

	return &dto.RefreshResponse{
		Total: len(appointments),
		Stale: stale,
	}, nil
}

func (u *scheduleUsecase) DayView(ctx context.Context, date string) (*dto.DayViewResponse, error) {
	day, err := timeparse.ParseDate(date)
	if err != nil {
		return nil, ErrInvalidViewDate
	}
	canonical := day.Format("2006-01-02")

	// Best effort; nil window means assume available.
	window, err := u.repo.FetchProviderAvailability(ctx, u.providerID, canonical)
	if err != nil {
		u.log.Warnf("Failed to fetch provider availability for %s: %+v", canonical, err)
		window = nil
	}

	u.mu.Lock()
	appointments := u.snapshotLocked()
	week := u.week
	filter := u.filter
	stale := u.stale
	u.mu.Unlock()

	slots := schedule.SlotsForDay(day, week, u.now())
	bookings := schedule.BookingsForDate(appointments, canonical, filter)
	placements := schedule.LayoutDay(bookings, slots, u.slotHeight)

	slotResponses := make([]dto.SlotResponse, len(slots))
	for i, slot := range slots {
		state := schedule.ResolveSlot(slot.Clock(), canonical, appointments, window)
		slotResponses[i] = converter.SlotToResponse(slot, state)
	}

	return &dto.DayViewResponse{
		Date:     canonical,
		Stale:    stale,
		Slots:    slotResponses,
		Bookings: converter.AppointmentsToResponses(bookings),
		Layout:   converter.PlacementsToResponses(placements),
	}, nil
}

func (u *scheduleUsecase) WeekView(ctx context.Context, anchor string) (*dto.WeekViewResponse, error) {
	day, err := timeparse.ParseDate(anchor)
	if err != nil {
		return nil, ErrInvalidViewDate
	}

	u.mu.Lock()
	appointments := u.snapshotLocked()
	filter := u.filter
	u.mu.Unlock()

	dates := schedule.WeekDates(day)
	days := make([]dto.DaySummaryResponse, len(dates))
	for i, date := range dates {
		canonical := date.Format("2006-01-02")
		days[i] = dto.DaySummaryResponse{
			Date:     canonical,
			Bookings: converter.AppointmentsToResponses(schedule.BookingsForDate(appointments, canonical, filter)),
		}
	}

	return &dto.WeekViewResponse{Days: days}, nil
}

func (u *scheduleUsecase) MonthView(ctx context.Context, anchor string) (*dto.MonthViewResponse, error) {
	day, err := timeparse.ParseDate(anchor)
	if err != nil {
		return nil, ErrInvalidViewDate
	}

	u.mu.Lock()
	appointments := u.snapshotLocked()
	filter := u.filter
	u.mu.Unlock()

	cells := schedule.CalendarDays(day, appointments, filter, day, u.now())
	days := make([]dto.CalendarDayResponse, len(cells))
	for i, cell := range cells {
		days[i] = converter.CalendarDayToResponse(cell)
	}

	return &dto.MonthViewResponse{
		Month: day.Format("2006-01"),
		Days:  days,
	}, nil
}

// Advance moves an appointment along the forward chain: pending -> confirmed
// -> inprogress -> completed. Terminal statuses have no next step.
func (u *scheduleUsecase) Advance(ctx context.Context, appointmentID string) (*dto.AppointmentResponse, error) {
	u.mu.Lock()
	appt := u.findLocked(appointmentID)
	if appt == nil {
		u.mu.Unlock()
		return nil, ErrAppointmentNotFound
	}
	next, ok := appt.Status.Next()
	if !ok {
		u.mu.Unlock()
		return nil, ErrTerminalStatus
	}
	return u.transitionLocked(ctx, appt, next)
}

// SetStatus applies an explicit transition, used for the exceptional paths
// (cancel, no-show). Terminal states reject everything.
func (u *scheduleUsecase) SetStatus(ctx context.Context, appointmentID string, status entity.Status) (*dto.AppointmentResponse, error) {
	u.mu.Lock()
	appt := u.findLocked(appointmentID)
	if appt == nil {
		u.mu.Unlock()
		return nil, ErrAppointmentNotFound
	}
	if appt.Status.IsTerminal() {
		u.mu.Unlock()
		return nil, ErrTerminalStatus
	}
	if !appt.Status.CanTransitionTo(status) {
		u.mu.Unlock()
		return nil, ErrIllegalTransition
	}
	return u.transitionLocked(ctx, appt, status)
}

// transitionLocked performs the remote update with the single-flight guard.
// Called with mu held after validation; releases mu around the network call
// so reads never block on upstream latency. Concurrent updates are rejected,
// not queued, to avoid interleaved writes racing on the same record.
func (u *scheduleUsecase) transitionLocked(ctx context.Context, appt *entity.Appointment, target entity.Status) (*dto.AppointmentResponse, error) {
	if u.inFlight {
		u.mu.Unlock()
		return nil, ErrUpdateInFlight
	}
	u.inFlight = true

	id := appt.ID
	previous := appt.Status
	if u.optimistic {
		appt.Status = target
	}
	u.mu.Unlock()

	err := u.repo.UpdateAppointmentStatus(ctx, id, target)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.inFlight = false

	// The list may have been replaced by a refresh while the call was out.
	current := u.findLocked(id)

	if err != nil {
		u.log.Warnf("Failed to update status of appointment %s to %s: %+v", id, target, err)
		if u.optimistic && current != nil && current.Status == target {
			current.Status = previous
		}
		return nil, err
	}

	if current == nil {
		return nil, ErrAppointmentNotFound
	}
	current.Status = target
	return converter.AppointmentToResponse(current), nil
}

// SetFilter replaces the visible-status set. An empty list shows everything.
func (u *scheduleUsecase) SetFilter(statuses []entity.Status) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.filter = entity.NewStatusFilter(statuses...)
}

// snapshotLocked copies the list so view computation runs on an immutable
// slice after mu is released.
func (u *scheduleUsecase) snapshotLocked() []entity.Appointment {
	snapshot := make([]entity.Appointment, len(u.appointments))
	copy(snapshot, u.appointments)
	return snapshot
}

func (u *scheduleUsecase) findLocked(id string) *entity.Appointment {
	for i := range u.appointments {
		if u.appointments[i].ID == id {
			return &u.appointments[i]
		}
	}
	return nil
}
