package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bookline-schedule/internal/domain/entity"
	domainRepo "bookline-schedule/internal/domain/repository"
	"bookline-schedule/internal/timeparse"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrUpstreamNotFound = errors.New("resource not found upstream")
	ErrUpstreamFailure  = errors.New("upstream request failed")
)

type upstreamScheduleRepository struct {
	client  *http.Client
	baseURL string
	apiKey  string
	log     *logrus.Logger
}

func NewUpstreamScheduleRepository(client *http.Client, baseURL, apiKey string, log *logrus.Logger) domainRepo.ScheduleRepository {
	return &upstreamScheduleRepository{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		log:     log,
	}
}

func (r *upstreamScheduleRepository) FetchAppointments(ctx context.Context, providerID string, query entity.AppointmentQuery) ([]entity.Appointment, error) {
	params := url.Values{}
	if query.StartDate != "" {
		params.Set("start_date", query.StartDate)
	}
	if query.EndDate != "" {
		params.Set("end_date", query.EndDate)
	}
	for _, s := range query.Statuses {
		params.Add("status", string(s))
	}
	if query.PageSize > 0 {
		params.Set("limit", strconv.Itoa(query.PageSize))
	}

	path := fmt.Sprintf("/providers/%s/appointments", url.PathEscape(providerID))
	var payloads []appointmentPayload
	if err := r.get(ctx, path, params, &payloads); err != nil {
		return nil, err
	}

	appointments := make([]entity.Appointment, 0, len(payloads))
	for i := range payloads {
		appointments = append(appointments, payloads[i].toEntity(r.log))
	}
	return appointments, nil
}

func (r *upstreamScheduleRepository) FetchWorkingSchedule(ctx context.Context, providerID string) (entity.WeekSchedule, error) {
	path := fmt.Sprintf("/providers/%s/schedule", url.PathEscape(providerID))
	var payloads []workingHoursPayload
	if err := r.get(ctx, path, nil, &payloads); err != nil {
		return nil, err
	}

	week := make(entity.WeekSchedule, len(payloads))
	for i := range payloads {
		day, hours, ok := payloads[i].toEntity()
		if !ok {
			r.log.Warnf("Failed to decode working hours entry %+v, skipping", payloads[i])
			continue
		}
		week[day] = hours
	}
	return week, nil
}

func (r *upstreamScheduleRepository) UpdateAppointmentStatus(ctx context.Context, appointmentID string, status entity.Status) error {
	path := fmt.Sprintf("/appointments/%s/status", url.PathEscape(appointmentID))
	body, err := json.Marshal(map[string]string{"status": string(status)})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, r.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	r.authorize(req)

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	return r.checkStatus(resp)
}

func (r *upstreamScheduleRepository) FetchProviderAvailability(ctx context.Context, providerID string, date string) (*entity.DayAvailability, error) {
	params := url.Values{}
	params.Set("date", date)

	path := fmt.Sprintf("/providers/%s/availability", url.PathEscape(providerID))
	var payload availabilityPayload
	err := r.get(ctx, path, params, &payload)
	if err != nil {
		// The availability endpoint is optional; its absence means
		// "assume available", never a hard failure.
		if errors.Is(err, ErrUpstreamNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return payload.toEntity(), nil
}

// get performs a GET and decodes the envelope's data field into out.
func (r *upstreamScheduleRepository) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	endpoint := r.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	r.authorize(req)

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	if err := r.checkStatus(resp); err != nil {
		return err
	}

	var envelope struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrUpstreamFailure, err)
	}
	if len(envelope.Data) == 0 {
		return nil
	}
	return json.Unmarshal(envelope.Data, out)
}

func (r *upstreamScheduleRepository) authorize(req *http.Request) {
	if r.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+r.apiKey)
	}
}

func (r *upstreamScheduleRepository) checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return ErrUpstreamNotFound
	default:
		return fmt.Errorf("%w: status %d", ErrUpstreamFailure, resp.StatusCode)
	}
}

// appointmentPayload mirrors the upstream appointment shape, which varies
// across endpoints. Every known field alias lives here; toEntity is the one
// place that resolves them into the canonical Appointment.
type appointmentPayload struct {
	ID        string `json:"id"`
	BookingID string `json:"bookingId"`

	ServiceName string `json:"serviceName"`
	Service     string `json:"service"`

	ClientName   string `json:"clientName"`
	CustomerName string `json:"customerName"`
	ClientImage  string `json:"clientImage"`

	BookingDate     string `json:"bookingDate"`
	AppointmentDate string `json:"appointmentDate"`
	Date            string `json:"date"`

	StartTime string `json:"startTime"`
	Time      string `json:"time"`
	EndTime   string `json:"endTime"`
	Duration  int    `json:"duration"`

	// Status arrives as a string on some endpoints and a numeric code on
	// others.
	Status json.RawMessage `json:"status"`

	// Price arrives as a bare number or a quoted string depending on the
	// endpoint.
	Price    json.RawMessage `json:"price"`
	Location string          `json:"location"`
	Notes    string          `json:"notes"`
	Color    string          `json:"color"`
}

func (p *appointmentPayload) toEntity(log *logrus.Logger) entity.Appointment {
	start := timeparse.NormalizeClock(firstNonEmpty(p.StartTime, p.Time))

	// Some endpoints omit the end time but carry a duration; derive one so
	// the layout engine always has a real range.
	end := start
	if p.EndTime != "" {
		end = timeparse.NormalizeClock(p.EndTime)
	} else if p.Duration > 0 {
		m := start.Minutes() + p.Duration
		end = timeparse.Clock{Hour: m / 60 % 24, Minute: m % 60}
	}

	appt := entity.Appointment{
		ID:              firstNonEmpty(p.ID, p.BookingID),
		ServiceName:     firstNonEmpty(p.ServiceName, p.Service),
		ClientName:      firstNonEmpty(p.ClientName, p.CustomerName),
		ClientImage:     p.ClientImage,
		Date:            timeparse.NormalizeDate(firstNonEmpty(p.BookingDate, p.AppointmentDate, p.Date)),
		StartTime:       start.String(),
		EndTime:         end.String(),
		DurationMinutes: p.Duration,
		Status:          decodeStatus(p.Status, log),
		Location:        p.Location,
		Notes:           p.Notes,
		Color:           p.Color,
	}

	if len(p.Price) > 0 {
		raw := strings.Trim(string(p.Price), `"`)
		price, err := decimal.NewFromString(raw)
		if err != nil {
			log.Warnf("Failed to parse price %q for appointment %s: %+v", raw, appt.ID, err)
		} else {
			appt.Price = price
		}
	}

	if appt.DurationMinutes == 0 {
		appt.DurationMinutes = appt.Duration()
	}

	return appt
}

// decodeStatus handles both upstream status encodings. Undecodable input
// defaults to pending so the record stays visible rather than disappearing.
func decodeStatus(raw json.RawMessage, log *logrus.Logger) entity.Status {
	if len(raw) == 0 {
		return entity.StatusPending
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if status, ok := entity.ParseStatus(asString); ok {
			return status
		}
		log.Warnf("Unknown appointment status %q, defaulting to pending", asString)
		return entity.StatusPending
	}

	var asCode int
	if err := json.Unmarshal(raw, &asCode); err == nil {
		if status, ok := entity.StatusFromCode(asCode); ok {
			return status
		}
	}

	log.Warnf("Undecodable appointment status %s, defaulting to pending", string(raw))
	return entity.StatusPending
}

type workingHoursPayload struct {
	DayOfWeek   string         `json:"dayOfWeek"`
	Day         string         `json:"day"`
	IsAvailable bool           `json:"isAvailable"`
	StartTime   string         `json:"startTime"`
	EndTime     string         `json:"endTime"`
	Breaks      []breakPayload `json:"breaks"`
}

func (p *workingHoursPayload) toEntity() (time.Weekday, entity.WorkingHours, bool) {
	day, ok := parseWeekday(firstNonEmpty(p.DayOfWeek, p.Day))
	if !ok {
		return 0, entity.WorkingHours{}, false
	}

	hours := entity.WorkingHours{
		IsAvailable: p.IsAvailable,
		StartTime:   p.StartTime,
		EndTime:     p.EndTime,
	}
	for _, b := range p.Breaks {
		hours.Breaks = append(hours.Breaks, b.toEntity())
	}
	return day, hours, true
}

type breakPayload struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Color     string `json:"color"`
}

func (p *breakPayload) toEntity() entity.Break {
	breakType := entity.BreakType(strings.ToLower(p.Type))
	switch breakType {
	case entity.BreakTypeLunch, entity.BreakTypePersonal, entity.BreakTypeMeeting:
	default:
		breakType = entity.BreakTypeOther
	}
	return entity.Break{
		StartTime: p.StartTime,
		EndTime:   p.EndTime,
		Title:     p.Title,
		Type:      breakType,
		Color:     p.Color,
	}
}

type availabilityPayload struct {
	WorkingHours *struct {
		Start string `json:"start"`
		End   string `json:"end"`
	} `json:"workingHours"`
}

func (p *availabilityPayload) toEntity() *entity.DayAvailability {
	if p.WorkingHours == nil {
		return nil
	}
	return &entity.DayAvailability{
		StartTime: p.WorkingHours.Start,
		EndTime:   p.WorkingHours.End,
	}
}

func parseWeekday(s string) (time.Weekday, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sunday", "sun":
		return time.Sunday, true
	case "monday", "mon":
		return time.Monday, true
	case "tuesday", "tue":
		return time.Tuesday, true
	case "wednesday", "wed":
		return time.Wednesday, true
	case "thursday", "thu":
		return time.Thursday, true
	case "friday", "fri":
		return time.Friday, true
	case "saturday", "sat":
		return time.Saturday, true
	}
	return 0, false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
