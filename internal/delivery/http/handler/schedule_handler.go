package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookline-schedule/internal/delivery/dto"
	"bookline-schedule/internal/domain/entity"
	"bookline-schedule/internal/usecase"
	"bookline-schedule/pkg/response"
	"bookline-schedule/pkg/validator"

	"github.com/gorilla/mux"
)

type ScheduleHandler struct {
	scheduleUsecase usecase.ScheduleUsecase
	validator       *validator.CustomValidator
}

func NewScheduleHandler(scheduleUsecase usecase.ScheduleUsecase, validator *validator.CustomValidator) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUsecase: scheduleUsecase,
		validator:       validator,
	}
}

func (h *ScheduleHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	query := entity.AppointmentQuery{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		PageSize:  req.PageSize,
	}
	for _, s := range req.Statuses {
		status, ok := entity.ParseStatus(s)
		if !ok {
			response.Error(w, http.StatusBadRequest, "Unknown status "+s, nil)
			return
		}
		query.Statuses = append(query.Statuses, status)
	}

	result, err := h.scheduleUsecase.Refresh(r.Context(), query)
	if err != nil {
		response.Error(w, http.StatusBadGateway, "Failed to refresh schedule from upstream", nil)
		return
	}

	response.Success(w, http.StatusOK, "Schedule refreshed successfully", result)
}

func (h *ScheduleHandler) DayView(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	view, err := h.scheduleUsecase.DayView(r.Context(), vars["date"])
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidViewDate) {
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
			return
		}
		response.InternalServerError(w, "Failed to build day view")
		return
	}

	response.Success(w, http.StatusOK, "Day view retrieved successfully", view)
}

func (h *ScheduleHandler) WeekView(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	view, err := h.scheduleUsecase.WeekView(r.Context(), vars["date"])
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidViewDate) {
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
			return
		}
		response.InternalServerError(w, "Failed to build week view")
		return
	}

	response.Success(w, http.StatusOK, "Week view retrieved successfully", view)
}

func (h *ScheduleHandler) MonthView(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	view, err := h.scheduleUsecase.MonthView(r.Context(), vars["date"])
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidViewDate) {
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
			return
		}
		response.InternalServerError(w, "Failed to build month view")
		return
	}

	response.Success(w, http.StatusOK, "Month view retrieved successfully", view)
}

// Slots returns just the slot grid with availability states, without the
// booking list and layout the full day view carries.
func (h *ScheduleHandler) Slots(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	view, err := h.scheduleUsecase.DayView(r.Context(), vars["date"])
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidViewDate) {
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
			return
		}
		response.InternalServerError(w, "Failed to build slot grid")
		return
	}

	response.Success(w, http.StatusOK, "Slot grid retrieved successfully", view.Slots)
}

func (h *ScheduleHandler) SetFilter(w http.ResponseWriter, r *http.Request) {
	var req dto.SetFilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	statuses := make([]entity.Status, 0, len(req.Statuses))
	for _, s := range req.Statuses {
		status, ok := entity.ParseStatus(s)
		if !ok {
			response.Error(w, http.StatusBadRequest, "Unknown status "+s, nil)
			return
		}
		statuses = append(statuses, status)
	}

	h.scheduleUsecase.SetFilter(statuses)
	response.Success(w, http.StatusOK, "Filter updated successfully", nil)
}
