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

type AppointmentHandler struct {
	scheduleUsecase usecase.ScheduleUsecase
	validator       *validator.CustomValidator
}

func NewAppointmentHandler(scheduleUsecase usecase.ScheduleUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		scheduleUsecase: scheduleUsecase,
		validator:       validator,
	}
}

// Advance moves an appointment one step along the forward status chain.
func (h *AppointmentHandler) Advance(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	appt, err := h.scheduleUsecase.Advance(r.Context(), vars["id"])
	if err != nil {
		h.writeTransitionError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment status advanced successfully", appt)
}

// SetStatus applies an explicit status, used for cancel and no-show.
func (h *AppointmentHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req dto.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	status, ok := entity.ParseStatus(req.Status)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Unknown status "+req.Status, nil)
		return
	}

	appt, err := h.scheduleUsecase.SetStatus(r.Context(), vars["id"], status)
	if err != nil {
		h.writeTransitionError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment status updated successfully", appt)
}

func (h *AppointmentHandler) writeTransitionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		response.NotFound(w, "Appointment not found")
	case errors.Is(err, usecase.ErrTerminalStatus):
		response.Error(w, http.StatusConflict, "Appointment is in a terminal status", nil)
	case errors.Is(err, usecase.ErrIllegalTransition):
		response.Error(w, http.StatusConflict, "Illegal status transition", nil)
	case errors.Is(err, usecase.ErrUpdateInFlight):
		response.Error(w, http.StatusTooManyRequests, "Another status update is in flight", nil)
	default:
		response.Error(w, http.StatusBadGateway, "Failed to persist status update upstream", nil)
	}
}
