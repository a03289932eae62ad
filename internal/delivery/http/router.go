package http

import (
	"net/http"

	"bookline-schedule/internal/delivery/http/handler"
	"bookline-schedule/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	scheduleHandler    *handler.ScheduleHandler
	appointmentHandler *handler.AppointmentHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	scheduleHandler *handler.ScheduleHandler,
	appointmentHandler *handler.AppointmentHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		scheduleHandler:    scheduleHandler,
		appointmentHandler: appointmentHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check (public)
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Schedule views (protected)
	schedule := api.PathPrefix("/schedule").Subrouter()
	schedule.Use(r.authMiddleware.Authenticate)
	schedule.HandleFunc("/refresh", r.scheduleHandler.Refresh).Methods(http.MethodPost)
	schedule.HandleFunc("/filter", r.scheduleHandler.SetFilter).Methods(http.MethodPut)
	schedule.HandleFunc("/slots/{date}", r.scheduleHandler.Slots).Methods(http.MethodGet)
	schedule.HandleFunc("/day/{date}", r.scheduleHandler.DayView).Methods(http.MethodGet)
	schedule.HandleFunc("/week/{date}", r.scheduleHandler.WeekView).Methods(http.MethodGet)
	schedule.HandleFunc("/month/{date}", r.scheduleHandler.MonthView).Methods(http.MethodGet)

	// Appointment status transitions (protected)
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.HandleFunc("/{id}/advance", r.appointmentHandler.Advance).Methods(http.MethodPost)
	appointments.HandleFunc("/{id}/status", r.appointmentHandler.SetStatus).Methods(http.MethodPatch)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
