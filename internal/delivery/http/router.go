package http

import (
	"context"
	"net/http"
	"time"

	"medical-api/internal/delivery/http/handler"
	"medical-api/internal/delivery/http/middleware"
	"medical-api/pkg/response"

	"github.com/gorilla/mux"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Router struct {
	router            *mux.Router
	doctorHandler     *handler.DoctorHandler
	patientHandler    *handler.PatientHandler
	requestMiddleware *middleware.RequestMiddleware
	corsMiddleware    *middleware.CORSMiddleware
	db                Pinger
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	requestMiddleware *middleware.RequestMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	db Pinger,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		doctorHandler:     doctorHandler,
		patientHandler:    patientHandler,
		requestMiddleware: requestMiddleware,
		corsMiddleware:    corsMiddleware,
		db:                db,
	}
}

// Setup registers every route. CORS wraps the whole router so preflight
// requests are answered before mux rejects their method.
func (r *Router) Setup() http.Handler {
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	r.mount(r.router)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	r.mount(api)

	r.router.Use(r.requestMiddleware.Handle)

	return r.corsMiddleware.Handle(r.router)
}

func (r *Router) mount(root *mux.Router) {
	doctors := root.PathPrefix("/Doctors").Subrouter()
	doctors.HandleFunc("/GetReport", r.doctorHandler.GetReport).Methods(http.MethodGet)
	doctors.HandleFunc("/GetById/{id}", r.doctorHandler.GetByID).Methods(http.MethodGet)
	doctors.HandleFunc("/Add", r.doctorHandler.Add).Methods(http.MethodPost)
	doctors.HandleFunc("/Edit", r.doctorHandler.Edit).Methods(http.MethodPut)
	doctors.HandleFunc("/DeleteById/{id}", r.doctorHandler.DeleteByID).Methods(http.MethodDelete)

	patients := root.PathPrefix("/Patients").Subrouter()
	patients.HandleFunc("/GetReport", r.patientHandler.GetReport).Methods(http.MethodGet)
	patients.HandleFunc("/GetById/{id}", r.patientHandler.GetByID).Methods(http.MethodGet)
	patients.HandleFunc("/Add", r.patientHandler.Add).Methods(http.MethodPost)
	patients.HandleFunc("/Edit", r.patientHandler.Edit).Methods(http.MethodPut)
	patients.HandleFunc("/DeleteById/{id}", r.patientHandler.DeleteByID).Methods(http.MethodDelete)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
	defer cancel()

	if err := r.db.PingContext(ctx); err != nil {
		response.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
