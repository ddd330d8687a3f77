package http

import (
	"net/http"

	"github.com/MatheusScaranello/AgendaProBack/internal/delivery/http/handler"
	"github.com/MatheusScaranello/AgendaProBack/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	appointmentHandler  *handler.AppointmentHandler
	cancellationHandler *handler.CancellationHandler
	waitlistHandler     *handler.WaitlistHandler
	clientHandler       *handler.ClientHandler
	serviceHandler      *handler.ServiceHandler
	professionalHandler *handler.ProfessionalHandler
	absenceHandler      *handler.AbsenceHandler
	assetHandler        *handler.AssetHandler
	saleHandler         *handler.SaleHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	cancellationHandler *handler.CancellationHandler,
	waitlistHandler *handler.WaitlistHandler,
	clientHandler *handler.ClientHandler,
	serviceHandler *handler.ServiceHandler,
	professionalHandler *handler.ProfessionalHandler,
	absenceHandler *handler.AbsenceHandler,
	assetHandler *handler.AssetHandler,
	saleHandler *handler.SaleHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		appointmentHandler:  appointmentHandler,
		cancellationHandler: cancellationHandler,
		waitlistHandler:     waitlistHandler,
		clientHandler:       clientHandler,
		serviceHandler:      serviceHandler,
		professionalHandler: professionalHandler,
		absenceHandler:      absenceHandler,
		assetHandler:        assetHandler,
		saleHandler:         saleHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

// Setup registers all routes. The scheduling paths are consumed by existing
// frontends and keep their original shapes, including the Portuguese waitlist
// path.
func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := r.router.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Everything else requires an authenticated establishment
	protected := r.router.PathPrefix("/").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/auth/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Appointments
	protected.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)
	protected.HandleFunc("/appointments/{id}/status", r.appointmentHandler.UpdateAppointmentStatus).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{id}/reschedule", r.appointmentHandler.RescheduleAppointment).Methods(http.MethodPost)

	// Cancellations and policy
	protected.HandleFunc("/cancellations", r.cancellationHandler.CreateCancellation).Methods(http.MethodPost)
	protected.HandleFunc("/cancellations", r.cancellationHandler.ListCancellations).Methods(http.MethodGet)
	protected.HandleFunc("/cancellation-policy", r.cancellationHandler.UpsertPolicy).Methods(http.MethodPut)
	protected.HandleFunc("/cancellation-policy", r.cancellationHandler.GetPolicy).Methods(http.MethodGet)

	// Waitlist
	protected.HandleFunc("/fila-espera", r.waitlistHandler.JoinWaitlist).Methods(http.MethodPost)
	protected.HandleFunc("/fila-espera/preencher", r.waitlistHandler.FillSlot).Methods(http.MethodPost)

	// Clients
	protected.HandleFunc("/clients", r.clientHandler.CreateClient).Methods(http.MethodPost)
	protected.HandleFunc("/clients", r.clientHandler.ListClients).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{id}", r.clientHandler.GetClient).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{id}", r.clientHandler.UpdateClient).Methods(http.MethodPut)
	protected.HandleFunc("/clients/{id}", r.clientHandler.DeleteClient).Methods(http.MethodDelete)

	// Services
	protected.HandleFunc("/services", r.serviceHandler.CreateService).Methods(http.MethodPost)
	protected.HandleFunc("/services", r.serviceHandler.ListServices).Methods(http.MethodGet)
	protected.HandleFunc("/services/{id}", r.serviceHandler.GetService).Methods(http.MethodGet)
	protected.HandleFunc("/services/{id}", r.serviceHandler.UpdateService).Methods(http.MethodPut)
	protected.HandleFunc("/services/{id}", r.serviceHandler.DeleteService).Methods(http.MethodDelete)

	// Professionals
	protected.HandleFunc("/professionals", r.professionalHandler.CreateProfessional).Methods(http.MethodPost)
	protected.HandleFunc("/professionals", r.professionalHandler.ListProfessionals).Methods(http.MethodGet)
	protected.HandleFunc("/professionals/{id}", r.professionalHandler.GetProfessional).Methods(http.MethodGet)
	protected.HandleFunc("/professionals/{id}", r.professionalHandler.UpdateProfessional).Methods(http.MethodPut)
	protected.HandleFunc("/professionals/{id}", r.professionalHandler.DeleteProfessional).Methods(http.MethodDelete)

	// Professional absences
	protected.HandleFunc("/professionals/{professional_id}/absences", r.absenceHandler.CreateAbsence).Methods(http.MethodPost)
	protected.HandleFunc("/professionals/{professional_id}/absences", r.absenceHandler.ListAbsences).Methods(http.MethodGet)
	protected.HandleFunc("/absences/{id}", r.absenceHandler.UpdateAbsence).Methods(http.MethodPut)
	protected.HandleFunc("/absences/{id}", r.absenceHandler.DeleteAbsence).Methods(http.MethodDelete)

	// Assets
	protected.HandleFunc("/assets", r.assetHandler.CreateAsset).Methods(http.MethodPost)
	protected.HandleFunc("/assets", r.assetHandler.ListAssets).Methods(http.MethodGet)
	protected.HandleFunc("/assets/{id}", r.assetHandler.GetAsset).Methods(http.MethodGet)
	protected.HandleFunc("/assets/{id}", r.assetHandler.UpdateAsset).Methods(http.MethodPut)
	protected.HandleFunc("/assets/{id}", r.assetHandler.DeleteAsset).Methods(http.MethodDelete)

	// Sales ledger (read-only)
	protected.HandleFunc("/sales", r.saleHandler.ListSales).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
