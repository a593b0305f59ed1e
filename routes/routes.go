package routes

import (
	"net/http"
	"time"

	"ClinicAdmin/config"
	"ClinicAdmin/controllers"
	"ClinicAdmin/handlers"
	"ClinicAdmin/locks"
	"ClinicAdmin/metrics"
	"ClinicAdmin/middlewares"
	"ClinicAdmin/repositories"
	"ClinicAdmin/services"
	"ClinicAdmin/views"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Dependencies are the shared resources the router is built from.
type Dependencies struct {
	Config   *config.AppConfig
	DB       *gorm.DB
	Locks    *locks.Manager
	Metrics  *metrics.Collector
	Log      *zap.Logger
	Location *time.Location
	Now      services.Clock
}

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(deps Dependencies) (http.Handler, error) {
	if deps.Now == nil {
		deps.Now = time.Now
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.Tracing())
	router.Use(middlewares.RequestLogger(deps.Log))
	router.Use(middlewares.Metrics(deps.Metrics))
	router.Use(middlewares.CorsMiddleware(middlewares.DefaultCorsConfig(deps.Config.CORSAllowedOrigins)))
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: deps.Config.RateLimitRPS,
		Burst:             deps.Config.RateLimitBurst,
	}))

	tmpl, err := views.Load(deps.Location)
	if err != nil {
		return nil, errors.Wrap(err, "loading templates")
	}
	router.SetHTMLTemplate(tmpl)

	// Initialize repositories, services, and handlers
	patientRepo := repositories.NewPatientRepository(deps.DB, deps.Locks)
	doctorRepo := repositories.NewDoctorRepository(deps.DB)
	appointmentRepo := repositories.NewAppointmentRepository(deps.DB, deps.Locks)
	billingRepo := repositories.NewBillingRepository(deps.DB, deps.Locks)
	medicationRepo := repositories.NewMedicationRepository(deps.DB, deps.Locks)
	roomRepo := repositories.NewRoomRepository(deps.DB, deps.Locks)

	h := controllers.ClinicHandlers{
		Patients: handlers.NewPatientHandler(
			services.NewPatientService(patientRepo, deps.Metrics), deps.Log),
		Appointments: handlers.NewAppointmentHandler(
			services.NewAppointmentService(appointmentRepo, patientRepo, doctorRepo, deps.Metrics, deps.Location), deps.Log),
		Billing: handlers.NewBillingHandler(
			services.NewBillingService(billingRepo, appointmentRepo, deps.Metrics, deps.Location, deps.Now), deps.Log),
		Medications: handlers.NewMedicationHandler(
			services.NewMedicationService(medicationRepo, appointmentRepo, deps.Metrics), deps.Log),
		Rooms: handlers.NewRoomHandler(
			services.NewRoomService(roomRepo, appointmentRepo, deps.Metrics), deps.Log),
		Search: handlers.NewSearchHandler(
			services.NewSearchService(repositories.NewSearchRepository(deps.DB), deps.Location), deps.Log),
		Dashboard: handlers.NewDashboardHandler(
			services.NewDashboardService(repositories.NewDashboardRepository(deps.DB), deps.Location, deps.Now), deps.Log),
	}

	// Register routes
	controllers.SetupClinicRoutes(router, h)
	controllers.SetupRootRoute(router, handlers.NewHomeHandler(deps.DB, deps.Log), deps.Metrics.Handler())

	return router, nil
}
