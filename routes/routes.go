package routes

import (
	"MediPlus/cache"
	"MediPlus/config"
	"MediPlus/controllers"
	"MediPlus/handlers"
	"MediPlus/middlewares"
	"MediPlus/repositories"
	"MediPlus/services"
	"MediPlus/storage"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB, media storage.MediaStore) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// The public submission endpoints get their own, tighter limiter.
	submissionLimiter := middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 2,
		Burst:             5,
	})

	// Initialize repositories, services, and handlers
	doctorRepo := repositories.NewDoctorRepository(cache)
	appointmentRepo := repositories.NewAppointmentRepository(cache)
	contactRepo := repositories.NewContactRepository(cache)
	testimonialRepo := repositories.NewTestimonialRepository(cache)
	userRepo := repositories.NewUserRepository(db)

	bookingService := services.NewBookingService(appointmentRepo, doctorRepo)
	appointmentService := services.NewAppointmentService(appointmentRepo)
	contactService := services.NewContactService(contactRepo)
	doctorService := services.NewDoctorService(doctorRepo, media)
	testimonialService := services.NewTestimonialService(testimonialRepo, media)
	authService := services.NewAuthService(userRepo, config.AdminEmailDomain, config.AdminEmail)

	bookingHandler := handlers.NewBookingHandler(bookingService, doctorService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	contactHandler := handlers.NewContactHandler(contactService)
	doctorHandler := handlers.NewDoctorHandler(doctorService)
	testimonialHandler := handlers.NewTestimonialHandler(testimonialService)
	authHandler := handlers.NewAuthHandler(authService)

	// Register routes
	controllers.SetupPublicRoutes(router, submissionLimiter, bookingHandler, contactHandler, testimonialHandler)

	adminAuth := middlewares.AdminAuthMiddleware(config.AdminEmailDomain, config.AdminEmail)
	controllers.SetupAdminRoutes(router, adminAuth, doctorHandler, appointmentHandler, contactHandler, testimonialHandler)

	authController := controllers.NewAuthController(authHandler)
	authController.RegisterRoutes(router)

	controllers.SetupRootRoute(router)

	return router
}
