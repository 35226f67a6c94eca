package routes

import (
	"hospital-portal-gateway/internal/config"
	"hospital-portal-gateway/internal/handlers"
	"hospital-portal-gateway/internal/middleware"
	"hospital-portal-gateway/internal/models"
	"hospital-portal-gateway/internal/session"
	"hospital-portal-gateway/internal/suggest"
	"hospital-portal-gateway/internal/upstream"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SetupRoutes configures the portal routes.
func SetupRoutes(router *gin.Engine, api *upstream.Client, cfg *config.Config, logger zerolog.Logger) {
	resolver := session.NewResolver(api, cfg.Session.CacheTTL)
	tracker := suggest.NewTracker()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(resolver, cfg)
	dashboardHandler := handlers.NewDashboardHandler(api)
	browseHandler := handlers.NewBrowseHandler(api)
	bookingHandler := handlers.NewBookingHandler(api)
	historyHandler := handlers.NewHistoryHandler(api)
	doctorHandler := handlers.NewDoctorHandler(api, tracker, cfg)
	adminHandler := handlers.NewAdminHandler(api, resolver)

	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.SessionMiddleware(resolver))

	// Root route: guest landing, patient browser, or role redirect.
	router.GET("/", dashboardHandler.Root)

	// Session endpoint shared by the navigation bar and view selection.
	router.GET("/auth/me", authHandler.Me)

	// Full-page redirects to the upstream auth host.
	router.GET("/login", authHandler.Login)
	router.GET("/register", authHandler.Register)
	router.GET("/logout", authHandler.Logout)

	// Department/doctor browser: any authenticated user.
	browse := router.Group("")
	browse.Use(middleware.RequireSession())
	{
		browse.GET("/departments", browseHandler.Departments)
		browse.GET("/doctors/:departmentId", browseHandler.DoctorsByDepartment)
	}

	// Patient routes
	patient := router.Group("")
	patient.Use(middleware.RequireRole(models.RolePatient))
	{
		patient.POST("/book/:doctorId", bookingHandler.Book)
		patient.POST("/bookings", bookingHandler.BookModal)
		patient.GET("/my-appointments", historyHandler.MyAppointments)
	}

	// Doctor routes
	doctor := router.Group("")
	doctor.Use(middleware.RequireRole(models.RoleDoctor))
	{
		doctor.GET("/doctor/appointments", doctorHandler.Appointments)
		doctor.POST("/appointments/:id/status", doctorHandler.UpdateStatus)
		doctor.POST("/prescriptions", doctorHandler.CreatePrescription)
		doctor.GET("/drugs/search", doctorHandler.SearchDrugs)
	}

	// Admin routes
	admin := router.Group("/admin")
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/users", adminHandler.ListUsers)
		admin.POST("/patients", adminHandler.CreatePatient)
		admin.PUT("/users/:id", adminHandler.UpdateUser)
		admin.DELETE("/users/:id", adminHandler.DeleteUser)

		admin.GET("/doctors", adminHandler.ListDoctors)
		admin.POST("/doctors", adminHandler.CreateDoctor)
		admin.PUT("/doctors/:id", adminHandler.UpdateDoctor)

		admin.POST("/departments", adminHandler.CreateDepartment)
		admin.PUT("/departments/:id", adminHandler.UpdateDepartment)
		admin.DELETE("/departments/:id", adminHandler.DeleteDepartment)
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
