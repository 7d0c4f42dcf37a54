// File: vetcare/routes/routes.go
package routes

import (
	"net/http"
	"time"

	"vetcare/handlers"
	"vetcare/middleware"
	"vetcare/models"
	"vetcare/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterStaffRoutes registers staff account and availability endpoints.
func RegisterStaffRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/staff")
	{
		api.POST("/register", hb.RegisterStaffHandler)
		api.POST("/login", hb.AuthenticateStaffHandler)

		// The vet list backs the slot picker, so clients may read it too.
		api.GET("/vets", middleware.JWTAuthAnyMiddleware(hb.StaffRepo, hb.ClientRepo), hb.GetVetsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthStaffMiddleware(hb.StaffRepo))
		protected.GET("/id/:id", hb.GetStaffByIDHandler)
		protected.GET("/all", hb.GetAllStaffHandler)
		protected.PUT("/update/:id", hb.UpdateStaffHandler)
		protected.PUT("/availability/:id", hb.SetAvailabilityHandler)
		protected.DELETE("/revoke/:id", hb.RevokeStaffTokenHandler)
		protected.DELETE("/delete/:id", middleware.RequireRole(models.RoleSecretary), hb.DeleteStaffHandler)
	}
}

// RegisterClientRoutes registers pet-owner account endpoints.
func RegisterClientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/clients")
	{
		api.POST("/register", hb.RegisterClientHandler)
		api.POST("/login", hb.AuthenticateClientHandler)

		owner := api.Group("")
		owner.Use(middleware.JWTAuthClientMiddleware(hb.ClientRepo))
		owner.GET("/id/:id", hb.GetClientByIDHandler)
		owner.PUT("/update/:id", hb.UpdateClientHandler)
		owner.DELETE("/revoke/:id", hb.RevokeClientTokenHandler)

		// Front-desk management of the client roster.
		staff := api.Group("")
		staff.Use(middleware.JWTAuthStaffMiddleware(hb.StaffRepo), middleware.RequireRole(models.RoleSecretary))
		staff.GET("/all", hb.GetAllClientsHandler)
		staff.DELETE("/delete/:id", hb.DeleteClientHandler)
	}
}

// RegisterPetRoutes registers the patient-registry endpoints. Handlers
// scope clients to their own pets.
func RegisterPetRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/pets")
	{
		api.Use(middleware.JWTAuthAnyMiddleware(hb.StaffRepo, hb.ClientRepo))
		api.POST("/register", hb.RegisterPetHandler)
		api.GET("/id/:id", hb.GetPetByIDHandler)
		api.GET("/all", hb.GetPetsHandler)
		api.PUT("/update/:id", hb.UpdatePetHandler)
		api.DELETE("/delete/:id", hb.DeletePetHandler)
	}
}

// RegisterAppointmentRoutes registers slot lookup and booking endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthAnyMiddleware(hb.StaffRepo, hb.ClientRepo))
		api.GET("/slots", hb.GetAvailableSlotsHandler)
		api.POST("/book", hb.BookAppointmentHandler)
		api.PUT("/reschedule/:id", hb.RescheduleAppointmentHandler)
		api.DELETE("/cancel/:id", hb.CancelAppointmentHandler)
		api.GET("/id/:id", hb.GetAppointmentByIDHandler)
		api.GET("/list", hb.ListAppointmentsHandler)

		// Only the treating side closes out a visit.
		api.PUT("/complete/:id", middleware.RequireRole(models.RoleVet, models.RoleSecretary), hb.CompleteAppointmentHandler)
	}
}

// RegisterRecordRoutes registers prescription and treatment endpoints.
// Medical records are staff-side; owners see active prescriptions
// through their dashboard.
func RegisterRecordRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/records")
	{
		api.Use(middleware.JWTAuthStaffMiddleware(hb.StaffRepo))
		api.GET("/prescriptions/pet/:petID", hb.GetPrescriptionsByPetHandler)
		api.GET("/treatments/pet/:petID", hb.GetTreatmentsByPetHandler)

		vet := api.Group("")
		vet.Use(middleware.RequireRole(models.RoleVet))
		vet.POST("/prescriptions", hb.AddPrescriptionHandler)
		vet.PUT("/prescriptions/:id", hb.UpdatePrescriptionHandler)
		vet.DELETE("/prescriptions/:id", hb.DeletePrescriptionHandler)
		vet.POST("/treatments", hb.AddTreatmentHandler)
		vet.PUT("/treatments/:id", hb.UpdateTreatmentHandler)
		vet.DELETE("/treatments/:id", hb.DeleteTreatmentHandler)
	}
}

// RegisterDashboardRoutes registers the role-based landing views.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dashboard")
	{
		api.GET("/me", middleware.JWTAuthClientMiddleware(hb.ClientRepo), hb.ClientDashboardHandler)
		api.GET("/clinic",
			middleware.JWTAuthStaffMiddleware(hb.StaffRepo),
			middleware.RequireRole(models.RoleSecretary, models.RoleVet),
			hb.SecretaryDashboardHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterStaffRoutes(r, hb)
	RegisterClientRoutes(r, hb)
	RegisterPetRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterRecordRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterHealthRoute(r)
}
