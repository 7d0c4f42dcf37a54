// File: vetcare/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vetcare/config"
	"vetcare/cron"
	"vetcare/database"
	appointmentRepoPkg "vetcare/database/repository/appointment"
	clientRepoPkg "vetcare/database/repository/client"
	petRepoPkg "vetcare/database/repository/pet"
	recordsRepoPkg "vetcare/database/repository/records"
	staffRepoPkg "vetcare/database/repository/staff"
	"vetcare/handlers"
	"vetcare/middleware"
	"vetcare/routes"
	appointmentService "vetcare/services/appointment"
	clientService "vetcare/services/client"
	dashboardService "vetcare/services/dashboard"
	petService "vetcare/services/pet"
	recordService "vetcare/services/records"
	staffService "vetcare/services/staff"
	"vetcare/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	staffRepo := staffRepoPkg.NewMongoStaffRepo()
	clientRepo := clientRepoPkg.NewMongoClientRepo()
	petRepo := petRepoPkg.NewMongoPetRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	recordsRepo := recordsRepoPkg.NewMongoRecordRepo()

	for _, ensure := range []func() error{
		staffRepo.EnsureIndexes,
		clientRepo.EnsureIndexes,
		petRepo.EnsureIndexes,
		appointmentRepo.EnsureIndexes,
		recordsRepo.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure indexes: %v", err)
		}
	}

	// services.
	staffSvc := &staffService.DefaultStaffService{
		Repo: staffRepo,
	}
	clientSvc := &clientService.DefaultClientService{
		Repo: clientRepo,
	}
	petSvc := &petService.DefaultPetService{
		Repo: petRepo,
	}
	appointmentSvc := &appointmentService.DefaultAppointmentService{
		Repo:      appointmentRepo,
		StaffRepo: staffRepo,
		PetRepo:   petRepo,
	}
	recordSvc := &recordService.DefaultRecordService{
		Repo:    recordsRepo,
		PetRepo: petRepo,
	}
	dashboardSvc := &dashboardService.DefaultDashboardService{
		ClientRepo:      clientRepo,
		StaffRepo:       staffRepo,
		PetRepo:         petRepo,
		AppointmentRepo: appointmentRepo,
		RecordsRepo:     recordsRepo,
	}

	// handlers.
	staffHandler := handlers.NewStaffHandler(staffSvc)
	clientHandler := handlers.NewClientHandler(clientSvc)
	petHandler := handlers.NewPetHandler(petSvc)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentSvc)
	recordHandler := handlers.NewRecordHandler(recordSvc)
	dashboardHandler := handlers.NewDashboardHandler(dashboardSvc)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		StaffRepo:  staffRepo,
		ClientRepo: clientRepo,

		// Staff endpoints.
		RegisterStaffHandler:     staffHandler.RegisterStaffHandler,
		AuthenticateStaffHandler: staffHandler.AuthenticateStaffHandler,
		GetStaffByIDHandler:      staffHandler.GetStaffByIDHandler,
		GetAllStaffHandler:       staffHandler.GetAllStaffHandler,
		GetVetsHandler:           staffHandler.GetVetsHandler,
		UpdateStaffHandler:       staffHandler.UpdateStaffHandler,
		DeleteStaffHandler:       staffHandler.DeleteStaffHandler,
		RevokeStaffTokenHandler:  staffHandler.RevokeStaffTokenHandler,
		SetAvailabilityHandler:   staffHandler.SetAvailabilityHandler,

		// Client endpoints.
		RegisterClientHandler:     clientHandler.RegisterClientHandler,
		AuthenticateClientHandler: clientHandler.AuthenticateClientHandler,
		GetClientByIDHandler:      clientHandler.GetClientByIDHandler,
		GetAllClientsHandler:      clientHandler.GetAllClientsHandler,
		UpdateClientHandler:       clientHandler.UpdateClientHandler,
		DeleteClientHandler:       clientHandler.DeleteClientHandler,
		RevokeClientTokenHandler:  clientHandler.RevokeClientTokenHandler,

		// Pet endpoints.
		RegisterPetHandler: petHandler.RegisterPetHandler,
		GetPetByIDHandler:  petHandler.GetPetByIDHandler,
		GetPetsHandler:     petHandler.GetPetsHandler,
		UpdatePetHandler:   petHandler.UpdatePetHandler,
		DeletePetHandler:   petHandler.DeletePetHandler,

		// Appointment endpoints.
		GetAvailableSlotsHandler:     appointmentHandler.GetAvailableSlotsHandler,
		BookAppointmentHandler:       appointmentHandler.BookAppointmentHandler,
		RescheduleAppointmentHandler: appointmentHandler.RescheduleAppointmentHandler,
		CancelAppointmentHandler:     appointmentHandler.CancelAppointmentHandler,
		CompleteAppointmentHandler:   appointmentHandler.CompleteAppointmentHandler,
		GetAppointmentByIDHandler:    appointmentHandler.GetAppointmentByIDHandler,
		ListAppointmentsHandler:      appointmentHandler.ListAppointmentsHandler,

		// Record endpoints.
		AddPrescriptionHandler:       recordHandler.AddPrescriptionHandler,
		GetPrescriptionsByPetHandler: recordHandler.GetPrescriptionsByPetHandler,
		UpdatePrescriptionHandler:    recordHandler.UpdatePrescriptionHandler,
		DeletePrescriptionHandler:    recordHandler.DeletePrescriptionHandler,
		AddTreatmentHandler:          recordHandler.AddTreatmentHandler,
		GetTreatmentsByPetHandler:    recordHandler.GetTreatmentsByPetHandler,
		UpdateTreatmentHandler:       recordHandler.UpdateTreatmentHandler,
		DeleteTreatmentHandler:       recordHandler.DeleteTreatmentHandler,

		// Dashboard endpoints.
		ClientDashboardHandler:    dashboardHandler.ClientDashboardHandler,
		SecretaryDashboardHandler: dashboardHandler.SecretaryDashboardHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder pipeline.
	cron.InitReminderWorker()
	cron.StartReminderScheduler(appointmentRepo)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
