// File: vetcare/handlers/bundle.go
package handlers

import (
	clientRepoPkg "vetcare/database/repository/client"
	staffRepoPkg "vetcare/database/repository/staff"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	StaffRepo  staffRepoPkg.StaffRepository
	ClientRepo clientRepoPkg.ClientRepository

	// Staff endpoints
	RegisterStaffHandler     gin.HandlerFunc
	AuthenticateStaffHandler gin.HandlerFunc
	GetStaffByIDHandler      gin.HandlerFunc
	GetAllStaffHandler       gin.HandlerFunc
	GetVetsHandler           gin.HandlerFunc
	UpdateStaffHandler       gin.HandlerFunc
	DeleteStaffHandler       gin.HandlerFunc
	RevokeStaffTokenHandler  gin.HandlerFunc
	SetAvailabilityHandler   gin.HandlerFunc

	// Client endpoints
	RegisterClientHandler     gin.HandlerFunc
	AuthenticateClientHandler gin.HandlerFunc
	GetClientByIDHandler      gin.HandlerFunc
	GetAllClientsHandler      gin.HandlerFunc
	UpdateClientHandler       gin.HandlerFunc
	DeleteClientHandler       gin.HandlerFunc
	RevokeClientTokenHandler  gin.HandlerFunc

	// Pet endpoints
	RegisterPetHandler gin.HandlerFunc
	GetPetByIDHandler  gin.HandlerFunc
	GetPetsHandler     gin.HandlerFunc
	UpdatePetHandler   gin.HandlerFunc
	DeletePetHandler   gin.HandlerFunc

	// Appointment endpoints
	GetAvailableSlotsHandler     gin.HandlerFunc
	BookAppointmentHandler       gin.HandlerFunc
	RescheduleAppointmentHandler gin.HandlerFunc
	CancelAppointmentHandler     gin.HandlerFunc
	CompleteAppointmentHandler   gin.HandlerFunc
	GetAppointmentByIDHandler    gin.HandlerFunc
	ListAppointmentsHandler      gin.HandlerFunc

	// Record endpoints
	AddPrescriptionHandler       gin.HandlerFunc
	GetPrescriptionsByPetHandler gin.HandlerFunc
	UpdatePrescriptionHandler    gin.HandlerFunc
	DeletePrescriptionHandler    gin.HandlerFunc
	AddTreatmentHandler          gin.HandlerFunc
	GetTreatmentsByPetHandler    gin.HandlerFunc
	UpdateTreatmentHandler       gin.HandlerFunc
	DeleteTreatmentHandler       gin.HandlerFunc

	// Dashboard endpoints
	ClientDashboardHandler    gin.HandlerFunc
	SecretaryDashboardHandler gin.HandlerFunc
}
