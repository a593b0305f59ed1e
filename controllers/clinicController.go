package controllers

import (
	"ClinicAdmin/handlers"

	"github.com/gin-gonic/gin"
)

// ClinicHandlers groups the page handlers registered by SetupClinicRoutes.
type ClinicHandlers struct {
	Patients     *handlers.PatientHandler
	Appointments *handlers.AppointmentHandler
	Billing      *handlers.BillingHandler
	Medications  *handlers.MedicationHandler
	Rooms        *handlers.RoomHandler
	Search       *handlers.SearchHandler
	Dashboard    *handlers.DashboardHandler
}

func SetupClinicRoutes(router *gin.Engine, h ClinicHandlers) {
	router.GET("/patients", h.Patients.ListPatients)
	router.GET("/add_patient", h.Patients.NewPatient)
	router.POST("/add_patient", h.Patients.CreatePatient)
	router.GET("/delete_patient/:id", h.Patients.DeletePatient)

	router.GET("/appointments", h.Appointments.ListAppointments)
	router.GET("/add_appointment", h.Appointments.NewAppointment)
	router.POST("/add_appointment", h.Appointments.CreateAppointment)
	router.GET("/delete_appointment/:id", h.Appointments.DeleteAppointment)

	router.GET("/billing", h.Billing.ListBills)
	router.GET("/add_bill", h.Billing.NewBill)
	router.POST("/add_bill", h.Billing.CreateBill)
	router.GET("/edit_bill/:id", h.Billing.EditBill)
	router.POST("/edit_bill/:id", h.Billing.UpdateBill)
	router.GET("/bill_details/:id", h.Billing.BillDetails)
	router.GET("/delete_bill/:id", h.Billing.DeleteBill)

	router.GET("/medications", h.Medications.ListMedications)
	router.GET("/add_medication", h.Medications.NewMedication)
	router.POST("/add_medication", h.Medications.CreateMedication)
	router.GET("/assign_medication/:id", h.Medications.NewPrescription)
	router.POST("/assign_medication/:id", h.Medications.CreatePrescription)
	router.GET("/delete_medication/:id", h.Medications.DeleteMedication)

	router.GET("/rooms", h.Rooms.ListRooms)
	router.GET("/add_room", h.Rooms.NewRoom)
	router.POST("/add_room", h.Rooms.CreateRoom)
	router.GET("/assign_room/:id", h.Rooms.NewAssignment)
	router.POST("/assign_room/:id", h.Rooms.CreateAssignment)
	router.GET("/room_schedule/:id", h.Rooms.RoomSchedule)
	router.GET("/delete_room/:id", h.Rooms.DeleteRoom)

	router.GET("/search", h.Search.SearchPage)
	router.POST("/search", h.Search.Search)
	router.POST("/search_patients", h.Search.SearchPatients)
	router.POST("/search_appointments", h.Search.SearchAppointments)

	router.GET("/dashboard", h.Dashboard.Dashboard)
}
