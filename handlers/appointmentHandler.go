package handlers

import (
	"net/http"

	"ClinicAdmin/middlewares"
	"ClinicAdmin/models"
	"ClinicAdmin/repositories"
	"ClinicAdmin/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AppointmentHandler struct {
	service *services.AppointmentService
	log     *zap.Logger
}

func NewAppointmentHandler(service *services.AppointmentService, log *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{service: service, log: log}
}

func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	h.renderList(c, http.StatusOK, "")
}

func (h *AppointmentHandler) renderList(c *gin.Context, status int, message string) {
	rows, err := h.service.List(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, h.log, http.StatusInternalServerError, "Failed to load appointments", err)
		return
	}
	render(c, status, "appointments.html", "Appointments", gin.H{"Appointments": rows, "Error": message})
}

// renderForm shows the booking form. Patients and doctors are reloaded on
// every render, including after a failed submit.
func (h *AppointmentHandler) renderForm(c *gin.Context, status int, message string) {
	patients, doctors, err := h.service.FormOptions(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, h.log, http.StatusInternalServerError, "Failed to load booking form", err)
		return
	}
	render(c, status, "add_appointment.html", "Book appointment", gin.H{
		"Patients": patients,
		"Doctors":  doctors,
		"Error":    message,
	})
}

func (h *AppointmentHandler) NewAppointment(c *gin.Context) {
	h.renderForm(c, http.StatusOK, "")
}

func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var in models.AppointmentInput
	if err := c.ShouldBind(&in); err != nil {
		h.renderForm(c, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := h.service.Create(c.Request.Context(), in); err != nil {
		h.log.Warn("appointment not booked", zap.Error(err))
		h.renderForm(c, failureStatus(err), repositories.UserMessage(err))
		return
	}
	redirect(c, "/appointments")
}

// DeleteAppointment removes the appointment with its bills, prescription and
// room assignment.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, ok := pathID(c, h.log, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.log.Warn("appointment delete failed", zap.Int64("appt_id", id), zap.Error(err))
		h.renderList(c, failureStatus(err), repositories.UserMessage(err))
		return
	}
	redirect(c, "/appointments")
}
