package handlers

import (
	"net/http"

	"ClinicAdmin/middlewares"
	"ClinicAdmin/models"
	"ClinicAdmin/repositories"
	"ClinicAdmin/services"
	"ClinicAdmin/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MedicationHandler struct {
	service *services.MedicationService
	log     *zap.Logger
}

func NewMedicationHandler(service *services.MedicationService, log *zap.Logger) *MedicationHandler {
	return &MedicationHandler{service: service, log: log}
}

func (h *MedicationHandler) ListMedications(c *gin.Context) {
	h.renderList(c, http.StatusOK, "")
}

func (h *MedicationHandler) renderList(c *gin.Context, status int, message string) {
	rows, err := h.service.List(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, h.log, http.StatusInternalServerError, "Failed to load medications", err)
		return
	}
	render(c, status, "medications.html", "Medications", gin.H{"Medications": rows, "Error": message})
}

func (h *MedicationHandler) NewMedication(c *gin.Context) {
	render(c, http.StatusOK, "add_medication.html", "Add medication", nil)
}

func (h *MedicationHandler) CreateMedication(c *gin.Context) {
	var in models.MedicationInput
	if err := c.ShouldBind(&in); err != nil {
		middlewares.HttpError(c, h.log, http.StatusBadRequest, "Invalid medication form", err)
		return
	}
	if _, err := h.service.Create(c.Request.Context(), in); err != nil {
		if utils.IsValidationError(err) {
			render(c, http.StatusBadRequest, "add_medication.html", "Add medication", gin.H{"Error": err.Error()})
			return
		}
		middlewares.HttpError(c, h.log, http.StatusInternalServerError, "Failed to create medication", err)
		return
	}
	redirect(c, "/medications")
}

// renderPrescriptionForm shows the prescription form, or redirects to the
// medication list for an unknown medication.
func (h *MedicationHandler) renderPrescriptionForm(c *gin.Context, medID int64, status int, message string) {
	info, candidates, err := h.service.PrescriptionForm(c.Request.Context(), medID)
	if repositories.IsNotFound(err) {
		redirect(c, "/medications")
		return
	}
	if err != nil {
		middlewares.HttpError(c, h.log, http.StatusInternalServerError, "Failed to load prescription form", err)
		return
	}
	render(c, status, "assign_medication.html", "Prescribe medication", gin.H{
		"MedID":        medID,
		"Medication":   info,
		"Appointments": candidates,
		"Error":        message,
	})
}

func (h *MedicationHandler) NewPrescription(c *gin.Context) {
	medID, ok := pathID(c, h.log, "id")
	if !ok {
		return
	}
	h.renderPrescriptionForm(c, medID, http.StatusOK, "")
}

func (h *MedicationHandler) CreatePrescription(c *gin.Context) {
	medID, ok := pathID(c, h.log, "id")
	if !ok {
		return
	}
	var in models.PrescriptionInput
	if err := c.ShouldBind(&in); err != nil {
		h.renderPrescriptionForm(c, medID, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := h.service.Prescribe(c.Request.Context(), medID, in); err != nil {
		if repositories.IsNotFound(err) {
			// no medication or no variant to prescribe
			h.log.Info("prescription for unknown medication", zap.Int64("med_id", medID), zap.Error(err))
			redirect(c, "/medications")
			return
		}
		h.log.Warn("prescription not issued", zap.Int64("med_id", medID), zap.Int64("appt_id", in.AppointmentID), zap.Error(err))
		h.renderPrescriptionForm(c, medID, failureStatus(err), repositories.UserMessage(err))
		return
	}
	redirect(c, "/medications")
}

func (h *MedicationHandler) DeleteMedication(c *gin.Context) {
	id, ok := pathID(c, h.log, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.log.Warn("medication delete failed", zap.Int64("med_id", id), zap.Error(err))
		h.renderList(c, failureStatus(err), repositories.UserMessage(err))
		return
	}
	redirect(c, "/medications")
}
