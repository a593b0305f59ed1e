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

type PatientHandler struct {
	service *services.PatientService
	log     *zap.Logger
}

func NewPatientHandler(service *services.PatientService, log *zap.Logger) *PatientHandler {
	return &PatientHandler{service: service, log: log}
}

func (h *PatientHandler) ListPatients(c *gin.Context) {
	h.renderList(c, http.StatusOK, "")
}

func (h *PatientHandler) renderList(c *gin.Context, status int, message string) {
	patients, err := h.service.List(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, h.log, http.StatusInternalServerError, "Failed to load patients", err)
		return
	}
	render(c, status, "patients.html", "Patients", gin.H{"Patients": patients, "Error": message})
}

func (h *PatientHandler) NewPatient(c *gin.Context) {
	render(c, http.StatusOK, "add_patient.html", "Add patient", nil)
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var in models.PatientInput
	if err := c.ShouldBind(&in); err != nil {
		middlewares.HttpError(c, h.log, http.StatusBadRequest, "Invalid patient form", err)
		return
	}
	if _, err := h.service.Create(c.Request.Context(), in); err != nil {
		if utils.IsValidationError(err) {
			render(c, http.StatusBadRequest, "add_patient.html", "Add patient", gin.H{"Error": err.Error()})
			return
		}
		middlewares.HttpError(c, h.log, http.StatusInternalServerError, "Failed to create patient", err)
		return
	}
	redirect(c, "/patients")
}

func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id, ok := pathID(c, h.log, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.log.Warn("patient delete failed", zap.Int64("patient_id", id), zap.Error(err))
		h.renderList(c, failureStatus(err), repositories.UserMessage(err))
		return
	}
	redirect(c, "/patients")
}
