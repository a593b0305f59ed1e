package handlers

import (
	"net/http"
	"strings"

	"ClinicAdmin/middlewares"
	"ClinicAdmin/models"
	"ClinicAdmin/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Values of the combined search form's "action" field.
const (
	actionSearchPatients     = "search_patients"
	actionSearchAppointments = "search_appointments"
)

type SearchHandler struct {
	service *services.SearchService
	log     *zap.Logger
}

func NewSearchHandler(service *services.SearchService, log *zap.Logger) *SearchHandler {
	return &SearchHandler{service: service, log: log}
}

type searchPage struct {
	PatientResults    []models.Patient
	ApptResults       []models.AppointmentRow
	PatientSearched   bool
	ApptSearched      bool
	PatientSearchTerm string
}

func (h *SearchHandler) renderPage(c *gin.Context, page searchPage) {
	render(c, http.StatusOK, "search.html", "Search", gin.H{
		"PatientResults":    page.PatientResults,
		"ApptResults":       page.ApptResults,
		"PatientSearched":   page.PatientSearched,
		"ApptSearched":      page.ApptSearched,
		"PatientSearchTerm": page.PatientSearchTerm,
	})
}

func (h *SearchHandler) SearchPage(c *gin.Context) {
	h.renderPage(c, searchPage{})
}

// Search handles the combined form; the "action" field picks the search.
func (h *SearchHandler) Search(c *gin.Context) {
	var page searchPage
	switch c.PostForm("action") {
	case actionSearchPatients:
		term := strings.TrimSpace(c.PostForm("patient_name"))
		patients, searched, err := h.service.Patients(c.Request.Context(), term)
		if err != nil {
			middlewares.HttpError(c, h.log, http.StatusInternalServerError, "Patient search failed", err)
			return
		}
		page.PatientResults, page.PatientSearched = patients, searched
		if searched {
			page.PatientSearchTerm = term
		}
	case actionSearchAppointments:
		rows, ok := h.appointments(c)
		if !ok {
			return
		}
		page.ApptResults, page.ApptSearched = rows, true
	}
	h.renderPage(c, page)
}

func (h *SearchHandler) SearchPatients(c *gin.Context) {
	term := strings.TrimSpace(c.PostForm("patient_name"))
	patients, _, err := h.service.Patients(c.Request.Context(), term)
	if err != nil {
		middlewares.HttpError(c, h.log, http.StatusInternalServerError, "Patient search failed", err)
		return
	}
	h.renderPage(c, searchPage{PatientResults: patients, PatientSearched: true, PatientSearchTerm: term})
}

func (h *SearchHandler) SearchAppointments(c *gin.Context) {
	rows, ok := h.appointments(c)
	if !ok {
		return
	}
	h.renderPage(c, searchPage{ApptResults: rows, ApptSearched: true})
}

func (h *SearchHandler) appointments(c *gin.Context) ([]models.AppointmentRow, bool) {
	var in models.AppointmentSearch
	if err := c.ShouldBind(&in); err != nil {
		middlewares.HttpError(c, h.log, http.StatusBadRequest, "Invalid search form", err)
		return nil, false
	}
	rows, err := h.service.Appointments(c.Request.Context(), in)
	if err != nil {
		middlewares.HttpError(c, h.log, http.StatusInternalServerError, "Appointment search failed", err)
		return nil, false
	}
	return rows, true
}
