package handlers

import (
	"fmt"
	"net/http"

	"ClinicAdmin/middlewares"
	"ClinicAdmin/models"
	"ClinicAdmin/repositories"
	"ClinicAdmin/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BillingHandler struct {
	service *services.BillingService
	log     *zap.Logger
}

func NewBillingHandler(service *services.BillingService, log *zap.Logger) *BillingHandler {
	return &BillingHandler{service: service, log: log}
}

func (h *BillingHandler) ListBills(c *gin.Context) {
	h.renderList(c, http.StatusOK, "")
}

func (h *BillingHandler) renderList(c *gin.Context, status int, message string) {
	overview, err := h.service.Overview(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, h.log, http.StatusInternalServerError, "Failed to load billing", err)
		return
	}
	render(c, status, "billing.html", "Billing", gin.H{
		"Bills":       overview.Bills,
		"Summary":     overview.Summary,
		"Receivables": overview.Receivables,
		"Error":       message,
	})
}

func (h *BillingHandler) renderForm(c *gin.Context, status int, message string) {
	candidates, err := h.service.Billable(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, h.log, http.StatusInternalServerError, "Failed to load bill form", err)
		return
	}
	render(c, status, "add_bill.html", "Add bill", gin.H{"Appointments": candidates, "Error": message})
}

func (h *BillingHandler) NewBill(c *gin.Context) {
	h.renderForm(c, http.StatusOK, "")
}

func (h *BillingHandler) CreateBill(c *gin.Context) {
	var in models.BillInput
	if err := c.ShouldBind(&in); err != nil {
		h.renderForm(c, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := h.service.Create(c.Request.Context(), in); err != nil {
		h.log.Warn("bill not created", zap.Int64("appt_id", in.AppointmentID), zap.Error(err))
		h.renderForm(c, failureStatus(err), repositories.UserMessage(err))
		return
	}
	redirect(c, "/billing")
}

// loadBill renders the page with the bill, or redirects to the billing list
// when the bill does not exist.
func (h *BillingHandler) loadBill(c *gin.Context, page, title string) {
	id, ok := pathID(c, h.log, "id")
	if !ok {
		return
	}
	bill, err := h.service.Detail(c.Request.Context(), id)
	if repositories.IsNotFound(err) {
		redirect(c, "/billing")
		return
	}
	if err != nil {
		middlewares.HttpError(c, h.log, http.StatusInternalServerError, "Failed to load bill", err)
		return
	}
	render(c, http.StatusOK, page, title, gin.H{"Bill": bill})
}

func (h *BillingHandler) EditBill(c *gin.Context) {
	h.loadBill(c, "edit_bill.html", "Edit bill")
}

func (h *BillingHandler) BillDetails(c *gin.Context) {
	h.loadBill(c, "bill_details.html", "Bill details")
}

// UpdateBill saves the edit form. Any failure sends the user back to the form.
func (h *BillingHandler) UpdateBill(c *gin.Context) {
	id, ok := pathID(c, h.log, "id")
	if !ok {
		return
	}
	var in models.BillUpdateInput
	err := c.ShouldBind(&in)
	if err == nil {
		err = h.service.Update(c.Request.Context(), id, in)
	}
	if err != nil {
		h.log.Error("bill update failed", zap.Int64("bill_id", id), zap.Error(err))
		redirect(c, fmt.Sprintf("/edit_bill/%d", id))
		return
	}
	redirect(c, "/billing")
}

func (h *BillingHandler) DeleteBill(c *gin.Context) {
	id, ok := pathID(c, h.log, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.log.Warn("bill delete failed", zap.Int64("bill_id", id), zap.Error(err))
		h.renderList(c, failureStatus(err), repositories.UserMessage(err))
		return
	}
	redirect(c, "/billing")
}
