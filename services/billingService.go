package services

import (
	"context"
	"strings"
	"time"

	"ClinicAdmin/metrics"
	"ClinicAdmin/models"
	"ClinicAdmin/repositories"
	"ClinicAdmin/utils"
)

type BillingService struct {
	repository   *repositories.BillingRepository
	appointments *repositories.AppointmentRepository
	metrics      *metrics.Collector
	location     *time.Location
	now          Clock
}

func NewBillingService(
	repository *repositories.BillingRepository,
	appointments *repositories.AppointmentRepository,
	metrics *metrics.Collector,
	location *time.Location,
	now Clock,
) *BillingService {
	return &BillingService{
		repository:   repository,
		appointments: appointments,
		metrics:      metrics,
		location:     location,
		now:          now,
	}
}

// Overview is everything shown on the billing page.
type Overview struct {
	Bills       []models.BillRow
	Summary     models.BillingSummary
	Receivables []models.Receivable
}

func (s *BillingService) Overview(ctx context.Context) (*Overview, error) {
	bills, err := s.repository.List(ctx)
	if err != nil {
		return nil, err
	}
	summary, err := s.repository.Summary(ctx)
	if err != nil {
		return nil, err
	}
	receivables, err := s.repository.Receivables(ctx)
	if err != nil {
		return nil, err
	}
	return &Overview{Bills: bills, Summary: summary, Receivables: receivables}, nil
}

// Billable returns the appointments that have no bill yet.
func (s *BillingService) Billable(ctx context.Context) ([]models.CandidateAppointment, error) {
	return s.appointments.WithoutBill(ctx)
}

// Create issues a bill dated today in the clinic time zone.
func (s *BillingService) Create(ctx context.Context, in models.BillInput) (*models.Billing, error) {
	in.PaymentStatus = strings.TrimSpace(in.PaymentStatus)
	if err := utils.ValidateBill(in); err != nil {
		return nil, err
	}

	bill := &models.Billing{
		AppointmentID: in.AppointmentID,
		Amount:        in.Amount,
		PaymentStatus: in.PaymentStatus,
		PaymentMethod: strings.TrimSpace(in.PaymentMethod),
		BillingDate:   utils.CalendarDate(s.now(), s.location),
	}
	if err := s.repository.Create(ctx, bill); err != nil {
		recordRejection(s.metrics, err)
		return nil, err
	}
	s.metrics.BillsCreatedTotal.Inc()
	return bill, nil
}

// Detail returns repositories.ErrNotFound for an unknown bill.
func (s *BillingService) Detail(ctx context.Context, id int64) (*models.BillDetail, error) {
	return s.repository.Detail(ctx, id)
}

func (s *BillingService) Update(ctx context.Context, id int64, in models.BillUpdateInput) error {
	in.PaymentStatus = strings.TrimSpace(in.PaymentStatus)
	in.PaymentMethod = strings.TrimSpace(in.PaymentMethod)
	if err := utils.ValidateBillUpdate(in); err != nil {
		return err
	}
	if err := s.repository.Update(ctx, id, in); err != nil {
		recordRejection(s.metrics, err)
		return err
	}
	return nil
}

func (s *BillingService) Delete(ctx context.Context, id int64) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		recordRejection(s.metrics, err)
		return err
	}
	s.metrics.DeletesTotal.WithLabelValues("bill").Inc()
	return nil
}
