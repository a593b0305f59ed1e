package services

import (
	"context"
	"time"

	"ClinicAdmin/models"
	"ClinicAdmin/repositories"
	"ClinicAdmin/utils"
)

// upcomingDays is how far past today the upcoming list reaches.
const upcomingDays = 7

type DashboardService struct {
	repository *repositories.DashboardRepository
	location   *time.Location
	now        Clock
}

func NewDashboardService(repository *repositories.DashboardRepository, location *time.Location, now Clock) *DashboardService {
	return &DashboardService{repository: repository, location: location, now: now}
}

// Stats computes the dashboard for the current day in the clinic time zone.
func (s *DashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	dayStart, dayEnd := utils.DayBounds(s.now(), s.location)
	horizon := dayStart.AddDate(0, 0, upcomingDays+1)
	return s.repository.Stats(ctx, dayStart, dayEnd, horizon)
}
