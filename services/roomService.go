package services

import (
	"context"
	"strings"

	"ClinicAdmin/metrics"
	"ClinicAdmin/models"
	"ClinicAdmin/repositories"
	"ClinicAdmin/utils"
)

// UnknownRoomName is shown for a room id that does not exist.
const UnknownRoomName = "Unknown"

type RoomService struct {
	repository   *repositories.RoomRepository
	appointments *repositories.AppointmentRepository
	metrics      *metrics.Collector
}

func NewRoomService(
	repository *repositories.RoomRepository,
	appointments *repositories.AppointmentRepository,
	metrics *metrics.Collector,
) *RoomService {
	return &RoomService{repository: repository, appointments: appointments, metrics: metrics}
}

func (s *RoomService) List(ctx context.Context) ([]models.RoomRow, error) {
	return s.repository.List(ctx)
}

func (s *RoomService) Create(ctx context.Context, in models.RoomInput) (*models.ClinicRoom, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := utils.ValidateRoom(in); err != nil {
		return nil, err
	}

	room := &models.ClinicRoom{
		Name:  in.Name,
		Type:  strings.TrimSpace(in.Type),
		Notes: strings.TrimSpace(in.Notes),
	}
	if err := s.repository.Create(ctx, room); err != nil {
		recordRejection(s.metrics, err)
		return nil, err
	}
	return room, nil
}

// RoomName resolves a room id to its name, or UnknownRoomName.
func (s *RoomService) RoomName(ctx context.Context, roomID int64) (string, error) {
	name, err := s.repository.Name(ctx, roomID)
	if repositories.IsNotFound(err) {
		return UnknownRoomName, nil
	}
	return name, err
}

// AssignmentForm returns the room name and the appointments without a room.
func (s *RoomService) AssignmentForm(ctx context.Context, roomID int64) (string, []models.CandidateAppointment, error) {
	name, err := s.RoomName(ctx, roomID)
	if err != nil {
		return "", nil, err
	}
	candidates, err := s.appointments.WithoutRoom(ctx)
	if err != nil {
		return "", nil, err
	}
	return name, candidates, nil
}

func (s *RoomService) Assign(ctx context.Context, roomID int64, in models.RoomAssignmentInput) error {
	if err := utils.ValidateRoomAssignment(in); err != nil {
		return err
	}
	if err := s.repository.Assign(ctx, roomID, in.AppointmentID); err != nil {
		recordRejection(s.metrics, err)
		return err
	}
	s.metrics.RoomAssignmentsTotal.Inc()
	return nil
}

// Schedule returns the room name and the appointments held in the room.
func (s *RoomService) Schedule(ctx context.Context, roomID int64) (string, []models.ScheduleRow, error) {
	name, err := s.RoomName(ctx, roomID)
	if err != nil {
		return "", nil, err
	}
	rows, err := s.repository.Schedule(ctx, roomID)
	if err != nil {
		return "", nil, err
	}
	return name, rows, nil
}

func (s *RoomService) Delete(ctx context.Context, roomID int64) error {
	if err := s.repository.Delete(ctx, roomID); err != nil {
		recordRejection(s.metrics, err)
		return err
	}
	s.metrics.DeletesTotal.WithLabelValues("room").Inc()
	return nil
}
