package repositories

import (
	"context"
	"fmt"

	"ClinicAdmin/locks"
	"ClinicAdmin/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoomRepository struct {
	db    *gorm.DB
	locks *locks.Manager
}

func NewRoomRepository(db *gorm.DB, locks *locks.Manager) *RoomRepository {
	return &RoomRepository{db: db, locks: locks}
}

// List returns every room with the number of appointments assigned to it.
func (r *RoomRepository) List(ctx context.Context) ([]models.RoomRow, error) {
	var rows []models.RoomRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT r.room_id, r.room_name, r.room_type, r.notes,
		       COUNT(ar.appt_id) AS appointments_count
		FROM clinic_room r
		LEFT JOIN appointment_room ar ON ar.room_id = r.room_id
		GROUP BY r.room_id, r.room_name, r.room_type, r.notes
		ORDER BY r.room_id`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rows, nil
}

// Create assigns the next room id and inserts the room.
func (r *RoomRepository) Create(ctx context.Context, room *models.ClinicRoom) error {
	return r.locks.WithLock(ctx, locks.Key("clinic_room"), func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			id, err := nextID(tx, "clinic_room", "room_id", roomIDFloor)
			if err != nil {
				return err
			}
			room.ID = id
			if err := tx.Create(room).Error; err != nil {
				return fmt.Errorf("failed to create room: %w", translateError(err))
			}
			return nil
		})
	})
}

// Name returns the name of a room or ErrNotFound.
func (r *RoomRepository) Name(ctx context.Context, roomID int64) (string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&models.ClinicRoom{}).
		Where("room_id = ?", roomID).
		Limit(1).
		Pluck("room_name", &names).Error
	if err != nil {
		return "", fmt.Errorf("failed to load room %d: %w", roomID, err)
	}
	if len(names) == 0 {
		return "", ErrNotFound
	}
	return names[0], nil
}

// Assign places an appointment in a room. An appointment holds at most one room.
func (r *RoomRepository) Assign(ctx context.Context, roomID, apptID int64) error {
	return r.locks.WithLock(ctx, locks.Key("appointment_room", apptID), func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var existing int64
			if err := tx.Model(&models.AppointmentRoom{}).Where("appt_id = ?", apptID).Count(&existing).Error; err != nil {
				return fmt.Errorf("failed to check room of appointment %d: %w", apptID, err)
			}
			if existing > 0 {
				return ErrAlreadyAssigned
			}

			assignment := models.AppointmentRoom{AppointmentID: apptID, RoomID: roomID}
			if err := tx.Omit(clause.Associations).Create(&assignment).Error; err != nil {
				return fmt.Errorf("failed to assign appointment %d to room %d: %w", apptID, roomID, translateError(err))
			}
			return nil
		})
	})
}

// Schedule lists the appointments held in a room, newest first.
func (r *RoomRepository) Schedule(ctx context.Context, roomID int64) ([]models.ScheduleRow, error) {
	var rows []models.ScheduleRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT a.appt_id, p.full_name AS patient_name, d.full_name AS doctor_name,
		       a.starts_at, a.ends_at, a.status
		FROM appointment a
		JOIN appointment_room ar ON ar.appt_id = a.appt_id
		JOIN patient p ON p.patient_id = a.patient_id
		JOIN doctor d ON d.doctor_id = a.doctor_id
		WHERE ar.room_id = ?
		ORDER BY a.starts_at DESC`, roomID).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule of room %d: %w", roomID, err)
	}
	return rows, nil
}

// Delete removes a room and its appointment assignments.
func (r *RoomRepository) Delete(ctx context.Context, roomID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", roomID).Delete(&models.AppointmentRoom{}).Error; err != nil {
			return fmt.Errorf("failed to unassign room %d: %w", roomID, translateError(err))
		}
		if err := tx.Where("room_id = ?", roomID).Delete(&models.ClinicRoom{}).Error; err != nil {
			return fmt.Errorf("failed to delete room %d: %w", roomID, translateError(err))
		}
		return nil
	})
}
