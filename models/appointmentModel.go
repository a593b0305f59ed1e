package models

import "time"

// Appointment statuses in use.
const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
)

// Appointment model
type Appointment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement:false;column:appt_id" json:"appt_id"`
	PatientID int64     `gorm:"column:patient_id;not null;index" json:"patient_id"`
	DoctorID  int64     `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	StartsAt  time.Time `gorm:"column:starts_at;not null;index" json:"starts_at"`
	EndsAt    time.Time `gorm:"column:ends_at;not null" json:"ends_at"`
	Status    string    `gorm:"column:status;size:20;not null" json:"status"`
	Reason    string    `gorm:"column:reason;size:255" json:"reason"`
	Patient   Patient   `json:"-"`
	Doctor    Doctor    `json:"-"`
}

func (Appointment) TableName() string {
	return "appointment"
}

// AppointmentRoom assigns an appointment to a clinic room. The appointment id
// is the key, so an appointment holds at most one room.
type AppointmentRoom struct {
	AppointmentID int64       `gorm:"primaryKey;autoIncrement:false;column:appt_id" json:"appt_id"`
	RoomID        int64       `gorm:"column:room_id;not null;index" json:"room_id"`
	Appointment   Appointment `json:"-"`
	Room          ClinicRoom  `json:"-"`
}

func (AppointmentRoom) TableName() string {
	return "appointment_room"
}

// ClinicRoom model
type ClinicRoom struct {
	ID    int64  `gorm:"primaryKey;autoIncrement:false;column:room_id" json:"room_id"`
	Name  string `gorm:"column:room_name;size:80;not null" json:"room_name"`
	Type  string `gorm:"column:room_type;size:40" json:"room_type"`
	Notes string `gorm:"column:notes;size:255" json:"notes"`
}

func (ClinicRoom) TableName() string {
	return "clinic_room"
}
