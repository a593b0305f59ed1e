package models

// Medication model
type Medication struct {
	ID    int64  `gorm:"primaryKey;autoIncrement:false;column:med_id" json:"med_id"`
	Name  string `gorm:"column:med_name;size:120;not null;index" json:"med_name"`
	Notes string `gorm:"column:notes;size:255" json:"notes"`
}

func (Medication) TableName() string {
	return "medication"
}

// MedicationForm is a lookup of dosage forms such as "tablet". Its id is
// assigned by the database.
type MedicationForm struct {
	ID   int64  `gorm:"primaryKey;autoIncrement;column:form_id" json:"form_id"`
	Name string `gorm:"column:form_name;size:60;not null;index" json:"form_name"`
}

func (MedicationForm) TableName() string {
	return "medication_form"
}

// MedicationVariant model
type MedicationVariant struct {
	ID           int64          `gorm:"primaryKey;autoIncrement:false;column:variant_id" json:"variant_id"`
	MedicationID int64          `gorm:"column:med_id;not null;index" json:"med_id"`
	FormID       int64          `gorm:"column:form_id;not null;index" json:"form_id"`
	Strength     string         `gorm:"column:strength;size:60" json:"strength"`
	Medication   Medication     `json:"-"`
	Form         MedicationForm `json:"-"`
}

func (MedicationVariant) TableName() string {
	return "medication_variant"
}

// Prescription model
type Prescription struct {
	ID            int64             `gorm:"primaryKey;autoIncrement:false;column:rx_id" json:"rx_id"`
	AppointmentID int64             `gorm:"column:appt_id;not null;uniqueIndex" json:"appt_id"`
	VariantID     int64             `gorm:"column:variant_id;not null;index" json:"variant_id"`
	Dosage        string            `gorm:"column:dosage;size:60" json:"dosage"`
	Route         string            `gorm:"column:route;size:40" json:"route"`
	Frequency     string            `gorm:"column:frequency;size:60" json:"frequency"`
	Instructions  string            `gorm:"column:instructions;size:255" json:"instructions"`
	Quantity      int               `gorm:"column:quantity" json:"quantity"`
	Appointment   Appointment       `json:"-"`
	Variant       MedicationVariant `json:"-"`
}

func (Prescription) TableName() string {
	return "prescription"
}
