package models

// Patient model
type Patient struct {
	ID       int64  `gorm:"primaryKey;autoIncrement:false;column:patient_id" json:"patient_id"`
	FullName string `gorm:"column:full_name;size:120;not null;index" json:"full_name"`
	Email    string `gorm:"column:email;size:120" json:"email"`
	Phone    string `gorm:"column:phone;size:40" json:"phone"`
	Address  string `gorm:"column:address;size:255" json:"address"`
}

func (Patient) TableName() string {
	return "patient"
}

// Doctor model. Doctors are maintained outside this application.
type Doctor struct {
	ID       int64  `gorm:"primaryKey;autoIncrement:false;column:doctor_id" json:"doctor_id"`
	FullName string `gorm:"column:full_name;size:120;not null;index" json:"full_name"`
	Email    string `gorm:"column:email;size:120" json:"email"`
}

func (Doctor) TableName() string {
	return "doctor"
}
