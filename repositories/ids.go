package repositories

import (
	"fmt"

	"gorm.io/gorm"
)

// First ids handed out per table when it is empty.
const (
	patientIDFloor      = 0
	appointmentIDFloor  = 100
	billIDFloor         = 2000
	prescriptionIDFloor = 1000
	medicationIDFloor   = 0
	variantIDFloor      = 0
	roomIDFloor         = 0
)

// nextID returns max(column)+1, or floor+1 for an empty table. It must run
// inside the transaction that inserts the row, under the table's lock.
func nextID(tx *gorm.DB, table, column string, floor int64) (int64, error) {
	var id int64
	query := fmt.Sprintf("SELECT COALESCE(MAX(%s), %d) + 1 FROM %s", column, floor, table)
	if err := tx.Raw(query).Scan(&id).Error; err != nil {
		return 0, fmt.Errorf("failed to allocate %s id: %w", table, err)
	}
	return id, nil
}
