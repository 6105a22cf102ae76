package utils

import (
	"fmt"

	"github.com/iskiospa/iskio-api/models"
	"gorm.io/gorm"
)

// ClaimSlot marks an active, free slot as occupied. It reports false when the
// slot does not exist, is inactive, or was taken by a concurrent booking.
func ClaimSlot(tx *gorm.DB, fecha, hora string) (bool, error) {
	result := tx.Model(&models.Slot{}).
		Where("fecha = ? AND hora = ? AND activo = ? AND ocupada = ?", fecha, hora, true, false).
		Update("ocupada", true)
	if result.Error != nil {
		return false, fmt.Errorf("failed to claim slot %s %s: %w", fecha, hora, result.Error)
	}
	return result.RowsAffected == 1, nil
}

// ReleaseSlot frees a previously claimed slot. Missing slots are ignored.
func ReleaseSlot(tx *gorm.DB, fecha, hora string) error {
	err := tx.Model(&models.Slot{}).
		Where("fecha = ? AND hora = ?", fecha, hora).
		Update("ocupada", false).Error
	if err != nil {
		return fmt.Errorf("failed to release slot %s %s: %w", fecha, hora, err)
	}
	return nil
}
