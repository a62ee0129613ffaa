package repository

import (
	"time"

	"rotation-manager-backend/internal/database/models"
	apperrors "rotation-manager-backend/internal/errors"

	"gorm.io/gorm"
)

// SwapRepository handles database operations for swap records
type SwapRepository struct {
	db *gorm.DB
}

// NewSwapRepository creates a new swap repository
func NewSwapRepository(db *gorm.DB) *SwapRepository {
	return &SwapRepository{db: db}
}

// Create creates a new swap record
func (r *SwapRepository) Create(record *models.SwapRecord) error {
	return r.db.Create(record).Error
}

// GetBySwapID retrieves a swap record by its deterministic swap id
func (r *SwapRepository) GetBySwapID(swapID string) (*models.SwapRecord, error) {
	var record models.SwapRecord
	err := r.db.First(&record, "swap_id = ?", swapID).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetAll retrieves all swap records in creation order
func (r *SwapRepository) GetAll() ([]models.SwapRecord, error) {
	var records []models.SwapRecord
	if err := r.db.Order("created_at ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// GetByStatus retrieves all swap records with the given status in creation order
func (r *SwapRepository) GetByStatus(status models.SwapRecordStatus) ([]models.SwapRecord, error) {
	var records []models.SwapRecord
	if err := r.db.Where("status = ?", status).Order("created_at ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// GetAllWithEngineers retrieves all swap records with requester and target preloaded
func (r *SwapRepository) GetAllWithEngineers() ([]models.SwapRecord, error) {
	var records []models.SwapRecord
	err := r.db.Preload("Requester").Preload("Target").Order("created_at ASC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Resolve marks a pending swap record approved or rejected. An already
// resolved record is left untouched and reported as
// ErrSwapAlreadyResolved; an unknown swap id as ErrRecordNotFound.
func (r *SwapRepository) Resolve(swapID string, status models.SwapRecordStatus, resolvedBy string) error {
	now := time.Now().UTC()
	result := r.db.Model(&models.SwapRecord{}).
		Where("swap_id = ? AND status = ?", swapID, models.SwapRecordStatusPending).
		Updates(map[string]interface{}{
			"status":      status,
			"resolved_by": resolvedBy,
			"resolved_at": &now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.SwapRecord{}).Where("swap_id = ?", swapID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return apperrors.ErrSwapAlreadyResolved
	}
	return nil
}

// Delete deletes a swap record by swap id
func (r *SwapRepository) Delete(swapID string) error {
	return r.db.Delete(&models.SwapRecord{}, "swap_id = ?", swapID).Error
}
