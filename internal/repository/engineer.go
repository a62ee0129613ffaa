package repository

import (
	"errors"

	"rotation-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EngineerRepository handles database operations for engineers
type EngineerRepository struct {
	db *gorm.DB
}

// NewEngineerRepository creates a new engineer repository
func NewEngineerRepository(db *gorm.DB) *EngineerRepository {
	return &EngineerRepository{db: db}
}

// Create creates a new engineer
func (r *EngineerRepository) Create(engineer *models.Engineer) error {
	return r.db.Create(engineer).Error
}

// GetByID retrieves an engineer by ID
func (r *EngineerRepository) GetByID(id uuid.UUID) (*models.Engineer, error) {
	var engineer models.Engineer
	err := r.db.First(&engineer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &engineer, nil
}

// GetByName retrieves an engineer by name
func (r *EngineerRepository) GetByName(name string) (*models.Engineer, error) {
	var engineer models.Engineer
	err := r.db.First(&engineer, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &engineer, nil
}

// GetAll retrieves all engineers in seniority order
func (r *EngineerRepository) GetAll() ([]models.Engineer, error) {
	var engineers []models.Engineer
	if err := r.db.Order("seniority ASC").Find(&engineers).Error; err != nil {
		return nil, err
	}
	return engineers, nil
}

// Upsert inserts the engineer or updates the existing row with the same name
func (r *EngineerRepository) Upsert(engineer *models.Engineer) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"letter", "seniority", "country", "region", "active", "updated_at"}),
	}).Create(engineer).Error
}

// SyncRoster upserts every configured engineer so the table mirrors the
// active roster. Engineers removed from configuration are kept but
// deactivated; their swap history still references them.
func (r *EngineerRepository) SyncRoster(engineers []models.Engineer) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		names := make([]string, 0, len(engineers))
		for i := range engineers {
			engineers[i].Active = true
			names = append(names, engineers[i].Name)
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoUpdates: clause.AssignmentColumns([]string{"letter", "seniority", "country", "region", "active", "updated_at"}),
			}).Create(&engineers[i]).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Engineer{}).
			Where("name NOT IN ?", names).
			Update("active", false).Error
	})
}

// GetWithSwaps retrieves an engineer with their requested swaps
func (r *EngineerRepository) GetWithSwaps(id uuid.UUID) (*models.Engineer, error) {
	var engineer models.Engineer
	err := r.db.Preload("RequestedSwaps").First(&engineer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &engineer, nil
}

// Delete deletes an engineer
func (r *EngineerRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Engineer{}, "id = ?", id).Error
}

// IsNotFound reports whether err is gorm's record-not-found error
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
