package testutils

import (
	"time"

	"rotation-manager-backend/internal/database/models"

	"github.com/google/uuid"
)

// EngineerFactory provides methods to create test Engineer data
type EngineerFactory struct{}

// NewEngineerFactory creates a new EngineerFactory
func NewEngineerFactory() *EngineerFactory {
	return &EngineerFactory{}
}

// Create creates a test Engineer with default values
func (f *EngineerFactory) Create() *models.Engineer {
	id := uuid.New()
	return &models.Engineer{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Name must be unique; derive it from the UUID
		Name:      "engineer-" + id.String()[:8],
		Letter:    "X",
		Seniority: 1,
		Country:   "US",
		Region:    "CA",
		Active:    true,
	}
}

// WithName sets a custom name for the engineer
func (f *EngineerFactory) WithName(name string) *models.Engineer {
	engineer := f.Create()
	engineer.Name = name
	return engineer
}

// WithLocation sets country and region for the engineer
func (f *EngineerFactory) WithLocation(country, region string) *models.Engineer {
	engineer := f.Create()
	engineer.Country = country
	engineer.Region = region
	return engineer
}

// SwapRecordFactory provides methods to create test SwapRecord data
type SwapRecordFactory struct{}

// NewSwapRecordFactory creates a new SwapRecordFactory
func NewSwapRecordFactory() *SwapRecordFactory {
	return &SwapRecordFactory{}
}

// Create creates a pending test SwapRecord between the given engineers
func (f *SwapRecordFactory) Create(requester, target *models.Engineer, date time.Time) *models.SwapRecord {
	return &models.SwapRecord{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SwapID:      requester.Name + "-" + target.Name + "-" + date.Format("2006-01-02"),
		RequesterID: requester.ID,
		TargetID:    target.ID,
		SwapDate:    date,
		Reason:      "test swap",
		Status:      models.SwapRecordStatusPending,
	}
}

// WithStatus creates a SwapRecord in the given status
func (f *SwapRecordFactory) WithStatus(requester, target *models.Engineer, date time.Time, status models.SwapRecordStatus) *models.SwapRecord {
	record := f.Create(requester, target, date)
	record.Status = status
	if status != models.SwapRecordStatusPending {
		now := time.Now().UTC()
		record.ResolvedBy = "test-approver"
		record.ResolvedAt = &now
	}
	return record
}

// FactorySet bundles all factories for convenience
type FactorySet struct {
	Engineer   *EngineerFactory
	SwapRecord *SwapRecordFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Engineer:   NewEngineerFactory(),
		SwapRecord: NewSwapRecordFactory(),
	}
}
