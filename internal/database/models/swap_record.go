package models

import (
	"time"

	"github.com/google/uuid"
)

// SwapRecordStatus defines the lifecycle states of a persisted swap request
type SwapRecordStatus string

const (
	SwapRecordStatusPending  SwapRecordStatus = "pending"
	SwapRecordStatusApproved SwapRecordStatus = "approved"
	SwapRecordStatusRejected SwapRecordStatus = "rejected"
)

// IsValid checks if the SwapRecordStatus is valid
func (s SwapRecordStatus) IsValid() bool {
	switch s {
	case SwapRecordStatusPending, SwapRecordStatusApproved, SwapRecordStatusRejected:
		return true
	}
	return false
}

// SwapRecord is the durable form of a day-off swap request. SwapID is
// the engine's deterministic identifier (requester-target-date); it is
// the key the in-memory ledger and the table agree on.
type SwapRecord struct {
	BaseModel
	SwapID      string           `json:"swap_id" gorm:"size:120;not null;uniqueIndex" validate:"required"`
	RequesterID uuid.UUID        `json:"requester_id" gorm:"type:uuid;not null;index" validate:"required"`
	TargetID    uuid.UUID        `json:"target_id" gorm:"type:uuid;not null;index" validate:"required"`
	SwapDate    time.Time        `json:"swap_date" gorm:"type:date;not null" validate:"required"`
	Reason      string           `json:"reason" gorm:"type:text"`
	Status      SwapRecordStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'" validate:"required"`
	ResolvedBy  string           `json:"resolved_by" gorm:"size:40"`
	ResolvedAt  *time.Time       `json:"resolved_at,omitempty"`

	// Relationships
	Requester Engineer `json:"requester,omitempty" gorm:"foreignKey:RequesterID"`
	Target    Engineer `json:"target,omitempty" gorm:"foreignKey:TargetID"`
}

// TableName returns the table name for SwapRecord
func (SwapRecord) TableName() string {
	return "swap_records"
}
