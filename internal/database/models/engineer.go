package models

// Engineer represents one roster member persisted for reporting and
// audit. The scheduling engine works from configuration; this row keeps
// the roster queryable alongside the swap history.
type Engineer struct {
	BaseModel
	Name      string `json:"name" gorm:"size:40;not null;uniqueIndex" validate:"required,min=1,max=40"`
	Letter    string `json:"letter" gorm:"size:4;not null" validate:"required,min=1,max=4"`
	Seniority int    `json:"seniority" gorm:"not null" validate:"min=1"`
	Country   string `json:"country" gorm:"size:2" validate:"max=2"`
	Region    string `json:"region" gorm:"size:4" validate:"max=4"`
	Active    bool   `json:"active" gorm:"not null;default:true"`

	// Relationships
	RequestedSwaps []SwapRecord `json:"requested_swaps,omitempty" gorm:"foreignKey:RequesterID;constraint:OnDelete:CASCADE"`
	TargetedSwaps  []SwapRecord `json:"targeted_swaps,omitempty" gorm:"foreignKey:TargetID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Engineer
func (Engineer) TableName() string {
	return "engineers"
}
