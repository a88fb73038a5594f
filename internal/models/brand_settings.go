package models

import (
	"time"

	"gorm.io/datatypes"
)

// BrandSettings holds the four voice sliders and the content pillar list for
// one user. At most one row exists per user; lookups are by userId.
type BrandSettings struct {
	ID                      int            `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID                  int            `gorm:"index;not null" json:"userId"`
	FormalToCasual          int            `gorm:"default:50" json:"formalToCasual"`
	TechnicalToAccessible   int            `gorm:"default:50" json:"technicalToAccessible"`
	ReservedToEnthusiastic  int            `gorm:"default:50" json:"reservedToEnthusiastic"`
	TraditionalToInnovative int            `gorm:"default:50" json:"traditionalToInnovative"`
	ContentPillars          datatypes.JSON `json:"contentPillars,omitempty"`
	CreatedAt               time.Time      `json:"createdAt"`
	UpdatedAt               time.Time      `json:"updatedAt"`
}

// BrandSettingsUpdate carries a partial update; nil fields are left untouched.
type BrandSettingsUpdate struct {
	FormalToCasual          *int           `json:"formalToCasual"`
	TechnicalToAccessible   *int           `json:"technicalToAccessible"`
	ReservedToEnthusiastic  *int           `json:"reservedToEnthusiastic"`
	TraditionalToInnovative *int           `json:"traditionalToInnovative"`
	ContentPillars          datatypes.JSON `json:"contentPillars"`
}

// TableName overrides the table name for BrandSettings
func (BrandSettings) TableName() string {
	return "brand_settings"
}
