package models

import (
	"time"

	"gorm.io/datatypes"
)

// Analytics is one snapshot of platform metrics, conceptually one row per
// (userId, platformId) though the store does not enforce that uniquely.
type Analytics struct {
	ID              int            `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          int            `gorm:"index;not null" json:"userId"`
	PlatformID      int            `gorm:"index" json:"platformId"`
	Followers       int            `gorm:"default:0" json:"followers"`
	Engagement      datatypes.JSON `json:"engagement,omitempty"`
	PostPerformance datatypes.JSON `json:"postPerformance,omitempty"`
	GrowthTrends    datatypes.JSON `json:"growthTrends,omitempty"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// AnalyticsUpdate carries a partial update; nil fields are left untouched.
type AnalyticsUpdate struct {
	Followers       *int           `json:"followers"`
	Engagement      datatypes.JSON `json:"engagement"`
	PostPerformance datatypes.JSON `json:"postPerformance"`
	GrowthTrends    datatypes.JSON `json:"growthTrends"`
}

// TableName overrides the table name for Analytics
func (Analytics) TableName() string {
	return "analytics"
}
