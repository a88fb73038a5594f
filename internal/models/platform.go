package models

import (
	"time"

	"gorm.io/datatypes"
)

// Platform type values
const (
	PlatformLinkedIn  = "linkedin"
	PlatformTwitter   = "twitter"
	PlatformInstagram = "instagram"
	PlatformFacebook  = "facebook"
)

// PlatformTypes lists every supported platform, in display order.
var PlatformTypes = []string{PlatformLinkedIn, PlatformTwitter, PlatformInstagram, PlatformFacebook}

// ValidPlatformType reports whether t names a supported platform.
func ValidPlatformType(t string) bool {
	for _, p := range PlatformTypes {
		if p == t {
			return true
		}
	}
	return false
}

// Platform represents a connected (or connectable) social account.
type Platform struct {
	ID           int            `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       int            `gorm:"index;not null" json:"userId"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Type         string         `gorm:"size:64;not null" json:"type"`
	Connected    bool           `gorm:"default:false" json:"connected"`
	AccessToken  string         `gorm:"size:512" json:"accessToken,omitempty"`
	RefreshToken string         `gorm:"size:512" json:"refreshToken,omitempty"`
	TokenExpiry  *time.Time     `json:"tokenExpiry,omitempty"`
	Settings     datatypes.JSON `json:"settings,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// PlatformUpdate carries a partial update; nil fields are left untouched.
type PlatformUpdate struct {
	Name         *string        `json:"name"`
	Type         *string        `json:"type"`
	Connected    *bool          `json:"connected"`
	AccessToken  *string        `json:"accessToken"`
	RefreshToken *string        `json:"refreshToken"`
	TokenExpiry  *time.Time     `json:"tokenExpiry"`
	Settings     datatypes.JSON `json:"settings"`
}

// TableName overrides the table name for Platform
func (Platform) TableName() string {
	return "platforms"
}
