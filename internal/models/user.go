package models

import "time"

// User is the account that owns every other collection.
type User struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:255;not null" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Name      string    `gorm:"size:255" json:"name"`
	Email     string    `gorm:"size:255" json:"email"`
	Avatar    string    `gorm:"size:1024" json:"avatar"`
	Plan      string    `gorm:"size:64;default:free" json:"plan"`
	CreatedAt time.Time `json:"createdAt"`
}

// PlanFree is the default plan assigned when none is supplied.
const PlanFree = "free"

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}
