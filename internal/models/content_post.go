package models

import "time"

// ContentPost status values. Transitions draft -> scheduled -> published are
// advisory only; updates perform a blind merge like the rest of the store.
const (
	PostStatusDraft     = "draft"
	PostStatusScheduled = "scheduled"
	PostStatusPublished = "published"
)

// ValidPostStatus reports whether s is a known post status.
func ValidPostStatus(s string) bool {
	return s == PostStatusDraft || s == PostStatusScheduled || s == PostStatusPublished
}

// ContentPost is a generated or hand-written post, optionally targeting one
// platform and optionally scheduled on the calendar.
type ContentPost struct {
	ID          int        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int        `gorm:"index;not null" json:"userId"`
	PlatformID  int        `gorm:"index" json:"platformId,omitempty"`
	Title       string     `gorm:"size:255" json:"title"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	Tone        string     `gorm:"size:64" json:"tone,omitempty"`
	Length      string     `gorm:"size:64" json:"length,omitempty"`
	Type        string     `gorm:"size:64" json:"type,omitempty"`
	Status      string     `gorm:"size:64;default:draft" json:"status"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ContentPostUpdate carries a partial update; nil fields are left untouched.
type ContentPostUpdate struct {
	PlatformID  *int       `json:"platformId"`
	Title       *string    `json:"title"`
	Content     *string    `json:"content"`
	Tone        *string    `json:"tone"`
	Length      *string    `json:"length"`
	Type        *string    `json:"type"`
	Status      *string    `json:"status"`
	ScheduledAt *time.Time `json:"scheduledAt"`
	PublishedAt *time.Time `json:"publishedAt"`
}

// TableName overrides the table name for ContentPost
func (ContentPost) TableName() string {
	return "content_posts"
}
