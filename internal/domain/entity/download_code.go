package entity

import (
	"time"
)

// DownloadCode is a one-time code that gates PDF export
type DownloadCode struct {
	ID        uint       `gorm:"primary_key" json:"id"`
	Code      string     `gorm:"size:8;unique;not null" json:"code"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	Used      bool       `gorm:"default:false" json:"used"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
}

// TableName returns the table name for the DownloadCode model
func (DownloadCode) TableName() string {
	return "download_codes"
}

// IsExpired reports whether the code's validity window has passed
func (c *DownloadCode) IsExpired() bool {
	return c.ExpiresAt.Before(time.Now().UTC())
}
