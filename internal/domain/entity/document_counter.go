package entity

import (
	"time"

	"github.com/docugen/docugen-api/internal/domain/enum"
)

// DocumentCounter holds the next sequence value for one document type.
// Counters only move forward; a generated number is never reused even
// if the document is discarded.
type DocumentCounter struct {
	DocumentType enum.DocumentType `gorm:"size:20;primary_key" json:"document_type"`
	NextValue    int64             `gorm:"not null" json:"next_value"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// TableName returns the table name for the DocumentCounter model
func (DocumentCounter) TableName() string {
	return "document_counters"
}
