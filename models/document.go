package models

import "time"

// Document is one row of the key-value document table backing the postgres
// gateway. Data holds a whole JSON-encoded collection.
type Document struct {
	Key       string    `gorm:"primaryKey;type:varchar(64)"`
	Data      []byte    `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Document) TableName() string {
	return "documents"
}
