// models/service_record.go
package models

import (
	"time"

	"cloud.google.com/go/civil"
)

type ServiceType string

const (
	ServiceBasic ServiceType = "Basic"
	ServiceFull  ServiceType = "Full"
)

// PartUsage snapshots a part consumed during a visit. PartName is copied at
// record time and does not follow later renames.
type PartUsage struct {
	PartID   string `json:"part_id"`
	PartName string `json:"part_name"`
	Qty      int    `json:"qty"`
}

// ServiceRecord is one completed visit. Records are append-only.
type ServiceRecord struct {
	ID            string      `json:"id"`
	CustomerID    string      `json:"customer_id"`
	ServiceDate   civil.Date  `json:"service_date"`
	Type          ServiceType `json:"type"`
	PartsReplaced []PartUsage `json:"parts_replaced"`
	Remarks       string      `json:"remarks"`
	Technician    string      `json:"technician"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
