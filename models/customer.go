package models

import (
	"cloud.google.com/go/civil"
)

type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "active"
	CustomerInactive CustomerStatus = "inactive"
)

// Customer is a purifier owner on the service schedule. InstallDate is set
// once; LastServiceDate only moves through a recorded service.
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`

	InstallDate     *civil.Date `json:"install_date,omitempty"`
	IntervalDays    int         `json:"interval_days"`
	LastServiceDate *civil.Date `json:"last_service_date,omitempty"`

	Lat  *float64 `json:"lat,omitempty"`
	Long *float64 `json:"long,omitempty"`

	Status CustomerStatus `json:"status"`
}

func (c Customer) IsActive() bool {
	return c.Status != CustomerInactive
}
