package models

// ServiceStatus is derived from dates on every read and never stored.
type ServiceStatus string

const (
	StatusInactive ServiceStatus = "inactive"
	StatusDue      ServiceStatus = "due"
	StatusUpcoming ServiceStatus = "upcoming"
	StatusGood     ServiceStatus = "good"
)
