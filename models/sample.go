package models

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

func date(year int, month time.Month, day int) *civil.Date {
	return &civil.Date{Year: year, Month: month, Day: day}
}

func coord(v float64) *float64 {
	return &v
}

// SampleCustomers is the data set a fresh install starts with.
func SampleCustomers() []Customer {
	return []Customer{
		{
			ID: "C1", Name: "Ramesh Kumar", Phone: "9876543210", Email: "ramesh@example.com", Address: "MG Road, Bengaluru",
			InstallDate: date(2025, time.June, 1), IntervalDays: 90, LastServiceDate: date(2025, time.August, 1),
			Lat: coord(12.9716), Long: coord(77.5946), Status: CustomerActive,
		},
		{
			ID: "C2", Name: "Suma Devi", Phone: "9123456780", Email: "suma@example.com", Address: "Koramangala, Bengaluru",
			InstallDate: date(2025, time.July, 15), IntervalDays: 60, LastServiceDate: date(2025, time.September, 1),
			Lat: coord(12.9352), Long: coord(77.6245), Status: CustomerActive,
		},
		{
			ID: "C3", Name: "Anil Babu", Phone: "9988776655", Email: "anil@example.com", Address: "Jayanagar, Bengaluru",
			InstallDate: date(2024, time.November, 10), IntervalDays: 100, LastServiceDate: date(2025, time.July, 1),
			Lat: coord(12.9279), Long: coord(77.5837), Status: CustomerInactive,
		},
	}
}

// SampleInventory is the parts list a fresh install starts with.
func SampleInventory() []InventoryPart {
	return []InventoryPart{
		{ID: "P1", PartName: "RO Membrane", Quantity: 50, UnitCost: decimal.NewFromInt(500), LastUpdated: *date(2025, time.October, 1)},
		{ID: "P2", PartName: "Sediment Filter", Quantity: 120, UnitCost: decimal.NewFromInt(80), LastUpdated: *date(2025, time.September, 20)},
		{ID: "P3", PartName: "Carbon Filter", Quantity: 40, UnitCost: decimal.NewFromInt(120), LastUpdated: *date(2025, time.October, 5)},
	}
}
