package models

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// InventoryPart is a spare part kept in stock. Quantity is never negative.
type InventoryPart struct {
	ID          string          `json:"id"`
	PartName    string          `json:"part_name"`
	Quantity    int             `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	LastUpdated civil.Date      `json:"last_updated"`
}

// StockValue is quantity times unit cost.
func (p InventoryPart) StockValue() decimal.Decimal {
	return p.UnitCost.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
